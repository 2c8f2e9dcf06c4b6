package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Exit codes for the kiplot CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitSystem indicates an I/O or environment failure unrelated to the inputs.
	ExitSystem = 2

	// ExitBadArgs indicates invalid command-line arguments.
	ExitBadArgs = 6

	// ExitBadConfig indicates the configuration document was rejected.
	ExitBadConfig = 7

	// ExitNoPCBFile indicates the PCB file could not be read.
	ExitNoPCBFile = 8
)

// Sentinel errors for configuration failures. Every error returned while
// reading a configuration matches exactly one of these via [Is].
var (
	// ErrSchemaVersion indicates kiplot.version is missing or unsupported.
	ErrSchemaVersion = crdb.New("unsupported config version")

	// ErrMissingField indicates a required key is absent.
	ErrMissingField = crdb.New("missing required key")

	// ErrUnknownType indicates an unrecognized output kind, layer name or drill map format.
	ErrUnknownType = crdb.New("unknown type")

	// ErrMalformedName indicates an inner layer name not of the form Inner.N.
	ErrMalformedName = crdb.New("malformed name")

	// ErrOptionValidation indicates an option value was rejected by its setter.
	ErrOptionValidation = crdb.New("invalid option value")

	// ErrDocumentParse indicates the configuration text is not well formed.
	ErrDocumentParse = crdb.New("malformed config document")

	// ErrDuplicateOutput indicates two outputs share a name in strict mode.
	ErrDuplicateOutput = crdb.New("duplicate output name")
)

// Re-exported helpers so callers need a single errors import.
var (
	New    = crdb.New
	Newf   = crdb.Newf
	Wrap   = crdb.Wrap
	Wrapf  = crdb.Wrapf
	Is     = crdb.Is
	As     = crdb.As
	Mark   = crdb.Mark
	Unwrap = crdb.Unwrap
)

// MissingError reports an absent required key. Context names where the key
// was expected, e.g. "in gerber section".
type MissingError struct {
	Key     string
	Context string
}

func (e *MissingError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("missing `%s'", e.Key)
	}
	return fmt.Sprintf("missing `%s' %s", e.Key, e.Context)
}

// Is reports ErrMissingField.
func (e *MissingError) Is(target error) bool {
	return target == ErrMissingField
}

// ConfigError locates a configuration failure. Section is the document
// section ("kiplot", "preflight", "outputs", or an output name), Output and
// Kind are set once the failing output is known.
type ConfigError struct {
	Section string
	Output  string
	Kind    string
	Err     error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Output != "" && e.Kind != "":
		return fmt.Sprintf("in section '%s' (%s): %v", e.Output, e.Kind, e.Err)
	case e.Output != "":
		return fmt.Sprintf("in section '%s': %v", e.Output, e.Err)
	case e.Section != "":
		return fmt.Sprintf("in %s section: %v", e.Section, e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ExitError wraps an error with an exit code and optional suggestion for the CLI.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError for bad arguments.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitBadArgs,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewConfigError creates an ExitError for a rejected configuration document.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitBadConfig,
		Suggestion: "Run: kiplot check -c <config> -b <board>",
	}
}

// NewPCBError creates an ExitError for an unreadable PCB file.
func NewPCBError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitNoPCBFile,
		Suggestion: "Check the --board path points to a .kicad_pcb file",
	}
}

// Error returns the error message from the underlying error.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps err to a process exit code. ExitError codes win; otherwise
// configuration sentinels map to ExitBadConfig and anything else to ExitSystem.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if As(err, &exitErr) {
		return exitErr.Code
	}
	for _, sentinel := range []error{
		ErrSchemaVersion, ErrMissingField, ErrUnknownType, ErrMalformedName,
		ErrOptionValidation, ErrDocumentParse, ErrDuplicateOutput,
	} {
		if Is(err, sentinel) {
			return ExitBadConfig
		}
	}
	return ExitSystem
}

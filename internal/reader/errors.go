package reader

import "github.com/thoreinstein/kiplot/internal/errors"

// Failure classes of Read. Every error Read returns is a *ConfigError
// matching one of these through errors.Is.
var (
	ErrSchemaVersion    = errors.ErrSchemaVersion
	ErrMissingField     = errors.ErrMissingField
	ErrUnknownType      = errors.ErrUnknownType
	ErrMalformedName    = errors.ErrMalformedName
	ErrOptionValidation = errors.ErrOptionValidation
	ErrDocumentParse    = errors.ErrDocumentParse
	ErrDuplicateOutput  = errors.ErrDuplicateOutput
)

// ConfigError locates a failure in the document.
type ConfigError = errors.ConfigError

// Document sections named in errors.
const (
	SectionKiplot    = "kiplot"
	SectionPreflight = "preflight"
	SectionOutputs   = "outputs"
)

func missing(key, context string) error {
	return &errors.MissingError{Key: key, Context: context}
}

func invalidValue(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrOptionValidation)
}

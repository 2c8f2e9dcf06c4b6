package config

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/kiplot/internal/export"
)

// Validation errors for settings fields.
var (
	// ErrUnsupportedVersion indicates the version field is not 1.
	ErrUnsupportedVersion = errors.New("unsupported settings version")

	// ErrInvalidExportFormat indicates export_format names no plan encoding.
	ErrInvalidExportFormat = errors.New("invalid export format")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks s and returns every problem found, or nil.
func Validate(s *Settings) []error {
	if s == nil {
		return []error{errors.New("settings are nil")}
	}

	var errs []error

	if s.Version != 1 {
		errs = append(errs, errors.Mark(errors.Newf("unsupported settings version: %d", s.Version), ErrUnsupportedVersion))
	}

	if _, err := export.ParseFormat(s.ExportFormat); err != nil {
		errs = append(errs, &FieldError{
			Field: KeyExportFormat,
			Value: s.ExportFormat,
			Err:   ErrInvalidExportFormat,
		})
	}

	if err := validatePath(s.PlotConfig); err != nil {
		errs = append(errs, &FieldError{
			Field: KeyPlotConfig,
			Value: s.PlotConfig,
			Err:   err,
		})
	}

	return errs
}

// validatePath checks a path is well formed without touching the disk.
func validatePath(path string) error {
	if path == "" {
		return nil
	}

	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "." || strings.HasSuffix(path, string(filepath.Separator)) {
		return ErrInvalidPath
	}

	return nil
}

// FieldError reports a rejected settings value.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

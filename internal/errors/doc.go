// Package errors provides error handling conventions for kiplot.
//
// It defines the sentinel errors every configuration failure resolves to,
// a [ConfigError] that locates a failure inside the document, an
// [ExitError] for CLI exit code handling, and re-exports of
// github.com/cockroachdb/errors so callers need a single import.
//
// # Sentinel Errors
//
// Configuration failures are classified by sentinel and checked with [Is]:
//
//	if errors.Is(err, errors.ErrMissingField) {
//	    // a mandatory key was absent
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): command completed successfully
//   - ExitSystem (2): I/O or environment failure
//   - ExitBadArgs (6): invalid command-line arguments
//   - ExitBadConfig (7): the configuration document was rejected
//   - ExitNoPCBFile (8): the PCB file could not be read
//
// [ExitCode] maps any error to one of these.
package errors

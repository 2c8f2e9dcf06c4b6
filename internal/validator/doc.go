// Package validator collects and reports lint findings about a resolved
// configuration.
//
// A configuration that fails to load never reaches this package; the
// reader returns an error instead. Lint covers documents that load but are
// probably not what the author meant, such as two outputs with one name.
//
// # Core Concepts
//
//   - [Severity]: Distinguishes between blocking errors and non-blocking warnings.
//   - [Issue]: A single finding, optionally tied to one output and field.
//   - [Result]: Aggregates issues and provides helper methods.
//   - [Reporter]: Writes a Result as colored text or JSON.
//
// # Basic Usage
//
//	result := &validator.Result{}
//	result.Warn("gerbers", "layers", "ignored for this output type", nil)
//
//	validator.NewReporter(os.Stdout, validator.FormatText, ".kiplot.yaml").Report(result)
package validator

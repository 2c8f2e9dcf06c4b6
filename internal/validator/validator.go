package validator

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Severity represents the impact of a lint issue.
type Severity int

const (
	// SeverityError indicates a configuration that cannot be generated.
	SeverityError Severity = iota
	// SeverityWarning indicates a configuration that loads but is likely wrong.
	SeverityWarning
	// SeverityInfo indicates an informational note.
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		return errors.Newf("unknown severity %q", text)
	}
	return nil
}

// Issue is a single finding about a configuration.
type Issue struct {
	Severity Severity `json:"severity"`
	// Output names the output the issue belongs to; empty for the document.
	Output  string            `json:"output,omitempty"`
	Field   string            `json:"field,omitempty"`
	Message string            `json:"message"`
	Value   any               `json:"value,omitempty"`
	Context map[string]string `json:"context,omitempty"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	if i.Output != "" {
		fmt.Fprintf(&sb, "output '%s': ", i.Output)
	}
	if i.Field != "" {
		sb.WriteString(i.Field)
		sb.WriteString(": ")
	}
	sb.WriteString(i.Message)
	if i.Value != nil {
		fmt.Fprintf(&sb, " (got %v)", i.Value)
	}
	return sb.String()
}

// Result aggregates lint issues in the order they were found.
type Result struct {
	Issues []Issue `json:"issues"`
}

// Add appends issue.
func (r *Result) Add(issue Issue) {
	r.Issues = append(r.Issues, issue)
}

// AddError adds a document level error.
func (r *Result) AddError(field, message string, value any) {
	r.Add(Issue{Severity: SeverityError, Field: field, Message: message, Value: value})
}

// AddWarning adds a document level warning.
func (r *Result) AddWarning(field, message string, value any) {
	r.Add(Issue{Severity: SeverityWarning, Field: field, Message: message, Value: value})
}

// AddInfo adds a document level note.
func (r *Result) AddInfo(field, message string, value any) {
	r.Add(Issue{Severity: SeverityInfo, Field: field, Message: message, Value: value})
}

// Warn adds a warning attached to the output named output.
func (r *Result) Warn(output, field, message string, value any) {
	r.Add(Issue{Severity: SeverityWarning, Output: output, Field: field, Message: message, Value: value})
}

// HasErrors returns true if any issue has SeverityError.
func (r *Result) HasErrors() bool {
	return len(r.Errors()) > 0
}

// HasWarnings returns true if any issue has SeverityWarning.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings()) > 0
}

// Errors returns all issues with SeverityError.
func (r *Result) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns all issues with SeverityWarning.
func (r *Result) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

// Infos returns all issues with SeverityInfo.
func (r *Result) Infos() []Issue {
	return r.filter(SeverityInfo)
}

func (r *Result) filter(s Severity) []Issue {
	if r == nil {
		return nil
	}
	var res []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			res = append(res, i)
		}
	}
	return res
}

package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Format specifies the output format for lint reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", errors.Newf("unknown report format %q (use text or json)", s)
	}
}

// Reporter formats and writes lint results.
type Reporter struct {
	out     io.Writer
	format  Format
	subject string
}

// NewReporter creates a new Reporter. Subject names what was checked, usually
// the configuration file, and heads the text report.
func NewReporter(out io.Writer, format Format, subject string) *Reporter {
	return &Reporter{
		out:     out,
		format:  format,
		subject: subject,
	}
}

type jsonReport struct {
	Subject string  `json:"subject,omitempty"`
	Valid   bool    `json:"valid"`
	Issues  []Issue `json:"issues"`
}

// Report writes result to the output.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		result = &Result{}
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(result)
	default:
		return r.reportText(result)
	}
}

func (r *Reporter) reportJSON(result *Result) error {
	issues := result.Issues
	if issues == nil {
		issues = []Issue{}
	}
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(jsonReport{
		Subject: r.subject,
		Valid:   !result.HasErrors(),
		Issues:  issues,
	}), "encoding JSON report")
}

func (r *Reporter) reportText(result *Result) error {
	errs := result.Errors()
	warnings := result.Warnings()

	if len(errs) == 0 && len(warnings) == 0 {
		fmt.Fprintln(r.out, color.GreenString("✓ %s: no issues", r.label()))
		return nil
	}

	summary := []string{}
	if len(errs) > 0 {
		summary = append(summary, color.RedString("%d error(s)", len(errs)))
	}
	if len(warnings) > 0 {
		summary = append(summary, color.YellowString("%d warning(s)", len(warnings)))
	}
	fmt.Fprintf(r.out, "%s: %s\n\n", r.label(), strings.Join(summary, ", "))

	r.printGroup("Errors:", errs, color.FgRed)
	r.printGroup("Warnings:", warnings, color.FgYellow)
	return nil
}

func (r *Reporter) label() string {
	if r.subject == "" {
		return "Lint"
	}
	return r.subject
}

func (r *Reporter) printGroup(title string, issues []Issue, c color.Attribute) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintln(r.out, title)
	for _, i := range issues {
		r.printIssue(i, c)
	}
	fmt.Fprintln(r.out)
}

func (r *Reporter) printIssue(i Issue, c color.Attribute) {
	printer := color.New(c).SprintFunc()
	dim := color.New(color.FgHiBlack)

	// Format:  • [output] field: message (context) [value]
	var sb strings.Builder
	sb.WriteString("  • ")

	if i.Output != "" {
		sb.WriteString(dim.Sprintf("[%s] ", i.Output))
	}
	if i.Field != "" {
		sb.WriteString(printer(i.Field))
		sb.WriteString(": ")
	}
	sb.WriteString(i.Message)

	if len(i.Context) > 0 {
		var ctxParts []string
		for k, v := range i.Context {
			ctxParts = append(ctxParts, fmt.Sprintf("%s=%s", k, v))
		}
		sort.Strings(ctxParts)
		sb.WriteString(" ")
		sb.WriteString(dim.Sprintf("(%s)", strings.Join(ctxParts, ", ")))
	}

	if i.Value != nil {
		valStr := fmt.Sprintf("%v", i.Value)
		if len(valStr) > 50 {
			valStr = valStr[:47] + "..."
		}
		sb.WriteString(dim.Sprintf(" [%s]", valStr))
	}

	fmt.Fprintln(r.out, sb.String())
}

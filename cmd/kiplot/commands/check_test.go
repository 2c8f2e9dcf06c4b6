package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/kiplot/internal/config"
	"github.com/thoreinstein/kiplot/internal/errors"
	"github.com/thoreinstein/kiplot/internal/validator"
)

// checkReport mirrors the JSON report.
type checkReport struct {
	Subject string `json:"subject"`
	Valid   bool   `json:"valid"`
	Issues  []struct {
		Severity string            `json:"severity"`
		Output   string            `json:"output"`
		Field    string            `json:"field"`
		Message  string            `json:"message"`
		Context  map[string]string `json:"context"`
	} `json:"issues"`
}

func TestCheck_StarterIsClean(t *testing.T) {
	saveGlobals(t)
	in := writeProject(t, starterDoc(t))

	var buf bytes.Buffer
	if err := runCheckWithWriter(testCmd(t), &buf, in, validator.FormatText); err != nil {
		t.Fatalf("check failed: %v\n%s", err, buf.String())
	}
	if !strings.Contains(buf.String(), "no issues") {
		t.Errorf("output = %q, want no issues", buf.String())
	}
}

func TestCheck_JSON(t *testing.T) {
	saveGlobals(t)
	in := writeProject(t, duplicateDoc)

	var buf bytes.Buffer
	if err := runCheckWithWriter(testCmd(t), &buf, in, validator.FormatJSON); err != nil {
		t.Fatalf("check failed: %v", err)
	}

	var report checkReport
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if !report.Valid {
		t.Error("warnings alone should leave the report valid")
	}
	if report.Subject != in.Document {
		t.Errorf("subject = %q, want %q", report.Subject, in.Document)
	}
	if len(report.Issues) != 1 || report.Issues[0].Field != "name" || report.Issues[0].Severity != "warning" {
		t.Errorf("issues = %+v, want one duplicate name warning", report.Issues)
	}
}

func TestCheck_Strict(t *testing.T) {
	saveGlobals(t)
	checkStrict = true
	in := writeProject(t, duplicateDoc)

	var buf bytes.Buffer
	err := runCheckWithWriter(testCmd(t), &buf, in, validator.FormatText)
	if code := errors.ExitCode(err); code != errors.ExitBadConfig {
		t.Errorf("exit code = %d, want %d (err = %v)", code, errors.ExitBadConfig, err)
	}
	if !strings.Contains(buf.String(), "1 warning(s)") {
		t.Errorf("output = %q, want warning summary", buf.String())
	}
}

func TestCheck_UniqueNamesSetting(t *testing.T) {
	saveGlobals(t)
	settings = &config.Settings{Version: 1, UniqueOutputNames: true, ExportFormat: "json"}
	in := writeProject(t, duplicateDoc)

	var buf bytes.Buffer
	err := runCheckWithWriter(testCmd(t), &buf, in, validator.FormatText)
	if !errors.Is(err, errors.ErrDuplicateOutput) {
		t.Errorf("error = %v, want ErrDuplicateOutput", err)
	}
}

func TestCheck_ConfigError(t *testing.T) {
	saveGlobals(t)
	in := writeProject(t, badOptionDoc)

	var buf bytes.Buffer
	err := runCheckWithWriter(testCmd(t), &buf, in, validator.FormatJSON)
	if code := errors.ExitCode(err); code != errors.ExitBadConfig {
		t.Fatalf("exit code = %d, want %d (err = %v)", code, errors.ExitBadConfig, err)
	}
	if !errors.Is(err, errors.ErrUnknownType) {
		t.Errorf("error = %v, want ErrUnknownType", err)
	}

	var report checkReport
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if report.Valid {
		t.Error("report should be invalid")
	}
	if len(report.Issues) != 1 {
		t.Fatalf("issues = %+v, want one", report.Issues)
	}
	issue := report.Issues[0]
	if issue.Output != "drill" || issue.Context["type"] != "excellon" {
		t.Errorf("issue = %+v, want output drill of type excellon", issue)
	}
	if !strings.Contains(issue.Message, "unknown_fmt") {
		t.Errorf("message = %q, want the bad map type", issue.Message)
	}
}

func TestCheck_MissingBoard(t *testing.T) {
	saveGlobals(t)
	in := inputs{
		Board:    filepath.Join(t.TempDir(), "nope.kicad_pcb"),
		Document: filepath.Join(t.TempDir(), ".kiplot.yaml"),
	}

	var buf bytes.Buffer
	err := runCheckWithWriter(testCmd(t), &buf, in, validator.FormatText)
	if code := errors.ExitCode(err); code != errors.ExitNoPCBFile {
		t.Errorf("exit code = %d, want %d (err = %v)", code, errors.ExitNoPCBFile, err)
	}
	if buf.Len() != 0 {
		t.Errorf("no report expected for an unreadable board, got %q", buf.String())
	}
}

func TestCheck_MissingDocument(t *testing.T) {
	saveGlobals(t)
	in := writeProject(t, "")

	var buf bytes.Buffer
	err := runCheckWithWriter(testCmd(t), &buf, in, validator.FormatText)
	if code := errors.ExitCode(err); code != errors.ExitBadArgs {
		t.Errorf("exit code = %d, want %d (err = %v)", code, errors.ExitBadArgs, err)
	}
}

func TestConfigIssue(t *testing.T) {
	plain := configIssue(errors.New("boom"))
	if plain.Message != "boom" || plain.Context != nil {
		t.Errorf("configIssue(plain) = %+v", plain)
	}

	located := configIssue(&errors.ConfigError{Section: "preflight", Err: errors.New("run_drc must be a boolean")})
	if located.Message != "run_drc must be a boolean" || located.Context["section"] != "preflight" {
		t.Errorf("configIssue(located) = %+v", located)
	}
	if _, ok := located.Context["type"]; ok {
		t.Error("type should be absent when the kind is unknown")
	}
}

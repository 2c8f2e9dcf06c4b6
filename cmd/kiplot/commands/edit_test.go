package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/thoreinstein/kiplot/internal/editor"
	"github.com/thoreinstein/kiplot/internal/errors"
)

// fakeEditor installs a shell script editor that appends line to the file.
func fakeEditor(t *testing.T, line string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the editor")
	}
	script := filepath.Join(t.TempDir(), "fake-editor.sh")
	body := "#!/bin/sh\nprintf '%s\\n' '" + line + "' >> \"$1\"\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv(editor.EnvEditor, script)
}

func TestRunEdit_ChecksAfterEditing(t *testing.T) {
	saveGlobals(t)
	fakeEditor(t, "# reviewed")
	in := writeProject(t, starterDoc(t))
	boardFlag = in.Board

	c := testCmd(t)
	var out bytes.Buffer
	c.SetOut(&out)

	if err := runEdit(c, nil); err != nil {
		t.Fatalf("edit failed: %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "no issues") {
		t.Errorf("output = %q", out.String())
	}

	data, _ := os.ReadFile(in.Document)
	if !strings.HasSuffix(string(data), "# reviewed\n") {
		t.Error("editor did not run on the configuration")
	}
}

func TestRunEdit_ReportsBrokenEdit(t *testing.T) {
	saveGlobals(t)
	fakeEditor(t, "bogus: [")
	in := writeProject(t, starterDoc(t))
	boardFlag = in.Board

	c := testCmd(t)
	c.SetOut(&bytes.Buffer{})

	err := runEdit(c, nil)
	if !errors.Is(err, errors.ErrDocumentParse) {
		t.Errorf("error = %v, want ErrDocumentParse", err)
	}
}

func TestRunEdit_MissingDocument(t *testing.T) {
	saveGlobals(t)
	in := writeProject(t, "")
	boardFlag = in.Board

	err := runEdit(testCmd(t), nil)
	if code := errors.ExitCode(err); code != errors.ExitBadArgs {
		t.Errorf("exit code = %d, want %d (err = %v)", code, errors.ExitBadArgs, err)
	}
}

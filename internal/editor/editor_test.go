package editor

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func clearEditors(t *testing.T) {
	t.Helper()
	for _, env := range []string{EnvEditor, "EDITOR", "VISUAL"} {
		t.Setenv(env, "")
	}
}

func TestDetectEditor(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "kiplot override wins",
			env:  map[string]string{EnvEditor: "hx", "EDITOR": "nvim", "VISUAL": "code"},
			want: "hx",
		},
		{
			name: "EDITOR before VISUAL",
			env:  map[string]string{"EDITOR": "nvim", "VISUAL": "code"},
			want: "nvim",
		},
		{
			name: "empty EDITOR falls through",
			env:  map[string]string{"EDITOR": "  ", "VISUAL": "code --wait"},
			want: "code --wait",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEditors(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if got := detectEditor(); got != tt.want {
				t.Errorf("detectEditor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectEditor_Fallback(t *testing.T) {
	clearEditors(t)

	got := detectEditor()
	if _, err := exec.LookPath("nano"); err == nil {
		if got != "nano" {
			t.Errorf("detectEditor() = %q, want nano (nano available)", got)
		}
	} else if got != "vi" {
		t.Errorf("detectEditor() = %q, want vi (nano not available)", got)
	}
}

func TestOpen(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the editor")
	}

	dir := t.TempDir()
	mock := filepath.Join(dir, "mock-editor.sh")
	script := "#!/bin/sh\necho \"$@\"\n"
	if err := os.WriteFile(mock, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	clearEditors(t)
	t.Setenv(EnvEditor, mock+" --wait")

	target := filepath.Join(dir, ".kiplot.yaml")
	var out bytes.Buffer
	if err := Open(t.Context(), target, Streams{In: strings.NewReader(""), Out: &out, Err: &out}); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if got := strings.TrimSpace(out.String()); got != "--wait "+target {
		t.Errorf("editor arguments = %q, want %q", got, "--wait "+target)
	}
}

func TestOpen_MissingEditor(t *testing.T) {
	clearEditors(t)
	t.Setenv("EDITOR", "non-existent-binary-12345")

	err := Open(t.Context(), "plots.yaml", Streams{})
	if err == nil {
		t.Fatal("expected error for non-existent editor")
	}
	if !strings.Contains(err.Error(), "non-existent-binary-12345") {
		t.Errorf("error %q should name the editor", err)
	}
}

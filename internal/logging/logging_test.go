package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_Formats(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "")
	tests := []struct {
		name   string
		format Format
		check  func(t *testing.T, out string)
	}{
		{
			name:   "json",
			format: FormatJSON,
			check: func(t *testing.T, out string) {
				var rec map[string]any
				if err := json.Unmarshal([]byte(out), &rec); err != nil {
					t.Fatalf("not JSON: %v\n%s", err, out)
				}
				if rec["msg"] != "config resolved" || rec["outputs"] != float64(3) {
					t.Errorf("record = %v", rec)
				}
			},
		},
		{
			name:   "text",
			format: FormatText,
			check: func(t *testing.T, out string) {
				if !strings.Contains(out, "INFO  config resolved outputs=3 board=amp.kicad_pcb") {
					t.Errorf("output = %q", out)
				}
			},
		},
		{
			name:   "unknown falls back to text",
			format: Format("xml"),
			check: func(t *testing.T, out string) {
				if strings.HasPrefix(strings.TrimSpace(out), "{") {
					t.Errorf("expected text output, got %q", out)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{Level: slog.LevelInfo, Format: tt.format, Output: &buf})
			logger.Info("config resolved", "outputs", 3, "board", "amp.kicad_pcb")
			tt.check(t, buf.String())
		})
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{7, LevelTrace},
	}

	for _, tt := range tests {
		if got := LevelFromVerbosity(tt.verbosity); got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestNew_VerbosityFiltersRecords(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "")
	var buf bytes.Buffer
	logger := New(Config{Level: LevelFromVerbosity(0), Output: &buf})

	logger.Info("reading board")
	logger.Debug("layer slot", "id", 1)
	logger.Warn("duplicate output name", "name", "gerbers")

	out := buf.String()
	if strings.Contains(out, "reading board") || strings.Contains(out, "layer slot") {
		t.Errorf("records below WARN leaked: %q", out)
	}
	if !strings.Contains(out, "WARN  duplicate output name name=gerbers") {
		t.Errorf("warning missing: %q", out)
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	if logger.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("discard logger should not enable debug")
	}
	logger.Error("dropped")
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	if !logger.Enabled(t.Context(), LevelTrace) {
		t.Error("ForTest logger should enable trace")
	}
	logger.Log(t.Context(), LevelTrace, "applying rule", "key", "tent_vias")
}

func TestTestWriter_TrimsNewline(t *testing.T) {
	w := &testWriter{t: t}
	n, err := w.Write([]byte("mapped key\n"))
	if err != nil || n != len("mapped key\n") {
		t.Errorf("Write() = %d, %v", n, err)
	}
}

func TestVerbosityFromEnv(t *testing.T) {
	tests := []struct {
		val  string
		want int
	}{
		{"1", 2},
		{"true", 2},
		{"2", 3},
		{"0", 0},
		{"verbose", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv(EnvDebug, tt.val)
			if got := VerbosityFromEnv(); got != tt.want {
				t.Errorf("VerbosityFromEnv() with %s=%q = %d, want %d", EnvDebug, tt.val, got, tt.want)
			}
		})
	}
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Output: &buf})

	ctx := NewContext(t.Context(), logger)
	if got := FromContext(ctx); got != logger {
		t.Error("FromContext did not return the stored logger")
	}

	if got := FromContext(t.Context()); got != slog.Default() {
		t.Error("FromContext without a logger should return slog.Default()")
	}
}

func TestMultiHandler_LogFile(t *testing.T) {
	var console, file bytes.Buffer
	h := NewMultiHandler(
		NewHandler(&console, &slog.HandlerOptions{Level: slog.LevelWarn}),
		nil,
		slog.NewJSONHandler(&file, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	logger := slog.New(h).With("board", "amp.kicad_pcb")

	logger.Debug("layer table loaded", "layers", 5)

	if console.Len() != 0 {
		t.Errorf("console should drop debug, got %q", console.String())
	}
	var rec map[string]any
	if err := json.Unmarshal(file.Bytes(), &rec); err != nil {
		t.Fatalf("log file is not JSON: %v\n%s", err, file.String())
	}
	if rec["board"] != "amp.kicad_pcb" || rec["layers"] != float64(5) {
		t.Errorf("record = %v", rec)
	}
}

package logging

import (
	"os"
	"testing"
)

func TestSupportsColor(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		isTTY bool
		want  bool
	}{
		{
			name:  "terminal gets color",
			isTTY: true,
			want:  true,
		},
		{
			name:  "NO_COLOR prevents color",
			env:   map[string]string{"NO_COLOR": "1"},
			isTTY: true,
			want:  false,
		},
		{
			name:  "TERM=dumb prevents color",
			env:   map[string]string{"TERM": "dumb"},
			isTTY: true,
			want:  false,
		},
		{
			name:  "non-TTY prevents color",
			isTTY: false,
			want:  false,
		},
		{
			name:  "CLICOLOR_FORCE colors a pipe",
			env:   map[string]string{"CLICOLOR_FORCE": "1"},
			isTTY: false,
			want:  true,
		},
		{
			name:  "CLICOLOR_FORCE=0 is ignored",
			env:   map[string]string{"CLICOLOR_FORCE": "0"},
			isTTY: false,
			want:  false,
		},
		{
			name:  "NO_COLOR beats CLICOLOR_FORCE",
			env:   map[string]string{"NO_COLOR": "1", "CLICOLOR_FORCE": "1"},
			isTTY: true,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TERM", "xterm")
			t.Setenv("CLICOLOR_FORCE", "")
			unsetEnv(t, "NO_COLOR")

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			var w mockWriter
			got := supportsColor(&w, tt.isTTY)
			if got != tt.want {
				t.Errorf("supportsColor() = %v, want %v (env=%v, isTTY=%v)", got, tt.want, tt.env, tt.isTTY)
			}
		})
	}
}

// unsetEnv removes key for the duration of the test. NO_COLOR counts even
// when empty, so t.Setenv(key, "") would not clear it.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestIsTTY_NonFile(t *testing.T) {
	var w mockWriter
	if IsTTY(&w) {
		t.Error("IsTTY should return false for mockWriter")
	}
}

type mockWriter struct{}

func (m *mockWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

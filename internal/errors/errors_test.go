package errors

import (
	"fmt"
	"testing"
)

func TestConfigError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ConfigError
		want string
	}{
		{
			name: "output and kind",
			err:  &ConfigError{Output: "gerbers", Kind: "gerber", Err: Wrap(ErrMissingField, "tent_vias")},
			want: "in section 'gerbers' (gerber): tent_vias: missing required key",
		},
		{
			name: "output only",
			err:  &ConfigError{Output: "gerbers", Err: ErrUnknownType},
			want: "in section 'gerbers': unknown type",
		},
		{
			name: "section only",
			err:  &ConfigError{Section: "preflight", Err: ErrOptionValidation},
			want: "in preflight section: invalid option value",
		},
		{
			name: "bare",
			err:  &ConfigError{Err: ErrDocumentParse},
			want: "malformed config document",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ConfigError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigError_Is(t *testing.T) {
	err := fmt.Errorf("reading config: %w", &ConfigError{
		Output: "drill",
		Kind:   "excellon",
		Err:    Wrapf(ErrUnknownType, "unknown drill map type: %s", "bmp"),
	})

	if !Is(err, ErrUnknownType) {
		t.Error("errors.Is() should find ErrUnknownType through ConfigError")
	}
	if Is(err, ErrMissingField) {
		t.Error("errors.Is() should not match ErrMissingField")
	}

	var cfgErr *ConfigError
	if !As(err, &cfgErr) {
		t.Fatal("errors.As() should find ConfigError")
	}
	if cfgErr.Kind != "excellon" {
		t.Errorf("ConfigError.Kind = %q, want excellon", cfgErr.Kind)
	}
}

func TestExitError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ExitError
		wantMsg  string
		wantCode int
	}{
		{"config", NewConfigError(ErrSchemaVersion), "unsupported config version", ExitBadConfig},
		{"pcb", NewPCBError(New("no such file")), "no such file", ExitNoPCBFile},
		{"user", NewUserError(New("bad flag"), "see --help"), "bad flag", ExitBadArgs},
		{"system", NewSystemError(New("disk full"), ""), "disk full", ExitSystem},
		{"nil underlying", NewExitError(nil, ExitBadArgs), "exit code 6", ExitBadArgs},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"exit error wins", NewPCBError(ErrMissingField), ExitNoPCBFile},
		{"wrapped exit error", fmt.Errorf("run: %w", NewUserError(nil, "")), ExitBadArgs},
		{"schema version", &ConfigError{Section: "kiplot", Err: ErrSchemaVersion}, ExitBadConfig},
		{"malformed name", Wrap(ErrMalformedName, "Inner.x"), ExitBadConfig},
		{"duplicate", ErrDuplicateOutput, ExitBadConfig},
		{"other", New("boom"), ExitSystem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	tests := []struct {
		name string
		code int
		want int
	}{
		{"ExitSuccess", ExitSuccess, 0},
		{"ExitSystem", ExitSystem, 2},
		{"ExitBadArgs", ExitBadArgs, 6},
		{"ExitBadConfig", ExitBadConfig, 7},
		{"ExitNoPCBFile", ExitNoPCBFile, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.want {
				t.Errorf("%s = %d, want %d", tt.name, tt.code, tt.want)
			}
		})
	}
}

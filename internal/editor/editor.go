// Package editor launches the user's text editor on a plot configuration.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/kiplot/internal/errors"
)

// EnvEditor overrides $EDITOR and $VISUAL for kiplot only.
const EnvEditor = "KIPLOT_EDITOR"

// Streams are the terminal the editor runs on.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Terminal returns the process's own standard streams.
func Terminal() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Open runs the editor on path and waits for it to exit. The editor
// setting may carry arguments, e.g. "code --wait".
func Open(ctx context.Context, path string, s Streams) error {
	argv := strings.Fields(detectEditor())
	cmd := exec.CommandContext(ctx, argv[0], append(argv[1:], path)...)
	cmd.Stdin = s.In
	cmd.Stdout = s.Out
	cmd.Stderr = s.Err

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", argv[0])
	}
	return nil
}

// detectEditor returns the editor command. Fallback chain:
// $KIPLOT_EDITOR, $EDITOR, $VISUAL, nano, vi.
func detectEditor() string {
	for _, env := range []string{EnvEditor, "EDITOR", "VISUAL"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v
		}
	}

	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}

package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/kiplot/internal/errors"
)

// MaxFileSize is the largest configuration document read (1MB).
const MaxFileSize = 1024 * 1024

// ErrFileTooLarge indicates that input exceeded MaxFileSize.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

// ReadWithLimit reads r to the end, failing once more than MaxFileSize
// bytes arrive.
func ReadWithLimit(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}

// ReadFileWithLimit reads the file at path up to MaxFileSize.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	// Fail fast when the size is already known to be too large.
	if info, err := f.Stat(); err == nil && info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	return ReadWithLimit(f)
}

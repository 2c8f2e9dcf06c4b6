// Package fileutil provides bounded reads and atomic writes for the files
// kiplot reads and produces.
package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/kiplot/internal/errors"
)

// DefaultPerm is the mode of files written without an explicit one.
const DefaultPerm os.FileMode = 0644

// AtomicWriteFile writes data to a file atomically using a temp file + rename pattern.
// An interrupted write leaves any existing file intact.
//
// The caller is responsible for ensuring the parent directory exists.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	// Same directory, so the rename stays on one filesystem.
	tmp, err := os.CreateTemp(dir, ".kiplot-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}

	tmpName := tmp.Name()
	defer func() {
		// Still present only if the rename did not happen.
		if _, statErr := os.Stat(tmpName); statErr == nil {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}

	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Wrap(err, "setting file permissions")
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}

	return nil
}

// AtomicWriteJSON writes v as 2-space indented JSON with a trailing newline.
func AtomicWriteJSON(path string, v any, perm os.FileMode) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling JSON")
	}
	data = append(data, '\n')
	return AtomicWriteFile(path, data, perm)
}

// AtomicWriteYAML writes v as YAML.
func AtomicWriteYAML(path string, v any, perm os.FileMode) (err error) {
	// yaml.Marshal panics on unmarshalable types
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("marshaling YAML: %v", r)
		}
	}()

	data, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshaling YAML")
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return AtomicWriteFile(path, data, perm)
}

// AtomicWriteMsgpack writes v as MessagePack. Struct fields are keyed by
// their msgpack tags.
func AtomicWriteMsgpack(path string, v any, perm os.FileMode) error {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshaling msgpack")
	}
	return AtomicWriteFile(path, data, perm)
}

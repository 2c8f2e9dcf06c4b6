// Package export serializes a resolved configuration into a plan file that
// an external generator consumes.
package export

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/kiplot/internal/errors"
	"github.com/thoreinstein/kiplot/internal/plotconfig"
	"github.com/thoreinstein/kiplot/pkg/fileutil"
)

// Format is a plan file encoding.
type Format string

// Plan file encodings.
const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

// Formats returns the supported encodings.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatMsgpack}
}

// ParseFormat returns the Format named s. "yml" and "mpk" are accepted as
// aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "msgpack", "mpk":
		return FormatMsgpack, nil
	default:
		return "", errors.Newf("unknown export format %q (use json, yaml or msgpack)", s)
	}
}

// Ext returns the file extension of the format, with the dot.
func (f Format) Ext() string {
	switch f {
	case FormatYAML:
		return ".yaml"
	case FormatMsgpack:
		return ".msgpack"
	default:
		return ".json"
	}
}

// Plan is the document written by Write: the resolved configuration and the
// board it was resolved against.
type Plan struct {
	Board  string             `json:"board" yaml:"board" msgpack:"board"`
	Source string             `json:"source" yaml:"source" msgpack:"source"`
	Config *plotconfig.Config `json:"config" yaml:"config" msgpack:"config"`
}

// Encode writes plan to w in format.
func Encode(w io.Writer, plan Plan, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(plan), "encoding JSON plan")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(plan); err != nil {
			return errors.Wrap(err, "encoding YAML plan")
		}
		return errors.Wrap(enc.Close(), "encoding YAML plan")
	case FormatMsgpack:
		return errors.Wrap(msgpack.NewEncoder(w).Encode(plan), "encoding msgpack plan")
	default:
		return errors.Newf("unknown export format %q", format)
	}
}

// Write stores plan at path atomically, creating the parent directory.
func Write(path string, plan Plan, format Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating plan directory")
	}

	switch format {
	case FormatJSON:
		return fileutil.AtomicWriteJSON(path, plan, fileutil.DefaultPerm)
	case FormatYAML:
		return fileutil.AtomicWriteYAML(path, plan, fileutil.DefaultPerm)
	case FormatMsgpack:
		return fileutil.AtomicWriteMsgpack(path, plan, fileutil.DefaultPerm)
	default:
		return errors.Newf("unknown export format %q", format)
	}
}

package reader

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/kiplot/internal/errors"
)

// Syntax is the text format of a configuration document.
type Syntax string

// Document syntaxes.
const (
	SyntaxYAML Syntax = "yaml"
	SyntaxTOML Syntax = "toml"
)

// SyntaxFor picks the document syntax from a file name. Anything not ending
// in .toml is read as YAML.
func SyntaxFor(path string) Syntax {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return SyntaxTOML
	}
	return SyntaxYAML
}

// document is the raw decoded tree of a configuration file.
type document map[string]any

func parseError(err error) error {
	return &ConfigError{
		Err: errors.Mark(errors.Wrap(err, "parsing config"), ErrDocumentParse),
	}
}

// decode parses data into a raw tree. An empty document decodes to an empty
// tree.
func decode(data []byte, syntax Syntax) (document, error) {
	var raw any
	switch syntax {
	case SyntaxTOML:
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, parseError(err)
		}
		raw = m
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&raw); err != nil && err != io.EOF {
			return nil, parseError(err)
		}
	}

	switch m := raw.(type) {
	case nil:
		return document{}, nil
	case map[string]any:
		return document(m), nil
	default:
		return nil, &ConfigError{
			Err: errors.Mark(errors.Newf("config must be a mapping, got %s", describe(raw)), ErrDocumentParse),
		}
	}
}

// describe names the document type of a raw value for error messages.
func describe(v any) string {
	switch v.(type) {
	case nil:
		return "nothing"
	case map[string]any:
		return "a mapping"
	case []any:
		return "a list"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case int, int64, uint64, float64:
		return "a number"
	default:
		return "an unsupported value"
	}
}

// toInt converts a decoded whole number. YAML yields int, TOML int64.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

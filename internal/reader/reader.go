// Package reader loads a configuration document and resolves it against the
// layer table of a board into a [plotconfig.Config].
//
// Reading is all or nothing: the first problem found is returned as a
// *ConfigError naming the document section, and where known the output
// name and type; no partial configuration is returned.
package reader

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/thoreinstein/kiplot/internal/errors"
	"github.com/thoreinstein/kiplot/internal/layer"
	"github.com/thoreinstein/kiplot/internal/logging"
	"github.com/thoreinstein/kiplot/internal/plotconfig"
	"github.com/thoreinstein/kiplot/pkg/fileutil"
)

// Reader turns configuration documents into resolved configurations.
type Reader struct {
	resolver    *layer.Resolver
	logger      *slog.Logger
	syntax      Syntax
	uniqueNames bool
}

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets the logger used for progress and warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithUniqueNames rejects documents where two outputs share a name.
func WithUniqueNames(unique bool) Option {
	return func(r *Reader) {
		r.uniqueNames = unique
	}
}

// WithSyntax sets the syntax used by Read. ReadFile picks it from the file
// name instead.
func WithSyntax(s Syntax) Option {
	return func(r *Reader) {
		r.syntax = s
	}
}

// New creates a Reader resolving layer names against table. A nil table
// resolves only the well-known and numbered inner layer names.
func New(table *layer.Table, opts ...Option) *Reader {
	r := &Reader{
		resolver: layer.NewResolver(table),
		logger:   logging.NewDiscard(),
		syntax:   SyntaxYAML,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read parses a configuration document from src.
func (r *Reader) Read(src io.Reader) (*plotconfig.Config, error) {
	data, err := fileutil.ReadWithLimit(src)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	return r.parse(data, r.syntax)
}

// ReadFile parses the configuration document at path.
func (r *Reader) ReadFile(path string) (*plotconfig.Config, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	r.logger.Debug("reading config", "path", path)
	return r.parse(data, SyntaxFor(path))
}

// Load extracts the layer table of the board at pcbPath and reads the
// configuration document at configPath against it.
func Load(pcbPath, configPath string, opts ...Option) (*plotconfig.Config, error) {
	table, err := layer.LoadTable(pcbPath)
	if err != nil {
		return nil, err
	}
	return New(table, opts...).ReadFile(configPath)
}

func (r *Reader) parse(data []byte, syntax Syntax) (*plotconfig.Config, error) {
	doc, err := decode(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")), syntax)
	if err != nil {
		return nil, err
	}

	if err := checkVersion(doc); err != nil {
		return nil, err
	}

	cfg := plotconfig.New()

	if raw, ok := doc["preflight"]; ok {
		if err := r.parsePreflight(raw, &cfg.Preflight); err != nil {
			return nil, err
		}
	}

	outputs, err := outputList(doc)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(outputs))
	for i, raw := range outputs {
		out, err := r.parseOutput(i, raw)
		if err != nil {
			return nil, err
		}
		if seen[out.Name] {
			if r.uniqueNames {
				return nil, &ConfigError{
					Section: SectionOutputs,
					Output:  out.Name,
					Kind:    string(out.Kind),
					Err:     errors.Mark(errors.Newf("output name '%s' is already used", out.Name), ErrDuplicateOutput),
				}
			}
			r.logger.Warn("duplicate output name", "name", out.Name)
		}
		seen[out.Name] = true
		cfg.AddOutput(out)
	}

	r.logger.Debug("config resolved", "outputs", len(cfg.Outputs))
	return cfg, nil
}

// checkVersion requires kiplot.version to be present and supported.
func checkVersion(doc document) error {
	fail := func(err error) error {
		return &ConfigError{Section: SectionKiplot, Err: err}
	}

	raw, ok := doc["kiplot"]
	if !ok {
		return fail(errors.Mark(errors.New("missing `kiplot' section"), ErrSchemaVersion))
	}
	section, ok := raw.(map[string]any)
	if !ok {
		return fail(errors.Mark(errors.Newf("kiplot must be a mapping, got %s", describe(raw)), ErrSchemaVersion))
	}
	v, ok := section["version"]
	if !ok {
		return fail(errors.Mark(errors.New("missing `version' in kiplot section"), ErrSchemaVersion))
	}
	version, ok := toInt(v)
	if !ok || version != plotconfig.Version {
		return fail(errors.Mark(errors.Newf("unknown kiplot config version: %v", v), ErrSchemaVersion))
	}
	return nil
}

// outputList returns the outputs list; an absent list means no outputs.
func outputList(doc document) ([]any, error) {
	raw, ok := doc["outputs"]
	if !ok || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, &ConfigError{
			Section: SectionOutputs,
			Err:     invalidValue("outputs must be a list, got %s", describe(raw)),
		}
	}
	return list, nil
}

package reader

import (
	"github.com/thoreinstein/kiplot/internal/errors"
	"github.com/thoreinstein/kiplot/internal/mapping"
	"github.com/thoreinstein/kiplot/internal/options"
	"github.com/thoreinstein/kiplot/internal/plotconfig"
)

// parseOutput builds the descriptor of one entry of the outputs list. Index
// is the zero-based position, used in errors before the name is known.
func (r *Reader) parseOutput(index int, raw any) (plotconfig.Output, error) {
	var out plotconfig.Output

	entry, ok := mapping.AsSection(raw)
	if !ok || raw == nil {
		return out, &ConfigError{
			Section: SectionOutputs,
			Err:     invalidValue("output #%d must be a mapping, got %s", index+1, describe(raw)),
		}
	}

	nameRaw, ok := entry.Get("name")
	if !ok {
		return out, &ConfigError{Section: SectionOutputs, Err: missing("name", "in output section")}
	}
	name, ok := nameRaw.(string)
	if !ok {
		return out, &ConfigError{
			Section: SectionOutputs,
			Err:     invalidValue("output #%d: name must be a string, got %s", index+1, describe(nameRaw)),
		}
	}
	out.Name = name

	fail := func(kind string, err error) error {
		return &ConfigError{Section: SectionOutputs, Output: name, Kind: kind, Err: err}
	}

	if c, ok := entry.Get("comment"); ok {
		comment, ok := c.(string)
		if !ok {
			return out, fail("", invalidValue("comment must be a string, got %s", describe(c)))
		}
		out.Comment = &comment
	}

	typeRaw, ok := entry.Get("type")
	if !ok {
		return out, fail("", missing("type", "in output section"))
	}
	typeName, _ := typeRaw.(string)
	kind, ok := options.ParseKind(typeName)
	if !ok {
		return out, fail("", errors.Mark(errors.Newf("unknown output type '%v'", typeRaw), ErrUnknownType))
	}
	out.Kind = kind

	optsRaw, hasOptions := entry.Get("options")
	if !hasOptions && !kind.OptionsOptional() {
		return out, fail(string(kind), missing("options", "in output section"))
	}
	section, ok := mapping.AsSection(optsRaw)
	if !ok {
		return out, fail(string(kind), invalidValue("options must be a mapping, got %s", describe(optsRaw)))
	}

	dirRaw, ok := entry.Get("dir")
	if !ok {
		return out, fail(string(kind), missing("dir", "in output section"))
	}
	dir, ok := dirRaw.(string)
	if !ok {
		return out, fail(string(kind), invalidValue("dir must be a string, got %s", describe(dirRaw)))
	}
	out.Dir = dir

	opts, err := options.New(kind)
	if err != nil {
		return out, fail(string(kind), err)
	}
	if err := mapping.Apply(kind, section, opts, name); err != nil {
		return out, err
	}
	out.Options = opts
	for _, key := range mapping.UnknownKeys(kind, section) {
		r.logger.Warn("ignoring unknown option", "output", name, "type", kind, "key", key)
	}

	layers, err := r.parseLayers(entry, kind)
	if err != nil {
		return out, fail(string(kind), err)
	}
	out.Layers = layers

	r.logger.Debug("parsed output", "name", name, "type", kind, "dir", dir, "layers", len(layers))
	return out, nil
}

// parseLayers resolves the layers list of an output. The list is optional
// except for kinds that require layers, where it must also be non-empty.
func (r *Reader) parseLayers(entry mapping.Section, kind options.Kind) ([]plotconfig.LayerConfig, error) {
	raw, ok := entry.Get("layers")
	if !ok || raw == nil {
		if kind.RequiresLayers() {
			return nil, missing("layers", "in output section")
		}
		return []plotconfig.LayerConfig{}, nil
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, invalidValue("layers must be a list, got %s", describe(raw))
	}
	if len(list) == 0 && kind.RequiresLayers() {
		return nil, missing("layers", "in output section (at least one layer is required)")
	}

	layers := make([]plotconfig.LayerConfig, 0, len(list))
	for i, item := range list {
		lc, err := r.parseLayer(i, item)
		if err != nil {
			return nil, err
		}
		layers = append(layers, lc)
	}
	return layers, nil
}

func (r *Reader) parseLayer(index int, raw any) (plotconfig.LayerConfig, error) {
	var lc plotconfig.LayerConfig

	entry, ok := mapping.AsSection(raw)
	if !ok || raw == nil {
		return lc, invalidValue("layer #%d must be a mapping, got %s", index+1, describe(raw))
	}

	nameRaw, ok := entry.Get("layer")
	if !ok {
		return lc, missing("layer", "in layer entry")
	}
	name, ok := nameRaw.(string)
	if !ok {
		return lc, invalidValue("layer #%d: layer must be a string, got %s", index+1, describe(nameRaw))
	}

	desc, err := r.resolver.Resolve(name)
	if err != nil {
		return lc, err
	}
	lc.Layer = desc

	if d, ok := entry.Get("description"); ok {
		s, ok := d.(string)
		if !ok {
			return lc, invalidValue("layer %s: description must be a string, got %s", name, describe(d))
		}
		lc.Description = &s
	}
	if s, ok := entry.Get("suffix"); ok {
		suffix, ok := s.(string)
		if !ok {
			return lc, invalidValue("layer %s: suffix must be a string, got %s", name, describe(s))
		}
		lc.Suffix = suffix
	}
	return lc, nil
}

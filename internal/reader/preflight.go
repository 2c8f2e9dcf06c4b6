package reader

import (
	"github.com/thoreinstein/kiplot/internal/mapping"
	"github.com/thoreinstein/kiplot/internal/plotconfig"
)

// preflightFlags maps each preflight key to its flag.
var preflightFlags = []struct {
	key  string
	flag func(p *plotconfig.Preflight) *bool
}{
	{"check_zone_fills", func(p *plotconfig.Preflight) *bool { return &p.CheckZoneFills }},
	{"run_drc", func(p *plotconfig.Preflight) *bool { return &p.RunDRC }},
	{"run_erc", func(p *plotconfig.Preflight) *bool { return &p.RunERC }},
	{"update_xml", func(p *plotconfig.Preflight) *bool { return &p.UpdateXML }},
	{"ignore_unconnected", func(p *plotconfig.Preflight) *bool { return &p.IgnoreUnconnected }},
}

// parsePreflight copies the flags present in raw into p. Absent flags keep
// their defaults.
func (r *Reader) parsePreflight(raw any, p *plotconfig.Preflight) error {
	fail := func(err error) error {
		return &ConfigError{Section: SectionPreflight, Err: err}
	}

	section, ok := mapping.AsSection(raw)
	if !ok {
		return fail(invalidValue("preflight must be a mapping, got %s", describe(raw)))
	}

	for _, pf := range preflightFlags {
		v, ok := section.Get(pf.key)
		if !ok {
			continue
		}
		b, ok := v.(bool)
		if !ok {
			return fail(invalidValue("%s must be a boolean, got %s", pf.key, describe(v)))
		}
		*pf.flag(p) = b
	}

	for _, key := range section.Keys() {
		if !knownPreflight(key) {
			r.logger.Warn("ignoring unknown preflight key", "key", key)
		}
	}
	return nil
}

func knownPreflight(key string) bool {
	for _, pf := range preflightFlags {
		if pf.key == key {
			return true
		}
	}
	return false
}

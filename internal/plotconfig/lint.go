package plotconfig

import (
	"fmt"
	"path/filepath"

	"github.com/thoreinstein/kiplot/internal/options"
	"github.com/thoreinstein/kiplot/internal/validator"
)

// Lint reports likely mistakes in a configuration that loaded successfully.
// It never returns errors, only warnings and notes.
func Lint(cfg *Config) *validator.Result {
	result := &validator.Result{}
	if cfg == nil {
		return result
	}

	if len(cfg.Outputs) == 0 {
		result.AddInfo("outputs", "no outputs defined", nil)
	}

	seen := make(map[string]int)
	type dirKind struct {
		dir  string
		kind options.Kind
	}
	dirs := make(map[dirKind]string)

	for i, out := range cfg.Outputs {
		if first, dup := seen[out.Name]; dup {
			result.Add(validator.Issue{
				Severity: validator.SeverityWarning,
				Output:   out.Name,
				Field:    "name",
				Message:  fmt.Sprintf("duplicate output name, also used by output #%d", first+1),
			})
		} else {
			seen[out.Name] = i
		}

		if len(out.Layers) > 0 && !out.Kind.PlotsLayers() {
			result.Warn(out.Name, "layers", fmt.Sprintf("ignored for %s outputs", out.Kind), len(out.Layers))
		}

		key := dirKind{filepath.Clean(out.Dir), out.Kind}
		if other, ok := dirs[key]; ok && other != out.Name {
			result.Warn(out.Name, "dir", fmt.Sprintf("shares its directory with %s output '%s'", out.Kind, other), out.Dir)
		} else if !ok {
			dirs[key] = out.Name
		}

		lintLayers(result, out)

		if p, ok := out.Options.(interface{ PlotOptions() *options.Plot }); ok {
			if p.PlotOptions().CheckZoneFills && !cfg.Preflight.CheckZoneFills {
				result.Warn(out.Name, "check_zone_fills", "requested per output but preflight check_zone_fills is off", nil)
			}
		}
	}

	return result
}

func lintLayers(result *validator.Result, out Output) {
	ids := make(map[int]bool)
	for _, l := range out.Layers {
		if ids[l.Layer.ID] {
			result.Warn(out.Name, "layers", "layer listed more than once", l.Layer.Name)
		}
		ids[l.Layer.ID] = true
	}
}

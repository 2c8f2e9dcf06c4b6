package plotconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/kiplot/internal/layer"
	"github.com/thoreinstein/kiplot/internal/options"
	"github.com/thoreinstein/kiplot/internal/validator"
)

func gerberOutput(name, dir string, layers ...layer.Descriptor) Output {
	out := Output{
		Name:    name,
		Kind:    options.KindGerber,
		Options: &options.GerberOptions{},
		Dir:     dir,
	}
	for _, l := range layers {
		out.Layers = append(out.Layers, LayerConfig{Layer: l})
	}
	return out
}

var frontCopper = layer.Descriptor{ID: layer.FCu, Name: "F.Cu"}

func TestNew_Defaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, Version, cfg.Version)
	assert.Equal(t, Preflight{}, cfg.Preflight)
	assert.Empty(t, cfg.Outputs)
	assert.NotNil(t, cfg.Outputs)
}

func TestConfig_Lookup(t *testing.T) {
	cfg := New()
	cfg.AddOutput(gerberOutput("top", "gerbers"))
	cfg.AddOutput(Output{Name: "drill", Kind: options.KindExcellon, Options: &options.ExcellonOptions{}, Dir: "gerbers"})

	assert.Equal(t, []string{"top", "drill"}, cfg.Names())

	out, ok := cfg.Output("drill")
	require.True(t, ok)
	assert.Equal(t, options.KindExcellon, out.Kind)

	_, ok = cfg.Output("missing")
	assert.False(t, ok)
}

func TestLint_Clean(t *testing.T) {
	cfg := New()
	cfg.AddOutput(gerberOutput("top", "gerbers", frontCopper))
	cfg.AddOutput(Output{Name: "drill", Kind: options.KindExcellon, Options: &options.ExcellonOptions{}, Dir: "gerbers"})

	result := Lint(cfg)
	assert.Empty(t, result.Issues)
}

func TestLint_Findings(t *testing.T) {
	tests := []struct {
		name  string
		cfg   func() *Config
		field string
	}{
		{
			name: "duplicate names",
			cfg: func() *Config {
				cfg := New()
				cfg.AddOutput(gerberOutput("pcb", "a"))
				cfg.AddOutput(Output{Name: "pcb", Kind: options.KindPDF, Options: &options.PDFOptions{}, Dir: "b"})
				return cfg
			},
			field: "name",
		},
		{
			name: "layers on drill output",
			cfg: func() *Config {
				cfg := New()
				cfg.AddOutput(Output{
					Name:    "drill",
					Kind:    options.KindExcellon,
					Options: &options.ExcellonOptions{},
					Dir:     "out",
					Layers:  []LayerConfig{{Layer: frontCopper}},
				})
				return cfg
			},
			field: "layers",
		},
		{
			name: "same kind same directory",
			cfg: func() *Config {
				cfg := New()
				cfg.AddOutput(gerberOutput("top", "gerbers"))
				cfg.AddOutput(gerberOutput("bottom", "gerbers/"))
				return cfg
			},
			field: "dir",
		},
		{
			name: "layer repeated",
			cfg: func() *Config {
				cfg := New()
				cfg.AddOutput(gerberOutput("top", "gerbers", frontCopper, frontCopper))
				return cfg
			},
			field: "layers",
		},
		{
			name: "zone fill check without preflight",
			cfg: func() *Config {
				cfg := New()
				out := gerberOutput("top", "gerbers")
				out.Options.(*options.GerberOptions).CheckZoneFills = true
				cfg.AddOutput(out)
				return cfg
			},
			field: "check_zone_fills",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lint(tt.cfg())
			require.Len(t, result.Warnings(), 1)
			assert.Equal(t, tt.field, result.Warnings()[0].Field)
			assert.False(t, result.HasErrors())
		})
	}
}

func TestLint_ZoneFillWithPreflight(t *testing.T) {
	cfg := New()
	cfg.Preflight.CheckZoneFills = true
	out := gerberOutput("top", "gerbers")
	out.Options.(*options.GerberOptions).CheckZoneFills = true
	cfg.AddOutput(out)

	assert.Empty(t, Lint(cfg).Issues)
}

func TestLint_Empty(t *testing.T) {
	result := Lint(New())
	require.Len(t, result.Infos(), 1)
	assert.Equal(t, validator.SeverityInfo, result.Issues[0].Severity)

	assert.Empty(t, Lint(nil).Issues)
}

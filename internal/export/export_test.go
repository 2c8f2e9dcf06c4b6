package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/kiplot/internal/layer"
	"github.com/thoreinstein/kiplot/internal/options"
	"github.com/thoreinstein/kiplot/internal/plotconfig"
)

func samplePlan() Plan {
	cfg := plotconfig.New()
	cfg.Preflight.RunDRC = true

	g := &options.GerberOptions{GerberPrecision: 4.6}
	g.TentVias = true
	g.LineWidth = 0.1
	cfg.AddOutput(plotconfig.Output{
		Name:    "gerbers",
		Kind:    options.KindGerber,
		Options: g,
		Dir:     "out",
		Layers: []plotconfig.LayerConfig{
			{Layer: layer.Descriptor{ID: layer.FCu, Name: "F.Cu"}, Suffix: "F_Cu"},
		},
	})
	return Plan{Board: "board.kicad_pcb", Source: ".kiplot.yaml", Config: cfg}
}

// plain mirrors the exported layout with generic containers.
type plain struct {
	Board  string `json:"board" yaml:"board" msgpack:"board"`
	Config struct {
		Version   int             `json:"version" yaml:"version" msgpack:"version"`
		Preflight map[string]bool `json:"preflight" yaml:"preflight" msgpack:"preflight"`
		Outputs   []struct {
			Name    string         `json:"name" yaml:"name" msgpack:"name"`
			Type    string         `json:"type" yaml:"type" msgpack:"type"`
			Options map[string]any `json:"options" yaml:"options" msgpack:"options"`
			Layers  []struct {
				Layer struct {
					ID   int    `json:"id" yaml:"id" msgpack:"id"`
					Name string `json:"name" yaml:"name" msgpack:"name"`
				} `json:"layer" yaml:"layer" msgpack:"layer"`
				Suffix string `json:"suffix" yaml:"suffix" msgpack:"suffix"`
			} `json:"layers" yaml:"layers" msgpack:"layers"`
		} `json:"outputs" yaml:"outputs" msgpack:"outputs"`
	} `json:"config" yaml:"config" msgpack:"config"`
}

func checkPlain(t *testing.T, p plain) {
	t.Helper()
	assert.Equal(t, "board.kicad_pcb", p.Board)
	assert.Equal(t, 1, p.Config.Version)
	assert.True(t, p.Config.Preflight["run_drc"])
	require.Len(t, p.Config.Outputs, 1)

	out := p.Config.Outputs[0]
	assert.Equal(t, "gerbers", out.Name)
	assert.Equal(t, "gerber", out.Type)
	assert.Equal(t, true, out.Options["tent_vias"], "embedded options are flattened")
	assert.Contains(t, out.Options, "gerber_precision")
	require.Len(t, out.Layers, 1)
	assert.Equal(t, "F.Cu", out.Layers[0].Layer.Name)
	assert.Equal(t, "F_Cu", out.Layers[0].Suffix)
}

func TestEncode(t *testing.T) {
	decoders := map[Format]func([]byte, any) error{
		FormatJSON:    json.Unmarshal,
		FormatYAML:    yaml.Unmarshal,
		FormatMsgpack: msgpack.Unmarshal,
	}

	for _, f := range Formats() {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, samplePlan(), f))

			var p plain
			require.NoError(t, decoders[f](buf.Bytes(), &p))
			checkPlain(t, p)
		})
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	for _, f := range Formats() {
		t.Run(string(f), func(t *testing.T) {
			path := filepath.Join(dir, "plans", "board"+f.Ext())
			require.NoError(t, Write(path, samplePlan(), f))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"YAML", FormatYAML},
		{"yml", FormatYAML},
		{"mpk", FormatMsgpack},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Encode(&buf, samplePlan(), Format("bson")))
	assert.Error(t, Write(filepath.Join(t.TempDir(), "plan"), samplePlan(), Format("bson")))
}

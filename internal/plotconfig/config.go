// Package plotconfig holds the resolved configuration handed to output
// generation: the preflight flags and one descriptor per requested output.
//
// Values are built by the reader package and are not modified afterwards.
package plotconfig

import (
	"github.com/thoreinstein/kiplot/internal/layer"
	"github.com/thoreinstein/kiplot/internal/options"
)

// Version is the only configuration document version understood.
const Version = 1

// Preflight records which checks were requested before generation.
type Preflight struct {
	CheckZoneFills    bool `json:"check_zone_fills" yaml:"check_zone_fills" msgpack:"check_zone_fills"`
	RunDRC            bool `json:"run_drc" yaml:"run_drc" msgpack:"run_drc"`
	RunERC            bool `json:"run_erc" yaml:"run_erc" msgpack:"run_erc"`
	UpdateXML         bool `json:"update_xml" yaml:"update_xml" msgpack:"update_xml"`
	IgnoreUnconnected bool `json:"ignore_unconnected" yaml:"ignore_unconnected" msgpack:"ignore_unconnected"`
}

// LayerConfig is one layer of an output.
type LayerConfig struct {
	Layer       layer.Descriptor `json:"layer" yaml:"layer" msgpack:"layer"`
	Description *string          `json:"description,omitempty" yaml:"description,omitempty" msgpack:"description,omitempty"`
	// Suffix is appended to the file name of the layer; empty by default.
	Suffix string `json:"suffix" yaml:"suffix" msgpack:"suffix"`
}

// Output describes one artifact to generate.
type Output struct {
	Name    string          `json:"name" yaml:"name" msgpack:"name"`
	Comment *string         `json:"comment,omitempty" yaml:"comment,omitempty" msgpack:"comment,omitempty"`
	Kind    options.Kind    `json:"type" yaml:"type" msgpack:"type"`
	Options options.Options `json:"options" yaml:"options" msgpack:"options"`
	Dir     string          `json:"dir" yaml:"dir" msgpack:"dir"`
	Layers  []LayerConfig   `json:"layers" yaml:"layers" msgpack:"layers"`
}

// Config is a resolved configuration.
type Config struct {
	Version   int       `json:"version" yaml:"version" msgpack:"version"`
	Preflight Preflight `json:"preflight" yaml:"preflight" msgpack:"preflight"`
	Outputs   []Output  `json:"outputs" yaml:"outputs" msgpack:"outputs"`
}

// New returns an empty configuration with every preflight check off.
func New() *Config {
	return &Config{
		Version: Version,
		Outputs: []Output{},
	}
}

// AddOutput appends out.
func (c *Config) AddOutput(out Output) {
	c.Outputs = append(c.Outputs, out)
}

// Output returns the first output named name.
func (c *Config) Output(name string) (Output, bool) {
	for _, o := range c.Outputs {
		if o.Name == name {
			return o, true
		}
	}
	return Output{}, false
}

// Names returns the output names in document order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Outputs))
	for _, o := range c.Outputs {
		names = append(names, o.Name)
	}
	return names
}

// Generator produces the artifact of one output. Implementations live
// outside this module.
type Generator interface {
	Generate(out Output) error
}

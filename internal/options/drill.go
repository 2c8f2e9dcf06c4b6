package options

// PlotFormat is the file format of a drill map.
type PlotFormat string

// Drill map formats.
const (
	FormatHPGL       PlotFormat = "hpgl"
	FormatPostScript PlotFormat = "ps"
	FormatGerber     PlotFormat = "gerber"
	FormatDXF        PlotFormat = "dxf"
	FormatSVG        PlotFormat = "svg"
	FormatPDF        PlotFormat = "pdf"
)

var plotFormats = map[string]PlotFormat{
	"hpgl":   FormatHPGL,
	"ps":     FormatPostScript,
	"gerber": FormatGerber,
	"dxf":    FormatDXF,
	"svg":    FormatSVG,
	"pdf":    FormatPDF,
}

// ParsePlotFormat returns the drill map format named s.
func ParsePlotFormat(s string) (PlotFormat, bool) {
	f, ok := plotFormats[s]
	return f, ok
}

// DrillMapOptions requests a drill map alongside the drill files.
type DrillMapOptions struct {
	Type PlotFormat `json:"type" yaml:"type" msgpack:"type"`
}

// DrillReportOptions requests a drill report.
type DrillReportOptions struct {
	Filename string `json:"filename" yaml:"filename" msgpack:"filename"`
}

// Drill holds the settings both drill formats share. Map and Report are nil
// unless requested.
type Drill struct {
	AuxOrigin `yaml:",inline" msgpack:",inline"`

	Map    *DrillMapOptions    `json:"map,omitempty" yaml:"map,omitempty" msgpack:"map,omitempty"`
	Report *DrillReportOptions `json:"report,omitempty" yaml:"report,omitempty" msgpack:"report,omitempty"`
}

// DrillOptions returns the shared drill settings.
func (d *Drill) DrillOptions() *Drill { return d }

// ExcellonOptions configures Excellon drill files.
type ExcellonOptions struct {
	Drill `yaml:",inline" msgpack:",inline"`

	MetricUnits          bool `json:"metric_units" yaml:"metric_units" msgpack:"metric_units"`
	PTHAndNPTHSingleFile bool `json:"pth_and_npth_single_file" yaml:"pth_and_npth_single_file" msgpack:"pth_and_npth_single_file"`
	MinimalHeader        bool `json:"minimal_header" yaml:"minimal_header" msgpack:"minimal_header"`
	MirrorYAxis          bool `json:"mirror_y_axis" yaml:"mirror_y_axis" msgpack:"mirror_y_axis"`
}

// Kind implements Options.
func (*ExcellonOptions) Kind() Kind { return KindExcellon }

// GerberDrillOptions configures Gerber drill files.
type GerberDrillOptions struct {
	Drill `yaml:",inline" msgpack:",inline"`
}

// Kind implements Options.
func (*GerberDrillOptions) Kind() Kind { return KindGerberDrill }

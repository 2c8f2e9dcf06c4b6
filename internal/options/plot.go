package options

import "strings"

// Line width bounds accepted by pcbnew, in millimetres.
const (
	MinLineWidth = 0.02
	MaxLineWidth = 2.0
)

// DrillMarks selects how holes are drawn on plotted copper.
type DrillMarks string

// Drill mark styles.
const (
	DrillMarksNone  DrillMarks = "none"
	DrillMarksSmall DrillMarks = "small"
	DrillMarksFull  DrillMarks = "full"
)

// Plot holds the settings every layer plot format shares.
type Plot struct {
	ExcludeEdgeLayer           bool `json:"exclude_edge_layer" yaml:"exclude_edge_layer" msgpack:"exclude_edge_layer"`
	ExcludePadsFromSilkscreen  bool `json:"exclude_pads_from_silkscreen" yaml:"exclude_pads_from_silkscreen" msgpack:"exclude_pads_from_silkscreen"`
	PlotSheetReference         bool `json:"plot_sheet_reference" yaml:"plot_sheet_reference" msgpack:"plot_sheet_reference"`
	PlotFootprintRefs          bool `json:"plot_footprint_refs" yaml:"plot_footprint_refs" msgpack:"plot_footprint_refs"`
	PlotFootprintValues        bool `json:"plot_footprint_values" yaml:"plot_footprint_values" msgpack:"plot_footprint_values"`
	ForcePlotInvisibleRefsVals bool `json:"force_plot_invisible_refs_vals" yaml:"force_plot_invisible_refs_vals" msgpack:"force_plot_invisible_refs_vals"`
	TentVias                   bool `json:"tent_vias" yaml:"tent_vias" msgpack:"tent_vias"`
	CheckZoneFills             bool `json:"check_zone_fills" yaml:"check_zone_fills" msgpack:"check_zone_fills"`
}

// PlotOptions returns the shared plot settings.
func (p *Plot) PlotOptions() *Plot { return p }

// AuxOrigin selects the auxiliary axis as the coordinate origin.
type AuxOrigin struct {
	UseAuxAxisAsOrigin bool `json:"use_aux_axis_as_origin" yaml:"use_aux_axis_as_origin" msgpack:"use_aux_axis_as_origin"`
}

// AuxOriginOptions returns the origin setting.
func (a *AuxOrigin) AuxOriginOptions() *AuxOrigin { return a }

// Stroke holds the default line width for formats that draw outlines.
type Stroke struct {
	LineWidth float64 `json:"line_width" yaml:"line_width" msgpack:"line_width"`
}

// StrokeOptions returns the stroke settings.
func (s *Stroke) StrokeOptions() *Stroke { return s }

// SetLineWidth sets the line width in millimetres.
func (s *Stroke) SetLineWidth(mm float64) error {
	if mm < MinLineWidth || mm > MaxLineWidth {
		return invalid("line_width", mm, "must be between %g and %g mm", MinLineWidth, MaxLineWidth)
	}
	s.LineWidth = mm
	return nil
}

// Mirror mirrors the plot.
type Mirror struct {
	MirrorPlot bool `json:"mirror_plot" yaml:"mirror_plot" msgpack:"mirror_plot"`
}

// MirrorOptions returns the mirror setting.
func (m *Mirror) MirrorOptions() *Mirror { return m }

// Negative inverts the plot.
type Negative struct {
	NegativePlot bool `json:"negative_plot" yaml:"negative_plot" msgpack:"negative_plot"`
}

// NegativeOptions returns the negative setting.
func (n *Negative) NegativeOptions() *Negative { return n }

// Sketch holds the outline-only and scaling settings of page formats.
type Sketch struct {
	SketchPlot bool `json:"sketch_plot" yaml:"sketch_plot" msgpack:"sketch_plot"`
	// Scaling is the plot scale; 0 fits the board to the page.
	Scaling float64 `json:"scaling" yaml:"scaling" msgpack:"scaling"`
}

// SketchOptions returns the sketch settings.
func (s *Sketch) SketchOptions() *Sketch { return s }

// SetScaling sets the plot scale.
func (s *Sketch) SetScaling(scale float64) error {
	if scale < 0 {
		return invalid("scaling", scale, "must not be negative")
	}
	s.Scaling = scale
	return nil
}

// Marks holds the drill mark style.
type Marks struct {
	DrillMarks DrillMarks `json:"drill_marks" yaml:"drill_marks" msgpack:"drill_marks"`
}

// MarksOptions returns the drill mark setting.
func (m *Marks) MarksOptions() *Marks { return m }

// SetDrillMarks sets the drill mark style from its name.
func (m *Marks) SetDrillMarks(name string) error {
	switch dm := DrillMarks(strings.ToLower(name)); dm {
	case DrillMarksNone, DrillMarksSmall, DrillMarksFull:
		m.DrillMarks = dm
		return nil
	default:
		return invalid("drill_marks", name, "unknown drill mark type, use none, small or full")
	}
}

// GerberOptions configures Gerber layer plots.
type GerberOptions struct {
	Plot      `yaml:",inline" msgpack:",inline"`
	AuxOrigin `yaml:",inline" msgpack:",inline"`
	Stroke    `yaml:",inline" msgpack:",inline"`

	SubtractMaskFromSilk   bool    `json:"subtract_mask_from_silk" yaml:"subtract_mask_from_silk" msgpack:"subtract_mask_from_silk"`
	UseProtelExtensions    bool    `json:"use_protel_extensions" yaml:"use_protel_extensions" msgpack:"use_protel_extensions"`
	GerberPrecision        float64 `json:"gerber_precision" yaml:"gerber_precision" msgpack:"gerber_precision"`
	CreateGerberJobFile    bool    `json:"create_gerber_job_file" yaml:"create_gerber_job_file" msgpack:"create_gerber_job_file"`
	UseGerberX2Attributes  bool    `json:"use_gerber_x2_attributes" yaml:"use_gerber_x2_attributes" msgpack:"use_gerber_x2_attributes"`
	UseGerberNetAttributes bool    `json:"use_gerber_net_attributes" yaml:"use_gerber_net_attributes" msgpack:"use_gerber_net_attributes"`
}

// Kind implements Options.
func (*GerberOptions) Kind() Kind { return KindGerber }

// SetGerberPrecision sets the coordinate format; pcbnew supports 4.5 and 4.6.
func (g *GerberOptions) SetGerberPrecision(p float64) error {
	if p != 4.5 && p != 4.6 {
		return invalid("gerber_precision", p, "bad Gerber precision, use 4.5 or 4.6")
	}
	g.GerberPrecision = p
	return nil
}

// PostScriptOptions configures PostScript layer plots.
type PostScriptOptions struct {
	Plot     `yaml:",inline" msgpack:",inline"`
	Stroke   `yaml:",inline" msgpack:",inline"`
	Mirror   `yaml:",inline" msgpack:",inline"`
	Negative `yaml:",inline" msgpack:",inline"`
	Sketch   `yaml:",inline" msgpack:",inline"`
	Marks    `yaml:",inline" msgpack:",inline"`

	ScaleAdjustX float64 `json:"scale_adjust_x" yaml:"scale_adjust_x" msgpack:"scale_adjust_x"`
	ScaleAdjustY float64 `json:"scale_adjust_y" yaml:"scale_adjust_y" msgpack:"scale_adjust_y"`
	WidthAdjust  float64 `json:"width_adjust" yaml:"width_adjust" msgpack:"width_adjust"`
	A4Output     bool    `json:"a4_output" yaml:"a4_output" msgpack:"a4_output"`
}

// Kind implements Options.
func (*PostScriptOptions) Kind() Kind { return KindPostScript }

// HPGLOptions configures HPGL layer plots.
type HPGLOptions struct {
	Plot   `yaml:",inline" msgpack:",inline"`
	Mirror `yaml:",inline" msgpack:",inline"`
	Sketch `yaml:",inline" msgpack:",inline"`
	Marks  `yaml:",inline" msgpack:",inline"`

	PenWidth float64 `json:"pen_width" yaml:"pen_width" msgpack:"pen_width"`
}

// Kind implements Options.
func (*HPGLOptions) Kind() Kind { return KindHPGL }

// SetPenWidth sets the pen diameter.
func (h *HPGLOptions) SetPenWidth(w float64) error {
	if w <= 0 {
		return invalid("pen_width", w, "must be positive")
	}
	h.PenWidth = w
	return nil
}

// DXFOptions configures DXF layer plots.
type DXFOptions struct {
	Plot      `yaml:",inline" msgpack:",inline"`
	AuxOrigin `yaml:",inline" msgpack:",inline"`
	Marks     `yaml:",inline" msgpack:",inline"`

	PolygonMode bool `json:"polygon_mode" yaml:"polygon_mode" msgpack:"polygon_mode"`
}

// Kind implements Options.
func (*DXFOptions) Kind() Kind { return KindDXF }

// PDFOptions configures PDF layer plots.
type PDFOptions struct {
	Plot     `yaml:",inline" msgpack:",inline"`
	Stroke   `yaml:",inline" msgpack:",inline"`
	Mirror   `yaml:",inline" msgpack:",inline"`
	Negative `yaml:",inline" msgpack:",inline"`
	Marks    `yaml:",inline" msgpack:",inline"`
}

// Kind implements Options.
func (*PDFOptions) Kind() Kind { return KindPDF }

// SVGOptions configures SVG layer plots.
type SVGOptions struct {
	Plot     `yaml:",inline" msgpack:",inline"`
	Stroke   `yaml:",inline" msgpack:",inline"`
	Mirror   `yaml:",inline" msgpack:",inline"`
	Negative `yaml:",inline" msgpack:",inline"`
	Marks    `yaml:",inline" msgpack:",inline"`
}

// Kind implements Options.
func (*SVGOptions) Kind() Kind { return KindSVG }

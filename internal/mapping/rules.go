package mapping

import (
	"slices"

	"github.com/thoreinstein/kiplot/internal/errors"
	"github.com/thoreinstein/kiplot/internal/options"
)

// Setter stores a converted value into the options of an output.
type Setter func(o options.Options, v any) error

// Rule maps one document key onto the options of the kinds it applies to.
type Rule struct {
	// Key is the document key.
	Key string
	// Kinds lists the output kinds accepting the key.
	Kinds []options.Kind
	// To names the destination field, for listings.
	To string
	// Required reports whether the key must be present; nil means always.
	Required func(s Section) bool
	// Transform converts the raw value before Set; nil passes it through.
	Transform func(v any) (any, error)
	Set       Setter
}

// AppliesTo reports whether the rule is evaluated for kind.
func (r Rule) AppliesTo(kind options.Kind) bool {
	return slices.Contains(r.Kinds, kind)
}

// Mandatory reports whether the key is required in s.
func (r Rule) Mandatory(s Section) bool {
	if r.Required == nil {
		return true
	}
	return r.Required(s)
}

func never(Section) bool { return false }

var (
	anyLayer = []options.Kind{
		options.KindGerber, options.KindPostScript, options.KindSVG,
		options.KindHPGL, options.KindPDF, options.KindDXF,
	}
	anyDrill = []options.Kind{options.KindExcellon, options.KindGerberDrill}
)

func kinds(groups ...[]options.Kind) []options.Kind {
	var out []options.Kind
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func only(k ...options.Kind) []options.Kind { return k }

// Capabilities of the option structs, reached through their embedded parts.
type (
	plotter      interface{ PlotOptions() *options.Plot }
	auxOriginer  interface{ AuxOriginOptions() *options.AuxOrigin }
	mirrorer     interface{ MirrorOptions() *options.Mirror }
	negativer    interface{ NegativeOptions() *options.Negative }
	sketcher     interface{ SketchOptions() *options.Sketch }
	driller      interface{ DrillOptions() *options.Drill }
	lineWidther  interface{ SetLineWidth(mm float64) error }
	scaler       interface{ SetScaling(scale float64) error }
	drillMarker  interface{ SetDrillMarks(name string) error }
	formatSetter interface{ SetFormat(name string) error }
)

// bind converts the raw value with conv and hands it to set on the
// capability C of the target options.
func bind[C, T any](conv func(any) (T, error), set func(C, T) error) Setter {
	return func(o options.Options, v any) error {
		c, ok := o.(C)
		if !ok {
			return errors.Newf("%s options cannot hold this key", o.Kind())
		}
		t, err := conv(v)
		if err != nil {
			return err
		}
		return set(c, t)
	}
}

func flag[C any](field func(C) *bool) Setter {
	return bind(options.Bool, func(c C, b bool) error {
		*field(c) = b
		return nil
	})
}

func number[C any](field func(C) *float64) Setter {
	return bind(options.Float, func(c C, f float64) error {
		*field(c) = f
		return nil
	})
}

func text[C any](field func(C) *string) Setter {
	return bind(options.String, func(c C, s string) error {
		*field(c) = s
		return nil
	})
}

func plotFlag(field func(p *options.Plot) *bool) Setter {
	return flag(func(c plotter) *bool { return field(c.PlotOptions()) })
}

func as[T any](v any) (T, error) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, &options.ValidationError{Message: "unexpected value", Value: v}
	}
	return t, nil
}

// drillMap turns the `map` mapping into drill map options.
func drillMap(v any) (any, error) {
	s, ok := AsSection(v)
	if !ok {
		return nil, &options.ValidationError{Field: "map", Message: "expected a mapping", Value: v}
	}
	raw, ok := s.Get("type")
	if !ok {
		return nil, &errors.MissingError{Key: "type", Context: "in drill map section"}
	}
	name, err := options.String(raw)
	if err != nil {
		return nil, err
	}
	format, ok := options.ParsePlotFormat(name)
	if !ok {
		return nil, errors.Mark(errors.Newf("unknown drill map type: %s", name), errors.ErrUnknownType)
	}
	return &options.DrillMapOptions{Type: format}, nil
}

// drillReport turns the `report` mapping into drill report options.
func drillReport(v any) (any, error) {
	s, ok := AsSection(v)
	if !ok {
		return nil, &options.ValidationError{Field: "report", Message: "expected a mapping", Value: v}
	}
	raw, ok := s.Get("filename")
	if !ok {
		return nil, &errors.MissingError{Key: "filename", Context: "in drill report section"}
	}
	name, err := options.String(raw)
	if err != nil {
		return nil, err
	}
	return &options.DrillReportOptions{Filename: name}, nil
}

// Rules is the complete key table, evaluated in order.
var Rules = []Rule{
	{
		Key:   "use_aux_axis_as_origin",
		Kinds: kinds(only(options.KindGerber, options.KindDXF), anyDrill),
		To:    "UseAuxAxisAsOrigin",
		Set:   flag(func(c auxOriginer) *bool { return &c.AuxOriginOptions().UseAuxAxisAsOrigin }),
	},
	{
		Key:   "exclude_edge_layer",
		Kinds: anyLayer,
		To:    "ExcludeEdgeLayer",
		Set:   plotFlag(func(p *options.Plot) *bool { return &p.ExcludeEdgeLayer }),
	},
	{
		Key:   "exclude_pads_from_silkscreen",
		Kinds: anyLayer,
		To:    "ExcludePadsFromSilkscreen",
		Set:   plotFlag(func(p *options.Plot) *bool { return &p.ExcludePadsFromSilkscreen }),
	},
	{
		Key:   "plot_sheet_reference",
		Kinds: anyLayer,
		To:    "PlotSheetReference",
		Set:   plotFlag(func(p *options.Plot) *bool { return &p.PlotSheetReference }),
	},
	{
		Key:   "plot_footprint_refs",
		Kinds: anyLayer,
		To:    "PlotFootprintRefs",
		Set:   plotFlag(func(p *options.Plot) *bool { return &p.PlotFootprintRefs }),
	},
	{
		Key:   "plot_footprint_values",
		Kinds: anyLayer,
		To:    "PlotFootprintValues",
		Set:   plotFlag(func(p *options.Plot) *bool { return &p.PlotFootprintValues }),
	},
	{
		Key:   "force_plot_invisible_refs_vals",
		Kinds: anyLayer,
		To:    "ForcePlotInvisibleRefsVals",
		Set:   plotFlag(func(p *options.Plot) *bool { return &p.ForcePlotInvisibleRefsVals }),
	},
	{
		Key:   "tent_vias",
		Kinds: anyLayer,
		To:    "TentVias",
		Set:   plotFlag(func(p *options.Plot) *bool { return &p.TentVias }),
	},
	{
		Key:   "check_zone_fills",
		Kinds: anyLayer,
		To:    "CheckZoneFills",
		Set:   plotFlag(func(p *options.Plot) *bool { return &p.CheckZoneFills }),
	},
	{
		Key:   "line_width",
		Kinds: only(options.KindGerber, options.KindPostScript, options.KindSVG, options.KindPDF),
		To:    "LineWidth",
		Set:   bind(options.Float, lineWidther.SetLineWidth),
	},

	// Gerber
	{
		Key:   "subtract_mask_from_silk",
		Kinds: only(options.KindGerber),
		To:    "SubtractMaskFromSilk",
		Set:   flag(func(g *options.GerberOptions) *bool { return &g.SubtractMaskFromSilk }),
	},
	{
		Key:   "use_protel_extensions",
		Kinds: only(options.KindGerber),
		To:    "UseProtelExtensions",
		Set:   flag(func(g *options.GerberOptions) *bool { return &g.UseProtelExtensions }),
	},
	{
		Key:   "gerber_precision",
		Kinds: only(options.KindGerber),
		To:    "GerberPrecision",
		Set:   bind(options.Float, (*options.GerberOptions).SetGerberPrecision),
	},
	{
		Key:   "create_gerber_job_file",
		Kinds: only(options.KindGerber),
		To:    "CreateGerberJobFile",
		Set:   flag(func(g *options.GerberOptions) *bool { return &g.CreateGerberJobFile }),
	},
	{
		Key:   "use_gerber_x2_attributes",
		Kinds: only(options.KindGerber),
		To:    "UseGerberX2Attributes",
		Set:   flag(func(g *options.GerberOptions) *bool { return &g.UseGerberX2Attributes }),
	},
	{
		Key:   "use_gerber_net_attributes",
		Kinds: only(options.KindGerber),
		To:    "UseGerberNetAttributes",
		Set:   flag(func(g *options.GerberOptions) *bool { return &g.UseGerberNetAttributes }),
	},

	// Page formats
	{
		Key:   "mirror_plot",
		Kinds: only(options.KindPostScript, options.KindSVG, options.KindHPGL, options.KindPDF),
		To:    "MirrorPlot",
		Set:   flag(func(c mirrorer) *bool { return &c.MirrorOptions().MirrorPlot }),
	},
	{
		Key:   "negative_plot",
		Kinds: only(options.KindPostScript, options.KindSVG, options.KindPDF),
		To:    "NegativePlot",
		Set:   flag(func(c negativer) *bool { return &c.NegativeOptions().NegativePlot }),
	},
	{
		Key:   "sketch_plot",
		Kinds: only(options.KindPostScript, options.KindHPGL),
		To:    "SketchPlot",
		Set:   flag(func(c sketcher) *bool { return &c.SketchOptions().SketchPlot }),
	},
	{
		Key:   "scaling",
		Kinds: only(options.KindPostScript, options.KindHPGL),
		To:    "Scaling",
		Set:   bind(options.Float, scaler.SetScaling),
	},
	{
		Key:   "drill_marks",
		Kinds: only(options.KindPostScript, options.KindSVG, options.KindDXF, options.KindHPGL, options.KindPDF),
		To:    "DrillMarks",
		Set:   bind(options.String, drillMarker.SetDrillMarks),
	},

	// PostScript
	{
		Key:   "scale_adjust_x",
		Kinds: only(options.KindPostScript),
		To:    "ScaleAdjustX",
		Set:   number(func(p *options.PostScriptOptions) *float64 { return &p.ScaleAdjustX }),
	},
	{
		Key:   "scale_adjust_y",
		Kinds: only(options.KindPostScript),
		To:    "ScaleAdjustY",
		Set:   number(func(p *options.PostScriptOptions) *float64 { return &p.ScaleAdjustY }),
	},
	{
		Key:   "width_adjust",
		Kinds: only(options.KindPostScript),
		To:    "WidthAdjust",
		Set:   number(func(p *options.PostScriptOptions) *float64 { return &p.WidthAdjust }),
	},
	{
		Key:   "a4_output",
		Kinds: only(options.KindPostScript),
		To:    "A4Output",
		Set:   flag(func(p *options.PostScriptOptions) *bool { return &p.A4Output }),
	},

	{
		Key:   "pen_width",
		Kinds: only(options.KindHPGL),
		To:    "PenWidth",
		Set:   bind(options.Float, (*options.HPGLOptions).SetPenWidth),
	},
	{
		Key:   "polygon_mode",
		Kinds: only(options.KindDXF),
		To:    "PolygonMode",
		Set:   flag(func(d *options.DXFOptions) *bool { return &d.PolygonMode }),
	},

	// Drill
	{
		Key:       "map",
		Kinds:     anyDrill,
		To:        "Map",
		Required:  never,
		Transform: drillMap,
		Set: bind(as[*options.DrillMapOptions], func(c driller, m *options.DrillMapOptions) error {
			c.DrillOptions().Map = m
			return nil
		}),
	},
	{
		Key:       "report",
		Kinds:     anyDrill,
		To:        "Report",
		Required:  never,
		Transform: drillReport,
		Set: bind(as[*options.DrillReportOptions], func(c driller, r *options.DrillReportOptions) error {
			c.DrillOptions().Report = r
			return nil
		}),
	},
	{
		Key:   "metric_units",
		Kinds: only(options.KindExcellon),
		To:    "MetricUnits",
		Set:   flag(func(e *options.ExcellonOptions) *bool { return &e.MetricUnits }),
	},
	{
		Key:   "pth_and_npth_single_file",
		Kinds: only(options.KindExcellon),
		To:    "PTHAndNPTHSingleFile",
		Set:   flag(func(e *options.ExcellonOptions) *bool { return &e.PTHAndNPTHSingleFile }),
	},
	{
		Key:   "minimal_header",
		Kinds: only(options.KindExcellon),
		To:    "MinimalHeader",
		Set:   flag(func(e *options.ExcellonOptions) *bool { return &e.MinimalHeader }),
	},
	{
		Key:   "mirror_y_axis",
		Kinds: only(options.KindExcellon),
		To:    "MirrorYAxis",
		Set:   flag(func(e *options.ExcellonOptions) *bool { return &e.MirrorYAxis }),
	},

	// Reports
	{
		Key:   "format",
		Kinds: only(options.KindPosition, options.KindKiBoM),
		To:    "Format",
		Set:   bind(options.String, formatSetter.SetFormat),
	},
	{
		Key:   "units",
		Kinds: only(options.KindPosition),
		To:    "Units",
		Set:   bind(options.String, (*options.PositionOptions).SetUnits),
	},
	{
		Key:   "separate_files_for_front_and_back",
		Kinds: only(options.KindPosition),
		To:    "SeparateFilesForFrontAndBack",
		Set:   flag(func(p *options.PositionOptions) *bool { return &p.SeparateFilesForFrontAndBack }),
	},
	{
		Key:   "only_smd",
		Kinds: only(options.KindPosition),
		To:    "OnlySMD",
		Set:   flag(func(p *options.PositionOptions) *bool { return &p.OnlySMD }),
	},
	{
		Key:      "blacklist",
		Kinds:    only(options.KindIBoM),
		To:       "Blacklist",
		Required: never,
		Set: bind(options.StringList, func(i *options.IBoMOptions, refs []string) error {
			i.Blacklist = refs
			return nil
		}),
	},
	{
		Key:      "name_format",
		Kinds:    only(options.KindIBoM),
		To:       "NameFormat",
		Required: never,
		Set:      text(func(i *options.IBoMOptions) *string { return &i.NameFormat }),
	},

	// Print jobs
	{
		Key:      "output",
		Kinds:    only(options.KindSchPrint),
		To:       "Output",
		Required: never,
		Set:      text(func(s *options.SchPrintOptions) *string { return &s.Output }),
	},
	{
		Key:   "output_name",
		Kinds: only(options.KindPCBPrint),
		To:    "OutputName",
		Set:   bind(options.String, (*options.PCBPrintOptions).SetOutputName),
	},
}

// RulesFor returns the rules evaluated for kind, in table order.
func RulesFor(kind options.Kind) []Rule {
	var out []Rule
	for _, r := range Rules {
		if r.AppliesTo(kind) {
			out = append(out, r)
		}
	}
	return out
}

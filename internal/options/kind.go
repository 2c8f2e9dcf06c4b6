package options

import "slices"

// Kind identifies an output type as written in the configuration document.
type Kind string

// Output kinds.
const (
	KindGerber      Kind = "gerber"
	KindPostScript  Kind = "ps"
	KindHPGL        Kind = "hpgl"
	KindDXF         Kind = "dxf"
	KindPDF         Kind = "pdf"
	KindSVG         Kind = "svg"
	KindGerberDrill Kind = "gerb_drill"
	KindExcellon    Kind = "excellon"
	KindPosition    Kind = "position"
	KindKiBoM       Kind = "kibom"
	KindIBoM        Kind = "ibom"
	KindSchPrint    Kind = "pdf_sch_print"
	KindPCBPrint    Kind = "pdf_pcb_print"
)

// kinds lists every kind in documentation order.
var kinds = []Kind{
	KindGerber, KindPostScript, KindHPGL, KindDXF, KindPDF, KindSVG,
	KindGerberDrill, KindExcellon, KindPosition, KindKiBoM, KindIBoM,
	KindSchPrint, KindPCBPrint,
}

var descriptions = map[Kind]string{
	KindGerber:      "Gerber photoplot per layer",
	KindPostScript:  "PostScript plot per layer",
	KindHPGL:        "HPGL pen plot per layer",
	KindDXF:         "DXF drawing per layer",
	KindPDF:         "PDF plot per layer",
	KindSVG:         "SVG plot per layer",
	KindGerberDrill: "Gerber drill files",
	KindExcellon:    "Excellon drill files",
	KindPosition:    "Pick and place position files",
	KindKiBoM:       "KiBoM bill of materials",
	KindIBoM:        "Interactive HTML bill of materials",
	KindSchPrint:    "Schematic printed to PDF",
	KindPCBPrint:    "Board layers printed to a single PDF",
}

// Kinds returns every known kind.
func Kinds() []Kind {
	return slices.Clone(kinds)
}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, bool) {
	k := Kind(s)
	if slices.Contains(kinds, k) {
		return k, true
	}
	return "", false
}

func (k Kind) String() string {
	return string(k)
}

// Description returns a one-line summary of what the kind produces.
func (k Kind) Description() string {
	return descriptions[k]
}

// OptionsOptional reports whether an output of this kind may omit its
// options section.
func (k Kind) OptionsOptional() bool {
	return k == KindIBoM || k == KindSchPrint
}

// RequiresLayers reports whether an output of this kind must list at least
// one layer.
func (k Kind) RequiresLayers() bool {
	return k == KindPCBPrint
}

// PlotsLayers reports whether the layer list of an output of this kind is
// used at all.
func (k Kind) PlotsLayers() bool {
	switch k {
	case KindGerber, KindPostScript, KindHPGL, KindDXF, KindPDF, KindSVG, KindPCBPrint:
		return true
	default:
		return false
	}
}

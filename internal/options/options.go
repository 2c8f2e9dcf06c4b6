// Package options defines the typed option set of each output kind.
//
// Every kind has its own struct; settings shared by several kinds live in
// small embedded structs (Plot, AuxOrigin, Stroke, Mirror, Negative, Sketch,
// Marks, Drill) reachable through accessor methods, so code that sets a
// shared field can do so without knowing the concrete kind. Fields whose
// values are constrained are set through validating setters returning a
// *ValidationError.
package options

import "github.com/thoreinstein/kiplot/internal/errors"

// Options is the typed option set of one output.
type Options interface {
	Kind() Kind
}

// New returns empty options for kind.
func New(kind Kind) (Options, error) {
	switch kind {
	case KindGerber:
		return &GerberOptions{}, nil
	case KindPostScript:
		return &PostScriptOptions{}, nil
	case KindHPGL:
		return &HPGLOptions{}, nil
	case KindDXF:
		return &DXFOptions{}, nil
	case KindPDF:
		return &PDFOptions{}, nil
	case KindSVG:
		return &SVGOptions{}, nil
	case KindGerberDrill:
		return &GerberDrillOptions{}, nil
	case KindExcellon:
		return &ExcellonOptions{}, nil
	case KindPosition:
		return &PositionOptions{}, nil
	case KindKiBoM:
		return &KiBoMOptions{}, nil
	case KindIBoM:
		return &IBoMOptions{}, nil
	case KindSchPrint:
		return &SchPrintOptions{}, nil
	case KindPCBPrint:
		return &PCBPrintOptions{}, nil
	default:
		return nil, errors.Mark(errors.Newf("unknown output type '%s'", kind), errors.ErrUnknownType)
	}
}

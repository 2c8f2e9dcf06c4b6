package layer

// Layer ids as numbered by pcbnew in KiCad 5. Copper occupies 0..31 with
// inner copper in between; technical layers follow.
const (
	FCu      = 0
	BCu      = 31
	BAdhes   = 32
	FAdhes   = 33
	BPaste   = 34
	FPaste   = 35
	BSilkS   = 36
	FSilkS   = 37
	BMask    = 38
	FMask    = 39
	DwgsUser = 40
	CmtsUser = 41
	Eco1User = 42
	Eco2User = 43
	EdgeCuts = 44
	Margin   = 45
	BCrtYd   = 46
	FCrtYd   = 47
	BFab     = 48
	FFab     = 49
)

// Count is the number of layer slots in a board.
const Count = 50

// wellKnown maps the standard layer names to their fixed ids.
var wellKnown = map[string]int{
	"F.Cu":      FCu,
	"B.Cu":      BCu,
	"F.Adhes":   FAdhes,
	"B.Adhes":   BAdhes,
	"F.Paste":   FPaste,
	"B.Paste":   BPaste,
	"F.SilkS":   FSilkS,
	"B.SilkS":   BSilkS,
	"F.Mask":    FMask,
	"B.Mask":    BMask,
	"Dwgs.User": DwgsUser,
	"Cmts.User": CmtsUser,
	"Eco1.User": Eco1User,
	"Eco2.User": Eco2User,
	"Edge.Cuts": EdgeCuts,
	"Margin":    Margin,
	"F.CrtYd":   FCrtYd,
	"B.CrtYd":   BCrtYd,
	"F.Fab":     FFab,
	"B.Fab":     BFab,
}

// WellKnownNames returns the standard layer names.
func WellKnownNames() []string {
	names := make([]string, 0, len(wellKnown))
	for name := range wellKnown {
		names = append(names, name)
	}
	return names
}

// IsInnerCopper reports whether id lies strictly between front and back copper.
func IsInnerCopper(id int) bool {
	return id > FCu && id < BCu
}

// Package paths resolves the files and directories kiplot works with.
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg. Tool settings live in
// <ConfigHome>/kiplot and exported plans default to <CacheHome>/kiplot/plans:
//
//	paths.ConfigDir() // ~/.config/kiplot
//	paths.PlanDir()   // ~/.cache/kiplot/plans
//
// # Board and Document Discovery
//
// When no board is named on the command line, [FindBoard] picks the only
// *.kicad_pcb file in the working directory. [Document] falls back to
// .kiplot.yaml next to the board:
//
//	board, err := paths.FindBoard(".")
//	if errors.Is(err, paths.ErrAmbiguousBoard) {
//	    // ask for --board
//	}
//	doc, _ := paths.Document(flagConfig, board)
package paths

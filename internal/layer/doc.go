// Package layer extracts the layer table from a KiCad board file and
// resolves configuration layer names to board layer ids.
//
// The table is recovered by a plain text scan of the board's first
// "(layers" section; nothing else in the board is parsed.
//
//	table, err := layer.LoadTable("board.kicad_pcb")
//	if err != nil {
//	    return err
//	}
//	d, err := layer.NewResolver(table).Resolve("In1.Cu")
//
// Names resolve in a fixed priority: the standard KiCad names first, then
// names the board declares, then the numbered form Inner.N.
package layer

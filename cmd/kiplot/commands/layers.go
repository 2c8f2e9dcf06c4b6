package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/kiplot/internal/errors"
	"github.com/thoreinstein/kiplot/internal/layer"
)

var layersJSON bool

func init() {
	layersCmd.Flags().BoolVar(&layersJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(layersCmd)
}

var layersCmd = &cobra.Command{
	Use:   "layers [name...]",
	Short: "Show the board's layer table or resolve layer names",
	Long: `Without arguments, list the layers declared in the board's layer table.

With arguments, resolve each name the way a plot configuration would: the
well-known KiCad names first, then names declared by the board, then
Inner.N for numbered inner copper.`,
	Example: `  # List declared layers
  kiplot layers -b amp.kicad_pcb

  # Resolve names
  kiplot layers -b amp.kicad_pcb F.Cu GND.Cu Inner.2`,
	RunE: runLayers,
}

// layerJSON is one row of the JSON listing.
type layerJSON struct {
	Name  string `json:"name"`
	ID    int    `json:"id"`
	Inner bool   `json:"inner,omitempty"`
	Error string `json:"error,omitempty"`
}

func runLayers(cmd *cobra.Command, args []string) error {
	board := boardFlag
	if board == "" {
		in, err := resolveInputs()
		if err != nil {
			return err
		}
		board = in.Board
	}

	table, err := layer.LoadTable(board)
	if err != nil {
		return errors.NewPCBError(err)
	}
	return runLayersWithWriter(cmd.OutOrStdout(), table, args, layersJSON)
}

// runLayersWithWriter allows injecting a writer for testing. An unresolved
// name is listed and makes the command fail.
func runLayersWithWriter(w io.Writer, table *layer.Table, names []string, asJSON bool) error {
	var rows []layerJSON
	failed := 0

	if len(names) == 0 {
		for _, e := range table.Entries() {
			rows = append(rows, layerJSON{Name: e.Name, ID: e.ID, Inner: layer.IsInnerCopper(e.ID)})
		}
	} else {
		resolver := layer.NewResolver(table)
		for _, name := range names {
			d, err := resolver.Resolve(name)
			if err != nil {
				failed++
				rows = append(rows, layerJSON{Name: name, Error: err.Error()})
				continue
			}
			rows = append(rows, layerJSON{Name: name, ID: d.ID, Inner: d.Inner})
		}
	}

	if asJSON {
		if rows == nil {
			rows = []layerJSON{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			return errors.Wrap(err, "encoding layers")
		}
	} else if err := printLayers(w, rows, len(names) == 0); err != nil {
		return errors.Wrap(err, "writing layers")
	}

	if failed > 0 {
		return errors.NewUserError(errors.Newf("%d layer name(s) did not resolve", failed), "")
	}
	return nil
}

func printLayers(w io.Writer, rows []layerJSON, listing bool) error {
	if listing && len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No layers declared by the board.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tINNER")
	for _, r := range rows {
		if r.Error != "" {
			fmt.Fprintf(tw, "-\t%s\t%s\n", r.Name, r.Error)
			continue
		}
		inner := ""
		if r.Inner {
			inner = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", r.ID, r.Name, inner)
	}
	return tw.Flush()
}

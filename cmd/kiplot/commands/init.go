package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/kiplot/internal/errors"
	"github.com/thoreinstein/kiplot/internal/layer"
	"github.com/thoreinstein/kiplot/pkg/fileutil"
)

var (
	initYes   bool
	initForce bool
)

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Non-interactive mode, accept all defaults")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter plot configuration",
	Long: `Write a starter plot configuration next to the board.

The starter produces Gerbers for every copper layer the board declares plus
the usual technical layers, Excellon drill files and a pick and place file.`,
	Example: `  # Create .kiplot.yaml next to the only board in this directory
  kiplot init

  # Non-interactive, overwriting an existing file
  kiplot init -b amp.kicad_pcb --yes --force

  See Also: kiplot check`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	in, err := resolveInputs()
	if err != nil {
		return err
	}

	table, err := layer.LoadTable(in.Board)
	if err != nil {
		return errors.NewPCBError(err)
	}

	w := cmd.OutOrStdout()
	if _, err := os.Stat(in.Document); err == nil && !initForce {
		fmt.Fprintf(w, "Configuration already exists at %s\n", in.Document)
		fmt.Fprintln(w, "Use --force to overwrite")
		return nil
	}

	if !initYes {
		fmt.Fprintln(w, "This will create:")
		fmt.Fprintf(w, "  %s\n", in.Document)
		fmt.Fprintln(w)
		if !confirm(cmd.InOrStdin(), w, "Proceed?") {
			fmt.Fprintln(w, "Aborted")
			return nil
		}
	}

	if err := fileutil.AtomicWriteFile(in.Document, []byte(starterConfig(table)), fileutil.DefaultPerm); err != nil {
		return errors.NewSystemError(err, "Check that the board directory is writable")
	}

	fmt.Fprintf(w, "Created %s\n", in.Document)
	return nil
}

// technicalLayers are plotted by the starter next to the copper.
var technicalLayers = []string{"F.SilkS", "B.SilkS", "F.Mask", "B.Mask", "Edge.Cuts"}

// starterConfig renders the starter document for a board.
func starterConfig(table *layer.Table) string {
	var copper []string
	for _, e := range table.Entries() {
		if e.ID <= layer.BCu {
			copper = append(copper, e.Name)
		}
	}
	if len(copper) == 0 {
		copper = []string{"F.Cu", "B.Cu"}
	}

	var sb strings.Builder
	sb.WriteString(`# Plot configuration for kiplot.
kiplot:
  version: 1

preflight:
  run_drc: false
  check_zone_fills: false

outputs:
  - name: gerbers
    comment: Gerbers for the board house
    type: gerber
    dir: gerberdir
    options:
      exclude_edge_layer: true
      exclude_pads_from_silkscreen: false
      use_aux_axis_as_origin: false
      plot_sheet_reference: false
      plot_footprint_refs: true
      plot_footprint_values: true
      force_plot_invisible_refs_vals: false
      tent_vias: true
      check_zone_fills: false
      line_width: 0.15
      subtract_mask_from_silk: false
      use_protel_extensions: false
      gerber_precision: 4.6
      create_gerber_job_file: true
      use_gerber_x2_attributes: true
      use_gerber_net_attributes: false
    layers:
`)
	for _, name := range append(copper, technicalLayers...) {
		fmt.Fprintf(&sb, "      - layer: %q\n        suffix: %q\n", name, strings.ReplaceAll(name, ".", "_"))
	}
	sb.WriteString(`
  - name: drill
    comment: Excellon drill files
    type: excellon
    dir: gerberdir
    options:
      metric_units: true
      pth_and_npth_single_file: false
      use_aux_axis_as_origin: false
      minimal_header: false
      mirror_y_axis: false
      report:
        filename: drill_report.rpt
      map:
        type: pdf

  - name: position
    comment: Pick and place file
    type: position
    dir: positiondir
    options:
      format: ASCII
      units: millimeters
      separate_files_for_front_and_back: true
      only_smd: true
`)
	return sb.String()
}

// confirm prompts the user for a yes/no answer on in.
func confirm(in io.Reader, w io.Writer, prompt string) bool {
	fmt.Fprintf(w, "%s [y/N] ", prompt)
	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

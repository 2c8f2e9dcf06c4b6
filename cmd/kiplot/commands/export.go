package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/kiplot/internal/errors"
	"github.com/thoreinstein/kiplot/internal/export"
	"github.com/thoreinstein/kiplot/internal/logging"
	"github.com/thoreinstein/kiplot/internal/paths"
)

var (
	exportFormat string
	exportOutput string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "",
		"plan encoding: json, yaml, msgpack (default: export_format setting)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "",
		`plan file, "-" for stdout (default: ~/.cache/kiplot/plans/<board>.<ext>)`)
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the resolved configuration as a plan file",
	Long: `Resolve the plot configuration against the board and write the result,
with every option typed and every layer resolved to its id, as a plan file
for a generator.`,
	Example: `  # JSON plan in the cache directory
  kiplot export -b amp.kicad_pcb

  # MessagePack plan next to the board
  kiplot export -b amp.kicad_pcb -f msgpack -o amp.plan

  # Print a YAML plan
  kiplot export -f yaml -o -`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, _ []string) error {
	format, err := exportFormatFor(exportFormat)
	if err != nil {
		return errors.NewUserError(err, "")
	}
	in, err := resolveInputs()
	if err != nil {
		return err
	}

	logger := logging.FromContext(cmd.Context())
	cfg, err := loadConfig(logger, in)
	if err != nil {
		return err
	}

	plan := export.Plan{Board: in.Board, Source: in.Document, Config: cfg}
	if exportOutput == "-" {
		return export.Encode(cmd.OutOrStdout(), plan, format)
	}

	path := exportOutput
	if path == "" {
		path = paths.PlanPath(in.Board, format.Ext())
	}
	return runExportToFile(cmd.OutOrStdout(), path, plan, format)
}

// exportFormatFor picks the flag value, then the export_format setting.
func exportFormatFor(flag string) (export.Format, error) {
	if flag == "" && settings != nil {
		flag = settings.ExportFormat
	}
	if flag == "" {
		return export.FormatJSON, nil
	}
	return export.ParseFormat(flag)
}

func runExportToFile(w io.Writer, path string, plan export.Plan, format export.Format) error {
	if err := export.Write(path, plan, format); err != nil {
		return errors.NewSystemError(err, "Check that the output directory is writable")
	}
	if !quiet {
		fmt.Fprintf(w, "Wrote %s plan for %d output(s) to %s\n", format, len(plan.Config.Outputs), path)
	}
	return nil
}

package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/kiplot/internal/editor"
	"github.com/thoreinstein/kiplot/internal/errors"
	"github.com/thoreinstein/kiplot/internal/validator"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the plot configuration in your editor, then check it",
	Long: `Open the plot configuration in $KIPLOT_EDITOR, $EDITOR or $VISUAL and
check it against the board once the editor exits.`,
	Example: `  kiplot edit -b amp.kicad_pcb
  KIPLOT_EDITOR="code --wait" kiplot edit`,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, _ []string) error {
	in, err := resolveInputs()
	if err != nil {
		return err
	}
	if _, err := os.Stat(in.Document); err != nil {
		return errors.NewUserError(err, "Run: kiplot init")
	}

	streams := editor.Streams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
	if err := editor.Open(cmd.Context(), in.Document, streams); err != nil {
		return errors.NewSystemError(err, "Set KIPLOT_EDITOR to an editor command")
	}

	return runCheckWithWriter(cmd, cmd.OutOrStdout(), in, validator.FormatText)
}

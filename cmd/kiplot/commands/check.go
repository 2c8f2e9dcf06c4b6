package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/kiplot/internal/errors"
	"github.com/thoreinstein/kiplot/internal/logging"
	"github.com/thoreinstein/kiplot/internal/plotconfig"
	"github.com/thoreinstein/kiplot/internal/validator"
)

var (
	checkFormat string
	checkStrict bool
)

func init() {
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "text", "report format: text, json")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "treat warnings as errors")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a plot configuration against a board",
	Long: `Read the plot configuration, resolve it against the board's layer table
and report problems.

A configuration that cannot be read is reported as an error and exits with
status 7; an unreadable board exits with status 8. Lint warnings, such as
duplicate output names or layers given to outputs that ignore them, do not
fail the check unless --strict is set.`,
	Example: `  # Check .kiplot.yaml next to the board
  kiplot check -b amp.kicad_pcb

  # Machine readable report
  kiplot check -b amp.kicad_pcb --format json`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	format, err := validator.ParseFormat(checkFormat)
	if err != nil {
		return errors.NewUserError(err, "")
	}
	in, err := resolveInputs()
	if err != nil {
		return err
	}
	return runCheckWithWriter(cmd, cmd.OutOrStdout(), in, format)
}

// runCheckWithWriter allows injecting a writer for testing.
func runCheckWithWriter(cmd *cobra.Command, w io.Writer, in inputs, format validator.Format) error {
	logger := logging.FromContext(cmd.Context())
	reporter := validator.NewReporter(w, format, in.Document)

	cfg, err := loadConfig(logger, in)
	if err != nil {
		if errors.ExitCode(err) != errors.ExitBadConfig {
			return err
		}
		result := &validator.Result{}
		result.Add(configIssue(err))
		if reportErr := reporter.Report(result); reportErr != nil {
			return errors.Wrap(reportErr, "writing report")
		}
		return err
	}

	result := plotconfig.Lint(cfg)
	if err := reporter.Report(result); err != nil {
		return errors.Wrap(err, "writing report")
	}

	if checkStrict && result.HasWarnings() {
		return errors.NewExitError(
			errors.Newf("%d warning(s) in %s", len(result.Warnings()), in.Document),
			errors.ExitBadConfig)
	}
	return nil
}

// configIssue turns a read failure into a report entry, keeping the section
// and output it was found in.
func configIssue(err error) validator.Issue {
	issue := validator.Issue{
		Severity: validator.SeverityError,
		Message:  err.Error(),
	}

	var ce *errors.ConfigError
	if errors.As(err, &ce) {
		issue.Output = ce.Output
		issue.Message = ce.Err.Error()
		ctx := map[string]string{}
		if ce.Section != "" {
			ctx["section"] = ce.Section
		}
		if ce.Kind != "" {
			ctx["type"] = ce.Kind
		}
		if len(ctx) > 0 {
			issue.Context = ctx
		}
	}
	return issue
}

// Package commands implements the CLI commands for kiplot.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/kiplot/cmd"
	"github.com/thoreinstein/kiplot/internal/config"
	"github.com/thoreinstein/kiplot/internal/errors"
	"github.com/thoreinstein/kiplot/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// boardFlag and configFlag name the PCB file and the plot configuration.
var (
	boardFlag  string
	configFlag string
)

// settingsFlag names an explicit settings file.
var settingsFlag string

// settings holds the loaded tool settings; configLoadErr any failure
// loading them.
var (
	settings      *config.Settings
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&boardFlag, "board", "b", "",
		"PCB file (default: the only *.kicad_pcb in the working directory)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "",
		"plot configuration (default: .kiplot.yaml next to the board)")
	rootCmd.PersistentFlags().StringVar(&settingsFlag, "settings", "",
		"settings file (default: settings.yaml in . or ~/.config/kiplot)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("kiplot version {{.Version}}\n")

	// Errors are printed by PrintError with their suggestion.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	settings, configLoadErr = config.Load(settingsFlag)
}

var rootCmd = &cobra.Command{
	Use:   "kiplot",
	Short: "Resolve KiCad plot configurations",
	Long: `kiplot reads a declarative plot configuration describing the outputs to
produce from a KiCad board (Gerbers, drill files, PDFs, position files,
BoMs, print jobs), checks every option against the schema of its output
type and resolves layer names against the board's layer table.

The resolved configuration can be checked, inspected or exported as a plan
file for a generator.`,
	Example: `  # Check the configuration next to the only board in this directory
  kiplot check

  # Check an explicit pair
  kiplot check -b amp.kicad_pcb -c plots.yaml

  # Show the layers declared by the board
  kiplot layers -b amp.kicad_pcb

  See Also: kiplot init, kiplot export`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkSettings(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		// Flags win over KIPLOT_DEBUG.
		if v == 0 {
			v = logging.VerbosityFromEnv()
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkSettings reports a settings file that failed to load.
func checkSettings(cmd *cobra.Command) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}
	if configLoadErr != nil {
		return errors.NewUserError(configLoadErr, "Fix or remove the settings file, or pass --settings")
	}
	if settings != nil {
		logging.FromContext(cmd.Context()).Debug("settings loaded",
			"file", config.Used(),
			"unique_output_names", settings.UniqueOutputNames,
			"export_format", settings.ExportFormat)
	}
	return nil
}

// PrintError writes err and its suggestion, if any, to w.
func PrintError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	if !logging.SupportsColor(w) {
		red.DisableColor()
	}
	red.Fprint(w, "Error: ")
	fmt.Fprintln(w, err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "  %s\n", exitErr.Suggestion)
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

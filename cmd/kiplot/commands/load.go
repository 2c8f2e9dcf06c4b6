package commands

import (
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/thoreinstein/kiplot/internal/errors"
	"github.com/thoreinstein/kiplot/internal/layer"
	"github.com/thoreinstein/kiplot/internal/paths"
	"github.com/thoreinstein/kiplot/internal/plotconfig"
	"github.com/thoreinstein/kiplot/internal/reader"
)

// inputs are the board and plot configuration a command works on.
type inputs struct {
	Board    string
	Document string
}

// resolveInputs applies --board and --config, falling back to discovery in
// the working directory and the plot_config setting.
func resolveInputs() (inputs, error) {
	board := boardFlag
	if board == "" {
		found, err := paths.FindBoard(".")
		if err != nil {
			return inputs{}, errors.NewUserError(err, "Pass the board with --board")
		}
		board = found
	}

	doc, err := documentPath(board)
	if err != nil {
		return inputs{}, errors.NewUserError(err, "Pass the plot configuration with --config")
	}
	return inputs{Board: board, Document: doc}, nil
}

func documentPath(board string) (string, error) {
	if configFlag == "" && settings != nil && settings.PlotConfig != "" {
		if filepath.IsAbs(settings.PlotConfig) {
			return settings.PlotConfig, nil
		}
		return filepath.Join(filepath.Dir(board), settings.PlotConfig), nil
	}
	return paths.Document(configFlag, board)
}

func uniqueNames() bool {
	return settings != nil && settings.UniqueOutputNames
}

// loadConfig reads the layer table of in.Board and resolves in.Document
// against it. Failures come back as ExitErrors carrying the exit code.
func loadConfig(logger *slog.Logger, in inputs) (*plotconfig.Config, error) {
	table, err := layer.LoadTable(in.Board)
	if err != nil {
		return nil, errors.NewPCBError(err)
	}
	logger.Debug("layer table loaded", "board", in.Board, "declared", len(table.Entries()))

	r := reader.New(table,
		reader.WithLogger(logger),
		reader.WithUniqueNames(uniqueNames()),
	)
	cfg, err := r.ReadFile(in.Document)
	if err != nil {
		return nil, classify(err)
	}

	logger.Info("config loaded", "config", in.Document, "outputs", len(cfg.Outputs))
	return cfg, nil
}

// classify attaches the exit code matching a read failure.
func classify(err error) error {
	switch {
	case errors.ExitCode(err) == errors.ExitBadConfig:
		return errors.NewConfigError(err)
	case errors.Is(err, fs.ErrNotExist):
		return errors.NewUserError(err, "Pass the plot configuration with --config, or run: kiplot init")
	default:
		return errors.NewSystemError(err, "")
	}
}

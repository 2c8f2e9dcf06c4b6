package paths

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName names the per-user settings and cache directories.
const AppName = "kiplot"

// File names and extensions kiplot looks for.
const (
	// BoardExt is the extension of KiCad PCB files.
	BoardExt = ".kicad_pcb"

	// DefaultDocument is the plot configuration read when none is named.
	DefaultDocument = ".kiplot.yaml"

	// SettingsName is the base name of the tool settings file.
	SettingsName = "settings"
)

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrNoBoard indicates a directory holds no PCB file.
	ErrNoBoard = errors.New("no PCB file found")

	// ErrAmbiguousBoard indicates a directory holds more than one PCB file.
	ErrAmbiguousBoard = errors.New("more than one PCB file found")

	// ErrInvalidPath indicates the provided path is malformed or invalid.
	ErrInvalidPath = errors.New("invalid path")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory, or "" when it cannot be
// determined. Use ResolveHome for the error.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// CacheHome returns the XDG cache home directory.
func CacheHome() string {
	return xdg.CacheHome
}

// ConfigDir returns the per-user settings directory: <ConfigHome>/kiplot.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// PlanDir returns the default directory for exported plan files:
// <CacheHome>/kiplot/plans.
func PlanDir() string {
	return filepath.Join(CacheHome(), AppName, "plans")
}

// FindBoard returns the single PCB file in dir. It fails with ErrNoBoard
// when there is none and ErrAmbiguousBoard when there are several.
func FindBoard(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Wrapf(err, "scanning %s", dir)
	}

	var boards []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), BoardExt) {
			continue
		}
		boards = append(boards, filepath.Join(dir, e.Name()))
	}

	switch len(boards) {
	case 0:
		return "", errors.Wrapf(ErrNoBoard, "in %s", dir)
	case 1:
		return boards[0], nil
	default:
		sort.Strings(boards)
		return "", errors.Wrapf(ErrAmbiguousBoard, "%s", strings.Join(boards, ", "))
	}
}

// Document returns the plot configuration path to use. An explicit name is
// returned unchanged; otherwise DefaultDocument next to the board.
func Document(explicit, board string) (string, error) {
	if strings.ContainsRune(explicit, '\x00') {
		return "", ErrInvalidPath
	}
	if explicit != "" {
		return explicit, nil
	}
	return filepath.Join(filepath.Dir(board), DefaultDocument), nil
}

// PlanPath returns where the plan for board is written in format ext
// (with the dot) when no output path is given.
func PlanPath(board, ext string) string {
	base := strings.TrimSuffix(filepath.Base(board), filepath.Ext(board))
	return filepath.Join(PlanDir(), base+ext)
}

package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/thoreinstein/kiplot/internal/paths"
)

// EnvPrefix prefixes every environment override, e.g. KIPLOT_EXPORT_FORMAT.
const EnvPrefix = "KIPLOT"

// EnvConfigDir replaces the per-user settings directory when set.
const EnvConfigDir = EnvPrefix + "_CONFIG_DIR"

// Setting keys.
const (
	KeyVersion           = "version"
	KeyPlotConfig        = "plot_config"
	KeyUniqueOutputNames = "unique_output_names"
	KeyExportFormat      = "export_format"
)

// Settings are the tool's own preferences, distinct from the plot
// configuration document it reads.
type Settings struct {
	Version           int    `mapstructure:"version" yaml:"version"`
	PlotConfig        string `mapstructure:"plot_config" yaml:"plot_config"`
	UniqueOutputNames bool   `mapstructure:"unique_output_names" yaml:"unique_output_names"`
	ExportFormat      string `mapstructure:"export_format" yaml:"export_format"`
}

// Init resets Viper and installs the search paths, environment binding and
// defaults. Call it once at startup, before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName(paths.SettingsName)
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		viper.AddConfigPath(dir)
	} else {
		viper.AddConfigPath(paths.ConfigDir())
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault(KeyVersion, 1)
	viper.SetDefault(KeyPlotConfig, paths.DefaultDocument)
	viper.SetDefault(KeyUniqueOutputNames, false)
	viper.SetDefault(KeyExportFormat, "json")
}

// Load reads the settings file. An explicit path must exist; otherwise the
// search paths are tried and defaults are used when nothing is found. The
// result is validated.
func Load(path string) (*Settings, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// defaults only
		case errors.As(err, &notFound), os.IsNotExist(errors.UnwrapAll(err)):
			return nil, errors.Wrapf(err, "settings file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading settings file")
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "unmarshaling settings")
	}

	if errs := Validate(&s); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating settings")
	}

	return &s, nil
}

// Used returns the settings file Viper read, or "" when defaults are in
// effect.
func Used() string {
	return viper.ConfigFileUsed()
}

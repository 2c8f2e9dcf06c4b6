// Package config loads kiplot's own settings with Viper.
//
// The settings are separate from the plot configuration document: they pick
// the default document name, whether duplicate output names are rejected
// and the encoding used by export.
//
// # Settings File
//
// settings.yaml is searched in the working directory and then in
// ~/.config/kiplot (or $KIPLOT_CONFIG_DIR):
//
//	version: 1
//	plot_config: .kiplot.yaml
//	unique_output_names: false
//	export_format: json
//
// Every key can be overridden from the environment with the KIPLOT_ prefix,
// e.g. KIPLOT_EXPORT_FORMAT=msgpack.
//
// # Loading
//
//	config.Init()
//	s, err := config.Load("")
//
// [Load] validates what it reads; [Validate] returns every problem rather
// than the first.
package config

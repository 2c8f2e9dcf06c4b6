package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/kiplot/internal/errors"
	"github.com/thoreinstein/kiplot/internal/logging"
	"github.com/thoreinstein/kiplot/internal/mapping"
	"github.com/thoreinstein/kiplot/internal/options"
	"github.com/thoreinstein/kiplot/internal/plotconfig"
)

var (
	outputsListJSON bool
	outputsShowDump bool
)

func init() {
	outputsListCmd.Flags().BoolVar(&outputsListJSON, "json", false, "Output in JSON format")
	outputsShowCmd.Flags().BoolVar(&outputsShowDump, "dump", false, "Dump the resolved Go values")

	outputsCmd.AddCommand(outputsListCmd)
	outputsCmd.AddCommand(outputsShowCmd)
	outputsCmd.AddCommand(outputsTypesCmd)
	rootCmd.AddCommand(outputsCmd)
}

var outputsCmd = &cobra.Command{
	Use:   "outputs",
	Short: "Inspect the outputs of a plot configuration",
}

var outputsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the outputs in document order",
	Example: `  kiplot outputs list -b amp.kicad_pcb
  kiplot outputs list --json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadForCommand(cmd)
		if err != nil {
			return err
		}
		return runOutputsListWithWriter(cmd.OutOrStdout(), cfg, outputsListJSON)
	},
}

var outputsShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show one resolved output",
	Long: `Show the resolved options and layers of one output.

Without a name an interactive picker is opened when the terminal allows it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadForCommand(cmd)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if len(args) == 0 {
			if !logging.IsTTY(w) {
				return errors.NewUserError(errors.New("no output name given"), "Pass the output name, e.g. kiplot outputs show gerbers")
			}
			out, ok, err := pickOutput(cfg)
			if err != nil || !ok {
				return err
			}
			return runOutputsShowWithWriter(w, out, outputsShowDump)
		}

		out, ok := cfg.Output(args[0])
		if !ok {
			return errors.NewUserError(errors.Newf("no output named %q", args[0]),
				"Run: kiplot outputs list")
		}
		return runOutputsShowWithWriter(w, out, outputsShowDump)
	},
}

var outputsTypesCmd = &cobra.Command{
	Use:   "types [type]",
	Short: "List output types and the option keys they accept",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kinds := options.Kinds()
		if len(args) == 1 {
			k, ok := options.ParseKind(args[0])
			if !ok {
				return errors.NewUserError(errors.Newf("unknown output type %q", args[0]), "Run: kiplot outputs types")
			}
			kinds = []options.Kind{k}
		}
		return runOutputsTypesWithWriter(cmd.OutOrStdout(), kinds)
	},
}

func loadForCommand(cmd *cobra.Command) (*plotconfig.Config, error) {
	in, err := resolveInputs()
	if err != nil {
		return nil, err
	}
	return loadConfig(logging.FromContext(cmd.Context()), in)
}

// outputSummary is one row of the JSON listing.
type outputSummary struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Dir    string   `json:"dir"`
	Layers []string `json:"layers"`
}

func summarize(out plotconfig.Output) outputSummary {
	layers := make([]string, 0, len(out.Layers))
	for _, l := range out.Layers {
		layers = append(layers, l.Layer.Name)
	}
	return outputSummary{Name: out.Name, Type: out.Kind.String(), Dir: out.Dir, Layers: layers}
}

// runOutputsListWithWriter allows injecting a writer for testing.
func runOutputsListWithWriter(w io.Writer, cfg *plotconfig.Config, asJSON bool) error {
	rows := make([]outputSummary, 0, len(cfg.Outputs))
	for _, out := range cfg.Outputs {
		rows = append(rows, summarize(out))
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(rows), "encoding outputs")
	}

	if len(rows) == 0 {
		fmt.Fprintln(w, "No outputs configured.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tDIR\tLAYERS")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.Type, r.Dir, truncate(strings.Join(r.Layers, ","), 40))
	}
	return tw.Flush()
}

// runOutputsShowWithWriter allows injecting a writer for testing.
func runOutputsShowWithWriter(w io.Writer, out plotconfig.Output, dump bool) error {
	if dump {
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		cfg.Fdump(w, out)
		return nil
	}

	text, err := describeOutput(out)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

// describeOutput renders an output for show and for the picker preview.
func describeOutput(out plotconfig.Output) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name:    %s\n", out.Name)
	fmt.Fprintf(&sb, "Type:    %s (%s)\n", out.Kind, out.Kind.Description())
	if out.Comment != nil {
		fmt.Fprintf(&sb, "Comment: %s\n", *out.Comment)
	}
	fmt.Fprintf(&sb, "Dir:     %s\n", out.Dir)

	if len(out.Layers) > 0 {
		sb.WriteString("Layers:\n")
		for _, l := range out.Layers {
			fmt.Fprintf(&sb, "  %-12s id=%d", l.Layer.Name, l.Layer.ID)
			if l.Layer.Inner {
				sb.WriteString(" inner")
			}
			if l.Suffix != "" {
				fmt.Fprintf(&sb, " suffix=%s", l.Suffix)
			}
			if l.Description != nil {
				fmt.Fprintf(&sb, " (%s)", *l.Description)
			}
			sb.WriteString("\n")
		}
	}

	if out.Options != nil {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(out.Options); err != nil {
			return "", errors.Wrap(err, "encoding options")
		}
		if err := enc.Close(); err != nil {
			return "", errors.Wrap(err, "encoding options")
		}

		sb.WriteString("Options:\n")
		for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
			sb.WriteString("  ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

// pickOutput opens the interactive picker. ok is false when the user aborts.
func pickOutput(cfg *plotconfig.Config) (plotconfig.Output, bool, error) {
	if len(cfg.Outputs) == 0 {
		return plotconfig.Output{}, false, errors.NewUserError(errors.New("no outputs configured"), "")
	}

	idx, err := fuzzyfinder.Find(
		cfg.Outputs,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", cfg.Outputs[i].Name, cfg.Outputs[i].Kind)
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			text, err := describeOutput(cfg.Outputs[i])
			if err != nil {
				return err.Error()
			}
			return text
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return plotconfig.Output{}, false, nil
		}
		return plotconfig.Output{}, false, errors.Wrap(err, "interactive selection failed")
	}
	return cfg.Outputs[idx], true, nil
}

// runOutputsTypesWithWriter allows injecting a writer for testing.
func runOutputsTypesWithWriter(w io.Writer, kinds []options.Kind) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, k := range kinds {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s\t%s\n", k, k.Description())
		if k.OptionsOptional() {
			fmt.Fprintln(tw, "  (options section optional)")
		}
		for _, r := range mapping.RulesFor(k) {
			req := "optional"
			if r.Mandatory(mapping.Section{}) {
				req = "required"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", r.Key, r.To, req)
		}
	}
	return tw.Flush()
}

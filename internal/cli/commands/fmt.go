package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/garydbutler/TabularForge-sub001/internal/cli/config"
	"github.com/garydbutler/TabularForge-sub001/pkg/format"
)

// FmtOptions holds options for the fmt command.
type FmtOptions struct {
	Write   bool // Rewrite files in place
	Check   bool // Exit non-zero when files are not formatted
	Compact bool // Use the compact profile as the base
}

// NewFmtCommand creates the fmt command.
func NewFmtCommand() *cobra.Command {
	opts := &FmtOptions{}
	cmd := &cobra.Command{
		Use:   "fmt [file...]",
		Short: "Format DAX expressions",
		Long: `Reformat DAX expressions and queries.

Reads from the given files, or from stdin when no files are given,
and writes the formatted result to stdout. Formatting options come
from tabularforge.yaml and can be overridden per option with flags.

Running fmt on already-formatted input leaves it unchanged.`,
		Example: `  # Format stdin
  echo 'sum(Sales[Amount])' | tabularforge fmt

  # Rewrite files in place
  tabularforge fmt --write queries/*.dax

  # Verify formatting in CI
  tabularforge fmt --check queries/*.dax

  # Override single options
  tabularforge fmt --indent-size 2 --max-line-length 80 report.dax

  # Denser single-line output
  tabularforge fmt --compact report.dax`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, "Rewrite files in place instead of printing")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "Exit with a non-zero status when input is not formatted")
	cmd.Flags().BoolVar(&opts.Compact, "compact", false, "Start from the compact profile")

	addOptionFlags(cmd.Flags())

	return cmd
}

// addOptionFlags registers one flag per formatter option. Defaults shown
// in help come from the default profile; only flags the user sets
// override the resolved configuration.
func addOptionFlags(fs *pflag.FlagSet) {
	d := format.Default()
	fs.Bool("use-tabs", d.UseTabs, "Indent with tabs instead of spaces")
	fs.Int("indent-size", d.IndentSize, "Spaces per indent level")
	fs.Int("max-line-length", d.MaxLineLength, "Line length that triggers breaking")
	fs.Bool("indent-after-keywords", d.IndentAfterKeywords, "Indent bodies after VAR")
	fs.Bool("align-function-parameters", d.AlignFunctionParameters, "Align broken arguments under the opening parenthesis")
	fs.Bool("break-before-comma", d.BreakBeforeComma, "Place commas at the start of continuation lines")
	fs.Bool("break-after-comma", d.BreakAfterComma, "Break after commas in broken argument lists")
	fs.Bool("space-after-comma", d.SpaceAfterComma, "Emit a space after commas")
	fs.Bool("space-around-operators", d.SpaceAroundOperators, "Emit spaces around binary operators")
	fs.Bool("uppercase-keywords", d.UppercaseKeywords, "Uppercase structural keywords")
	fs.Bool("uppercase-functions", d.UppercaseFunctions, "Canonicalize known function names")
	fs.Bool("preserve-comments", d.PreserveComments, "Keep comments in the output")
	fs.Bool("break-after-return", d.BreakAfterReturn, "Break the line after RETURN")
	fs.Bool("new-line-after-var", d.NewLineAfterVar, "Place each VAR on its own line")
	fs.Bool("compact-short-expressions", d.CompactShortExpressions, "Keep short expressions on one line")
	fs.Int("compact-threshold", d.CompactThreshold, "Length treated as short for compacting")
}

// applyOptionFlags overlays explicitly set flags onto resolved options.
func applyOptionFlags(fs *pflag.FlagSet, opts format.Options) format.Options {
	boolFlags := map[string]*bool{
		"use-tabs":                  &opts.UseTabs,
		"indent-after-keywords":     &opts.IndentAfterKeywords,
		"align-function-parameters": &opts.AlignFunctionParameters,
		"break-before-comma":        &opts.BreakBeforeComma,
		"break-after-comma":         &opts.BreakAfterComma,
		"space-after-comma":         &opts.SpaceAfterComma,
		"space-around-operators":    &opts.SpaceAroundOperators,
		"uppercase-keywords":        &opts.UppercaseKeywords,
		"uppercase-functions":       &opts.UppercaseFunctions,
		"preserve-comments":         &opts.PreserveComments,
		"break-after-return":        &opts.BreakAfterReturn,
		"new-line-after-var":        &opts.NewLineAfterVar,
		"compact-short-expressions": &opts.CompactShortExpressions,
	}
	intFlags := map[string]*int{
		"indent-size":       &opts.IndentSize,
		"max-line-length":   &opts.MaxLineLength,
		"compact-threshold": &opts.CompactThreshold,
	}
	for name, dst := range boolFlags {
		if fs.Changed(name) {
			*dst, _ = fs.GetBool(name)
		}
	}
	for name, dst := range intFlags {
		if fs.Changed(name) {
			*dst, _ = fs.GetInt(name)
		}
	}
	return opts
}

func runFmt(cmd *cobra.Command, opts *FmtOptions, args []string) error {
	cfg := config.FromContext(cmd.Context())
	fopts := applyOptionFlags(cmd.Flags(), formatOptions(cfg, opts.Compact))

	if len(args) == 0 {
		if opts.Write {
			return fmt.Errorf("--write requires file arguments")
		}
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		out := format.Format(string(src), fopts)
		if opts.Check && out != string(src) {
			return fmt.Errorf("stdin is not formatted")
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	var unformatted []string
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		out := format.Format(string(src), fopts)

		switch {
		case opts.Check:
			if out+"\n" != string(src) && out != string(src) {
				unformatted = append(unformatted, path)
			}
		case opts.Write:
			if err := os.WriteFile(path, []byte(out+"\n"), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
		default:
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
	}

	if len(unformatted) > 0 {
		for _, path := range unformatted {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return fmt.Errorf("%d file(s) not formatted", len(unformatted))
	}
	return nil
}

// formatOptions resolves base formatter options from config, starting
// from the compact profile when requested.
func formatOptions(cfg *config.Config, compact bool) format.Options {
	if compact {
		return format.Compact()
	}
	if cfg != nil {
		return cfg.Format.Options()
	}
	return format.Default()
}

package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/garydbutler/TabularForge-sub001/internal/cli/config"
	"github.com/garydbutler/TabularForge-sub001/internal/cli/output"
	"github.com/garydbutler/TabularForge-sub001/pkg/analyzer"
	"github.com/garydbutler/TabularForge-sub001/pkg/model"
)

// LintOptions holds options for the lint command.
type LintOptions struct {
	ModelPath string // Semantic model definition to check references against
	Severity  string // Minimum severity: error, warning, info
	Watch     bool   // Re-run on file changes
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [file...]",
		Short: "Check DAX expressions for problems",
		Long: `Analyze DAX expressions and report diagnostics.

Checks syntax, bracket balance, function names and argument counts.
When a semantic model is supplied with --model, table and column
references are validated against it as well.

The command exits with a non-zero status when any error-level
diagnostic is reported.`,
		Example: `  # Lint stdin
  echo 'CALCULATE()' | tabularforge lint

  # Lint files against a model definition
  tabularforge lint --model model.yaml measures/*.dax

  # Only report errors
  tabularforge lint --severity error report.dax

  # Re-run whenever the files change
  tabularforge lint --watch measures/*.dax`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.ModelPath, "model", "m", "", "Semantic model YAML file")
	cmd.Flags().StringVar(&opts.Severity, "severity", "", "Minimum severity: error, warning, info")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Watch files and re-lint on change")

	return cmd
}

func runLint(cmd *cobra.Command, opts *LintOptions, args []string) error {
	cfg := config.FromContext(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout())

	modelPath := opts.ModelPath
	if modelPath == "" && cfg != nil {
		modelPath = cfg.ModelPath
	}
	var mdl *model.ModelInfo
	if modelPath != "" {
		var err error
		mdl, err = model.Load(modelPath)
		if err != nil {
			return fmt.Errorf("failed to load model: %w", err)
		}
	}

	threshold := severityThreshold(opts.Severity, cfg)

	if len(args) == 0 {
		if opts.Watch {
			return fmt.Errorf("--watch requires file arguments")
		}
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		diags := lintSource(string(src), mdl, "<stdin>", threshold)
		return renderDiagnostics(r, diags)
	}

	if opts.Watch {
		return watchAndLint(cmd, r, args, mdl, threshold)
	}

	var all []analyzer.Diagnostic
	for _, path := range args {
		diags, err := lintFile(path, mdl, threshold)
		if err != nil {
			return err
		}
		all = append(all, diags...)
	}
	return renderDiagnostics(r, all)
}

func lintFile(path string, mdl *model.ModelInfo, threshold analyzer.Severity) ([]analyzer.Diagnostic, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lintSource(string(src), mdl, path, threshold), nil
}

func lintSource(src string, mdl *model.ModelInfo, source string, threshold analyzer.Severity) []analyzer.Diagnostic {
	diags := analyzer.Analyze(src, mdl, source)
	filtered := diags[:0]
	for _, d := range diags {
		if d.Severity <= threshold {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func renderDiagnostics(r *output.Renderer, diags []analyzer.Diagnostic) error {
	if len(diags) == 0 {
		r.Println("No issues found")
		return nil
	}

	var errors, warnings, info int
	for _, d := range diags {
		r.Diagnostic(d)
		switch d.Severity {
		case analyzer.SeverityError:
			errors++
		case analyzer.SeverityWarning:
			warnings++
		case analyzer.SeverityInfo:
			info++
		}
	}
	r.Table([]string{"Errors", "Warnings", "Info"}, [][]string{{
		strconv.Itoa(errors), strconv.Itoa(warnings), strconv.Itoa(info),
	}})

	if errors > 0 {
		return fmt.Errorf("lint found %d error(s)", errors)
	}
	return nil
}

// severityThreshold resolves the minimum severity to report, preferring
// the flag over config over the default.
func severityThreshold(flag string, cfg *config.Config) analyzer.Severity {
	if flag != "" {
		if s, ok := analyzer.ParseSeverity(flag); ok {
			return s
		}
	}
	if cfg != nil && cfg.Severity != "" {
		if s, ok := analyzer.ParseSeverity(cfg.Severity); ok {
			return s
		}
	}
	return analyzer.SeverityWarning
}

// watchAndLint lints the files once, then re-lints whichever file
// changes until interrupted.
func watchAndLint(cmd *cobra.Command, r *output.Renderer, paths []string, mdl *model.ModelInfo, threshold analyzer.Severity) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(paths))
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		watched[abs] = true
		// Watch the directory: editors commonly replace files on save,
		// which drops a watch placed on the file itself.
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
	}

	lintAll := func() {
		for _, path := range paths {
			diags, err := lintFile(path, mdl, threshold)
			if err != nil {
				r.Println(err)
				continue
			}
			_ = renderDiagnostics(r, diags)
		}
	}
	lintAll()

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			r.Printf("--- %s changed\n", event.Name)
			lintAll()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.Println("watch error:", err)
		}
	}
}

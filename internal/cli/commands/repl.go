package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/garydbutler/TabularForge-sub001/internal/cli/config"
	"github.com/garydbutler/TabularForge-sub001/internal/cli/output"
	"github.com/garydbutler/TabularForge-sub001/pkg/analyzer"
	"github.com/garydbutler/TabularForge-sub001/pkg/format"
	"github.com/garydbutler/TabularForge-sub001/pkg/functions"
	"github.com/garydbutler/TabularForge-sub001/pkg/model"
	"github.com/garydbutler/TabularForge-sub001/pkg/parser"
	"github.com/garydbutler/TabularForge-sub001/pkg/token"
)

// ReplOptions holds options for the repl command.
type ReplOptions struct {
	ModelPath string // Semantic model to lint against
}

// NewReplCommand creates the repl command.
func NewReplCommand() *cobra.Command {
	opts := &ReplOptions{}
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive DAX console",
		Long: `Start an interactive console for experimenting with DAX.

Entered expressions are formatted and checked. Dot-commands switch
behavior:

  .fmt <expr>     format an expression
  .lint <expr>    check an expression
  .tokens <expr>  show the token stream
  .func <name>    show a function signature
  .families       list function catalog families
  .help           show this help
  .quit           exit

A bare expression is formatted and then checked. Function names
complete with Tab.`,
		Example: `  # Start the console
  tabularforge repl

  # With model-aware reference checking
  tabularforge repl --model model.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ModelPath, "model", "m", "", "Semantic model YAML file")

	return cmd
}

func runRepl(cmd *cobra.Command, opts *ReplOptions) error {
	cfg := config.FromContext(cmd.Context())

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

	fopts := format.Default()
	if cfg != nil {
		fopts = cfg.Format.Options()
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "dax> ",
		HistoryFile:     filepath.Join(os.TempDir(), "tabularforge_history"),
		AutoComplete:    newCatalogCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize console: %w", err)
	}
	defer func() { _ = rl.Close() }()

	r := output.NewRenderer(cmd.OutOrStdout())
	r.Printf("TabularForge DAX console (%d functions in catalog)\n", functions.Count())
	if mdl != nil {
		r.Printf("Model: %s\n", mdl.Name)
	}
	r.Println("Type .help for commands, .quit to exit")
	r.Println()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if quit := handleDotCommand(r, line, mdl, fopts); quit {
				break
			}
			continue
		}

		replFormat(r, line, fopts)
		replLint(r, line, mdl)
		r.Println()
	}

	return nil
}

func handleDotCommand(r *output.Renderer, line string, mdl *model.ModelInfo, fopts format.Options) bool {
	command, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(command) {
	case ".quit", ".exit":
		return true

	case ".help":
		r.Println("  .fmt <expr>     format an expression")
		r.Println("  .lint <expr>    check an expression")
		r.Println("  .tokens <expr>  show the token stream")
		r.Println("  .func <name>    show a function signature")
		r.Println("  .families       list function catalog families")
		r.Println("  .quit           exit")

	case ".fmt":
		if rest == "" {
			r.Println("Usage: .fmt <expr>")
			break
		}
		replFormat(r, rest, fopts)

	case ".lint":
		if rest == "" {
			r.Println("Usage: .lint <expr>")
			break
		}
		replLint(r, rest, mdl)

	case ".tokens":
		if rest == "" {
			r.Println("Usage: .tokens <expr>")
			break
		}
		for _, tok := range parser.Tokenize(rest) {
			if tok.Type == token.EOF || token.IsTrivia(tok.Type) {
				continue
			}
			r.Printf("  %d:%d  %-12s %s\n", tok.Pos.Line, tok.Pos.Column, tok.Type, strconv.Quote(tok.Text))
		}

	case ".func":
		if rest == "" {
			r.Println("Usage: .func <name>")
			break
		}
		sig, ok := functions.Lookup(rest)
		if !ok {
			r.Printf("unknown function %q\n", strings.ToUpper(rest))
			break
		}
		r.Println(sig.String())
		r.Printf("  %s\n", sig.Description)

	case ".families":
		for _, f := range Families() {
			r.Println("  " + f)
		}

	default:
		r.Printf("unknown command %s (try .help)\n", command)
	}
	return false
}

func replFormat(r *output.Renderer, input string, fopts format.Options) {
	r.Println(format.Format(input, fopts))
}

func replLint(r *output.Renderer, input string, mdl *model.ModelInfo) {
	diags := analyzer.Analyze(input, mdl, "")
	for _, d := range diags {
		r.Diagnostic(d)
	}
}

// newCatalogCompleter builds tab completion over function names and
// dot-commands.
func newCatalogCompleter() readline.AutoCompleter {
	sigs := functions.All()
	items := make([]readline.PrefixCompleterInterface, 0, len(sigs)+6)
	for _, sig := range sigs {
		items = append(items, readline.PcItem(sig.Name))
	}
	items = append(items,
		readline.PcItem(".fmt"),
		readline.PcItem(".lint"),
		readline.PcItem(".tokens"),
		readline.PcItem(".func"),
		readline.PcItem(".families"),
		readline.PcItem(".help"),
		readline.PcItem(".quit"),
	)
	return readline.NewPrefixCompleter(items...)
}

package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/garydbutler/TabularForge-sub001/internal/cli/output"
	"github.com/garydbutler/TabularForge-sub001/pkg/parser"
	"github.com/garydbutler/TabularForge-sub001/pkg/token"
)

// TokensOptions holds options for the tokens command.
type TokensOptions struct {
	Trivia bool // Include whitespace, newline and comment tokens
}

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	opts := &TokensOptions{}
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Dump the token stream for a DAX expression",
		Long: `Tokenize a DAX expression and print each token with its type
and position. Useful when debugging unexpected parse or format
behavior.`,
		Example: `  # Tokenize stdin
  echo "SUM(Sales[Amount])" | tabularforge tokens

  # Include whitespace and comments
  tabularforge tokens --trivia query.dax`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.Trivia, "trivia", false, "Include whitespace, newline and comment tokens")

	return cmd
}

func runTokens(cmd *cobra.Command, opts *TokensOptions, args []string) error {
	var src []byte
	var err error
	if len(args) == 1 {
		src, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
	} else {
		src, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	toks := parser.Tokenize(string(src))
	var rows [][]string
	for _, tok := range toks {
		if tok.Type == token.EOF {
			continue
		}
		if !opts.Trivia && token.IsTrivia(tok.Type) {
			continue
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d:%d", tok.Pos.Line, tok.Pos.Column),
			tok.Type.String(),
			strconv.Quote(tok.Text),
		})
	}

	r := output.NewRenderer(cmd.OutOrStdout())
	r.Table([]string{"Position", "Type", "Text"}, rows)
	r.Printf("%d token(s)\n", len(rows))
	return nil
}

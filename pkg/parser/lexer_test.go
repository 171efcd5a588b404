package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garydbutler/TabularForge-sub001/pkg/token"
)

// reassemble concatenates every token text in order.
func reassemble(tokens []token.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}

func kinds(tokens []token.Token) []token.TokenType {
	out := make([]token.TokenType, 0, len(tokens))
	for _, t := range tokens {
		if !t.IsTrivia() && t.Type != token.EOF {
			out = append(out, t.Type)
		}
	}
	return out
}

func TestTokenizeReconstruction(t *testing.T) {
	inputs := []string{
		"",
		"SUM(Sales[Amount])",
		"  SUM( Sales[Amount] )  ",
		"VAR x = 1\nRETURN x + 1",
		"'Sales Data'[Unit Price] * 1.5",
		"-- comment\r\nSUM(1)",
		"/* multi\nline */ 2",
		"\"a \"\"quoted\"\" string\"",
		"1 <> 2 && 3 <= 4 || 5 >= 6",
		"{1, 2, 3}",
		"1.5e-3 + .5 + 2.",
		// Malformed inputs must reassemble too.
		"SUM(Sales[Amount]",
		"\"unterminated",
		"'unterminated table",
		"[unterminated column",
		"a ; b @ c",
		"/* never closed",
		"|",
	}

	for _, input := range inputs {
		tokens := Tokenize(input)
		require.NotEmpty(t, tokens)
		assert.Equal(t, token.EOF, tokens[len(tokens)-1].Type)
		assert.Equal(t, input, reassemble(tokens), "input %q", input)
	}
}

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.TokenType
	}{
		{
			"function call",
			"SUM(Sales[Amount])",
			[]token.TokenType{token.IDENT, token.LPAREN, token.IDENT, token.COLUMN_NAME, token.RPAREN},
		},
		{
			"quoted table",
			"'Sales Data'[Qty]",
			[]token.TokenType{token.TABLE_NAME, token.COLUMN_NAME},
		},
		{
			"keywords case-insensitive",
			"evaluate Define MEASURE var Return column",
			[]token.TokenType{token.EVALUATE, token.DEFINE, token.MEASURE, token.VAR, token.RETURN, token.COLUMN},
		},
		{
			"operators",
			"= <> < > <= >= && || + - * / ^ &",
			[]token.TokenType{
				token.EQ, token.NE, token.LT, token.GT, token.LE, token.GE,
				token.AND, token.OR, token.PLUS, token.MINUS, token.STAR,
				token.SLASH, token.CARET, token.AMP,
			},
		},
		{
			"punctuation",
			"( ) { } ,",
			[]token.TokenType{token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.COMMA},
		},
		{
			"numbers",
			"1 1.5 .5 2. 1e10 1.5E-3",
			[]token.TokenType{token.NUMBER, token.NUMBER, token.NUMBER, token.NUMBER, token.NUMBER, token.NUMBER},
		},
		{
			"string literal",
			`"hello ""world"""`,
			[]token.TokenType{token.STRING},
		},
		{
			"comments",
			"-- a\n// b\n/* c */",
			[]token.TokenType{},
		},
		{
			"illegal characters",
			"; @ |",
			[]token.TokenType{token.ILLEGAL, token.ILLEGAL, token.ILLEGAL},
		},
		{
			"dotted identifier",
			"STDEV.P(Sales[Amount])",
			[]token.TokenType{token.IDENT, token.LPAREN, token.IDENT, token.COLUMN_NAME, token.RPAREN},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kinds(Tokenize(tt.input))
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenizeTrivia(t *testing.T) {
	tokens := Tokenize("SUM( 1 ) -- total\n/* x */ 2")
	var trivia []token.TokenType
	for _, tok := range tokens {
		if tok.IsTrivia() {
			trivia = append(trivia, tok.Type)
		}
	}
	assert.Contains(t, trivia, token.WHITESPACE)
	assert.Contains(t, trivia, token.NEWLINE)
	assert.Contains(t, trivia, token.LINE_COMMENT)
	assert.Contains(t, trivia, token.BLOCK_COMMENT)
}

func TestTokenizePositions(t *testing.T) {
	tokens := Tokenize("VAR x =\n  1")
	byText := make(map[string]token.Token)
	for _, tok := range tokens {
		byText[tok.Text] = tok
	}

	v := byText["VAR"]
	assert.Equal(t, 1, v.Pos.Line)
	assert.Equal(t, 1, v.Pos.Column)
	assert.Equal(t, 0, v.Pos.Offset)

	x := byText["x"]
	assert.Equal(t, 1, x.Pos.Line)
	assert.Equal(t, 5, x.Pos.Column)
	assert.Equal(t, 4, x.Pos.Offset)

	one := byText["1"]
	assert.Equal(t, 2, one.Pos.Line)
	assert.Equal(t, 3, one.Pos.Column)
	assert.Equal(t, 10, one.Pos.Offset)
}

func TestTokenizeKeywordKeepsCasing(t *testing.T) {
	tokens := Tokenize("Evaluate")
	require.GreaterOrEqual(t, len(tokens), 2)
	assert.Equal(t, token.EVALUATE, tokens[0].Type)
	assert.Equal(t, "Evaluate", tokens[0].Text)
}

func TestTokenizeCRLF(t *testing.T) {
	input := "VAR x = 1\r\nRETURN x"
	tokens := Tokenize(input)
	assert.Equal(t, input, reassemble(tokens))

	for _, tok := range tokens {
		if tok.Type == token.NEWLINE {
			assert.Equal(t, "\r\n", tok.Text)
		}
	}

	// RETURN starts line 2.
	for _, tok := range tokens {
		if tok.Type == token.RETURN {
			assert.Equal(t, 2, tok.Pos.Line)
			assert.Equal(t, 1, tok.Pos.Column)
		}
	}
}

func TestTokenizeAlwaysTerminates(t *testing.T) {
	// Inputs chosen to stress every read loop's EOF handling.
	inputs := []string{
		strings.Repeat("(", 1000),
		strings.Repeat("-", 1001),
		"/*" + strings.Repeat("*", 500),
		"'" + strings.Repeat("''", 100),
		"[" + strings.Repeat("]]", 100),
	}
	for _, input := range inputs {
		tokens := Tokenize(input)
		assert.Equal(t, input, reassemble(tokens))
	}
}

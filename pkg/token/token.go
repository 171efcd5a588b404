// Package token defines the lexical tokens of the DAX expression grammar.
//
// The token stream is lossless: trivia (whitespace, newlines, comments) are
// emitted as ordinary tokens, so concatenating Token.Text in stream order
// reproduces the source byte-for-byte.
package token

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

// Token types of the DAX grammar.
const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals and references
	IDENT       // identifier
	NUMBER      // 123, 45.67, 1e10
	STRING      // "hello" (double-quoted in DAX)
	TABLE_NAME  // 'Sales' (quoted table reference, quotes included)
	COLUMN_NAME // [Amount] (bracketed column/measure reference, brackets included)

	// Operators
	PLUS  // +
	MINUS // -
	STAR  // *
	SLASH // /
	CARET // ^
	AMP   // & (concatenation)
	EQ    // =
	NE    // <>
	LT    // <
	GT    // >
	LE    // <=
	GE    // >=
	AND   // &&
	OR    // ||

	// Punctuation
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }
	COMMA  // ,

	// Structural keywords
	EVALUATE
	DEFINE
	MEASURE
	COLUMN
	VAR
	RETURN

	// Trivia
	WHITESPACE    // run of spaces/tabs
	NEWLINE       // \n or \r\n
	LINE_COMMENT  // -- ... or // ... (to end of line, newline excluded)
	BLOCK_COMMENT // /* ... */ (not nested)
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:       "IDENT",
	NUMBER:      "NUMBER",
	STRING:      "STRING",
	TABLE_NAME:  "TABLE_NAME",
	COLUMN_NAME: "COLUMN_NAME",

	PLUS:  "+",
	MINUS: "-",
	STAR:  "*",
	SLASH: "/",
	CARET: "^",
	AMP:   "&",
	EQ:    "=",
	NE:    "<>",
	LT:    "<",
	GT:    ">",
	LE:    "<=",
	GE:    ">=",
	AND:   "&&",
	OR:    "||",

	LPAREN: "(",
	RPAREN: ")",
	LBRACE: "{",
	RBRACE: "}",
	COMMA:  ",",

	EVALUATE: "EVALUATE",
	DEFINE:   "DEFINE",
	MEASURE:  "MEASURE",
	COLUMN:   "COLUMN",
	VAR:      "VAR",
	RETURN:   "RETURN",

	WHITESPACE:    "WHITESPACE",
	NEWLINE:       "NEWLINE",
	LINE_COMMENT:  "LINE_COMMENT",
	BLOCK_COMMENT: "BLOCK_COMMENT",
}

// keywords maps lowercase keyword strings to their token types.
// Keyword recognition is case-insensitive; the token keeps original casing.
var keywords = map[string]TokenType{
	"evaluate": EVALUATE,
	"define":   DEFINE,
	"measure":  MEASURE,
	"column":   COLUMN,
	"var":      VAR,
	"return":   RETURN,
}

// LookupIdent returns the token type for the given identifier. Keyword
// recognition is case-insensitive: if the identifier names a structural
// keyword in any casing, the keyword token type is returned; otherwise
// IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[strings.ToLower(ident)]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token type is a structural keyword.
func IsKeyword(t TokenType) bool {
	return t >= EVALUATE && t <= RETURN
}

// IsOperator returns true if the token type is an operator.
func IsOperator(t TokenType) bool {
	return t >= PLUS && t <= OR
}

// IsComparison returns true for comparison operators.
func IsComparison(t TokenType) bool {
	return t >= EQ && t <= GE
}

// IsTrivia returns true for whitespace, newlines, and comments.
func IsTrivia(t TokenType) bool {
	return t >= WHITESPACE && t <= BLOCK_COMMENT
}

// IsComment returns true for line and block comments.
func IsComment(t TokenType) bool {
	return t == LINE_COMMENT || t == BLOCK_COMMENT
}

// Token represents a lexical token with position information.
// Tokens are immutable once produced by the lexer.
type Token struct {
	Type TokenType
	Text string // exact source text, including delimiters
	Pos  Position
}

// Length returns the byte length of the token's source text.
func (t Token) Length() int {
	return len(t.Text)
}

// IsKeyword reports whether the token is a structural keyword.
func (t Token) IsKeyword() bool {
	return IsKeyword(t.Type)
}

// IsTrivia reports whether the token is whitespace, a newline, or a comment.
func (t Token) IsTrivia() bool {
	return IsTrivia(t.Type)
}

// End returns the position immediately after the token, accounting for
// newlines inside multi-line tokens such as block comments.
func (t Token) End() Position {
	end := t.Pos
	for i := 0; i < len(t.Text); i++ {
		if t.Text[i] == '\n' {
			end.Line++
			end.Column = 1
		} else {
			end.Column++
		}
	}
	end.Offset = t.Pos.Offset + len(t.Text)
	return end
}

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident string
		want  TokenType
	}{
		{"EVALUATE", EVALUATE},
		{"evaluate", EVALUATE},
		{"Define", DEFINE},
		{"MEASURE", MEASURE},
		{"column", COLUMN},
		{"VAR", VAR},
		{"return", RETURN},
		{"SUM", IDENT},
		{"x", IDENT},
		{"", IDENT},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LookupIdent(tt.ident), tt.ident)
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsKeyword(EVALUATE))
	assert.True(t, IsKeyword(RETURN))
	assert.False(t, IsKeyword(IDENT))

	assert.True(t, IsOperator(PLUS))
	assert.True(t, IsOperator(OR))
	assert.False(t, IsOperator(LPAREN))

	assert.True(t, IsComparison(EQ))
	assert.True(t, IsComparison(GE))
	assert.False(t, IsComparison(PLUS))

	assert.True(t, IsTrivia(WHITESPACE))
	assert.True(t, IsTrivia(LINE_COMMENT))
	assert.False(t, IsTrivia(IDENT))

	assert.True(t, IsComment(BLOCK_COMMENT))
	assert.False(t, IsComment(NEWLINE))
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "EOF", EOF.String())
	assert.Equal(t, "IDENT", IDENT.String())
	assert.NotEmpty(t, CARET.String())
}

func TestTokenEnd(t *testing.T) {
	tok := Token{Type: IDENT, Text: "abc", Pos: Position{Line: 1, Column: 1, Offset: 0}}
	end := tok.End()
	assert.Equal(t, 1, end.Line)
	assert.Equal(t, 4, end.Column)
	assert.Equal(t, 3, end.Offset)

	multi := Token{Type: BLOCK_COMMENT, Text: "/* a\nb */", Pos: Position{Line: 1, Column: 1, Offset: 0}}
	end = multi.End()
	assert.Equal(t, 2, end.Line)
	assert.Equal(t, 5, end.Column)
	assert.Equal(t, 9, end.Offset)
}

func TestSpan(t *testing.T) {
	s := Span{
		Start: Position{Line: 1, Column: 1, Offset: 2},
		End:   Position{Line: 1, Column: 7, Offset: 8},
	}
	assert.True(t, s.IsValid())
	assert.True(t, s.Contains(2))
	assert.True(t, s.Contains(7))
	assert.False(t, s.Contains(8), "end is exclusive")
	assert.False(t, s.Contains(1))

	assert.False(t, Span{}.IsValid())
}

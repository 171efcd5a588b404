package parser

import (
	"strings"
	"unicode"

	"github.com/garydbutler/TabularForge-sub001/pkg/token"
)

// Lexer tokenizes DAX expression text.
//
// Unlike a skip-trivia scanner, the lexer emits whitespace, newlines, and
// comments as tokens so the original input can be reconstructed exactly by
// concatenating token texts in order. Unrecognized characters become ILLEGAL
// tokens; the lexer never fails.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   1,
	}
	if len(input) > 0 {
		l.ch = input[0]
	}
	l.readPos = 1
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.pos < len(l.input) {
		if l.input[l.pos] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
	}
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// atEOF reports whether the lexer has consumed all input.
func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// emit builds a token whose text is the exact input slice from start.
func (l *Lexer) emit(t token.TokenType, start int, pos token.Position) token.Token {
	return token.Token{Type: t, Text: l.input[start:l.pos], Pos: pos}
}

// NextToken returns the next token, including trivia.
func (l *Lexer) NextToken() token.Token {
	start := l.pos
	pos := l.currentPos()

	if l.atEOF() {
		return token.Token{Type: token.EOF, Text: "", Pos: pos}
	}

	switch l.ch {
	case '\n':
		l.readChar()
		return l.emit(token.NEWLINE, start, pos)
	case '\r':
		if l.peekChar() == '\n' {
			l.readChar()
			l.readChar()
			return l.emit(token.NEWLINE, start, pos)
		}
		l.readChar()
		return l.emit(token.WHITESPACE, start, pos)
	case ' ', '\t':
		for l.ch == ' ' || l.ch == '\t' || (l.ch == '\r' && l.peekChar() != '\n') {
			l.readChar()
		}
		return l.emit(token.WHITESPACE, start, pos)
	case '-':
		if l.peekChar() == '-' {
			return l.readLineComment(start, pos)
		}
		l.readChar()
		return l.emit(token.MINUS, start, pos)
	case '/':
		switch l.peekChar() {
		case '/':
			return l.readLineComment(start, pos)
		case '*':
			return l.readBlockComment(start, pos)
		}
		l.readChar()
		return l.emit(token.SLASH, start, pos)
	case '+':
		l.readChar()
		return l.emit(token.PLUS, start, pos)
	case '*':
		l.readChar()
		return l.emit(token.STAR, start, pos)
	case '^':
		l.readChar()
		return l.emit(token.CARET, start, pos)
	case '=':
		l.readChar()
		return l.emit(token.EQ, start, pos)
	case '<':
		switch l.peekChar() {
		case '=':
			l.readChar()
			l.readChar()
			return l.emit(token.LE, start, pos)
		case '>':
			l.readChar()
			l.readChar()
			return l.emit(token.NE, start, pos)
		}
		l.readChar()
		return l.emit(token.LT, start, pos)
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.emit(token.GE, start, pos)
		}
		l.readChar()
		return l.emit(token.GT, start, pos)
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			l.readChar()
			return l.emit(token.AND, start, pos)
		}
		l.readChar()
		return l.emit(token.AMP, start, pos)
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			l.readChar()
			return l.emit(token.OR, start, pos)
		}
		l.readChar()
		return l.emit(token.ILLEGAL, start, pos)
	case '(':
		l.readChar()
		return l.emit(token.LPAREN, start, pos)
	case ')':
		l.readChar()
		return l.emit(token.RPAREN, start, pos)
	case '{':
		l.readChar()
		return l.emit(token.LBRACE, start, pos)
	case '}':
		l.readChar()
		return l.emit(token.RBRACE, start, pos)
	case ',':
		l.readChar()
		return l.emit(token.COMMA, start, pos)
	case '"':
		return l.readString(start, pos)
	case '\'':
		return l.readTableName(start, pos)
	case '[':
		return l.readColumnName(start, pos)
	}

	switch {
	case isLetter(l.ch) || l.ch == '_':
		return l.readIdentifier(start, pos)
	case isDigit(l.ch), l.ch == '.' && isDigit(l.peekChar()):
		return l.readNumber(start, pos)
	}

	l.readChar()
	return l.emit(token.ILLEGAL, start, pos)
}

// readLineComment consumes a -- or // comment up to (not including) the newline.
func (l *Lexer) readLineComment(start int, pos token.Position) token.Token {
	for l.ch != '\n' && !l.atEOF() {
		if l.ch == '\r' && l.peekChar() == '\n' {
			break
		}
		l.readChar()
	}
	return l.emit(token.LINE_COMMENT, start, pos)
}

// readBlockComment consumes a /* */ comment. Block comments do not nest;
// an unterminated comment runs to end of input.
func (l *Lexer) readBlockComment(start int, pos token.Position) token.Token {
	l.readChar() // skip '/'
	l.readChar() // skip '*'
	for !l.atEOF() {
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			break
		}
		l.readChar()
	}
	return l.emit(token.BLOCK_COMMENT, start, pos)
}

// readString consumes a double-quoted string literal.
// Doubled quotes escape: "it""s" contains it"s. Unterminated strings run
// to end of input so reconstruction still holds.
func (l *Lexer) readString(start int, pos token.Position) token.Token {
	l.readChar() // skip opening quote
	for !l.atEOF() {
		if l.ch == '"' {
			if l.peekChar() == '"' {
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar() // closing quote
			break
		}
		l.readChar()
	}
	return l.emit(token.STRING, start, pos)
}

// readTableName consumes a single-quoted table reference like 'Sales Data'.
// Doubled single quotes escape a literal quote.
func (l *Lexer) readTableName(start int, pos token.Position) token.Token {
	l.readChar() // skip opening quote
	for !l.atEOF() {
		if l.ch == '\'' {
			if l.peekChar() == '\'' {
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar()
			break
		}
		l.readChar()
	}
	return l.emit(token.TABLE_NAME, start, pos)
}

// readColumnName consumes a bracketed column or measure reference like
// [Total Sales]. Doubled closing brackets escape a literal bracket.
func (l *Lexer) readColumnName(start int, pos token.Position) token.Token {
	l.readChar() // skip '['
	for !l.atEOF() {
		if l.ch == ']' {
			if l.peekChar() == ']' {
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar()
			break
		}
		l.readChar()
	}
	return l.emit(token.COLUMN_NAME, start, pos)
}

// readIdentifier consumes an unquoted identifier or keyword.
func (l *Lexer) readIdentifier(start int, pos token.Position) token.Token {
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' || l.ch == '.' {
		// A dot is only part of an identifier when surrounded by ident chars
		// (e.g. Sales.Amount exported naming); a trailing dot is not consumed.
		if l.ch == '.' && !(isLetter(l.peekChar()) || isDigit(l.peekChar()) || l.peekChar() == '_') {
			break
		}
		l.readChar()
	}
	text := l.input[start:l.pos]
	return token.Token{Type: token.LookupIdent(strings.ToLower(text)), Text: text, Pos: pos}
}

// readNumber consumes a numeric literal (integer, decimal, or scientific).
func (l *Lexer) readNumber(start int, pos token.Position) token.Token {
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	} else if l.ch == '.' && l.pos > start && !isLetter(l.peekChar()) && l.peekChar() != '_' {
		// trailing decimal point: 12.
		l.readChar()
	}
	if (l.ch == 'e' || l.ch == 'E') && (isDigit(l.peekChar()) || l.peekChar() == '+' || l.peekChar() == '-') {
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.emit(token.NUMBER, start, pos)
}

func isLetter(ch byte) bool {
	return ch >= 0x80 || unicode.IsLetter(rune(ch))
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize returns all tokens from the input, trivia included, always
// terminated by an EOF token.
func Tokenize(input string) []token.Token {
	l := NewLexer(input)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

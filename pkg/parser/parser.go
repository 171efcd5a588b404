// Package parser provides lexing and parsing of DAX expressions.
//
// # Usage
//
//	script, errs := parser.ParseText("EVALUATE SUMMARIZE(Sales, Sales[Region])")
//
// The parser is best-effort: syntax errors are accumulated as positioned
// ParseError values and parsing resumes at the next plausible boundary, so a
// malformed measure definition does not hide diagnostics on its siblings.
//
// # Grammar Overview
//
//	script      → statement*
//	statement   → define | evaluate | expression
//	define      → DEFINE (measure | column)* [evaluate]
//	measure     → MEASURE table column '=' expression
//	column      → COLUMN table column '=' expression
//	evaluate    → EVALUATE expression
//	expression  → varchain | binary
//	varchain    → (VAR ident '=' binary)+ RETURN expression
//
// Binary expressions use precedence climbing; see parser_expr.go.
package parser

import (
	"fmt"
	"strings"

	"github.com/garydbutler/TabularForge-sub001/pkg/token"
)

// Parser parses a DAX token stream into an AST.
type Parser struct {
	tokens []token.Token // significant tokens only, EOF-terminated
	idx    int
	prev   token.Token
	errors []*ParseError
}

// NewParser creates a parser over the given token stream. Trivia tokens are
// skipped; the stream is terminated with a synthetic EOF if none is present.
func NewParser(tokens []token.Token) *Parser {
	sig := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		if !t.IsTrivia() {
			sig = append(sig, t)
		}
	}
	if len(sig) == 0 || sig[len(sig)-1].Type != token.EOF {
		sig = append(sig, token.Token{Type: token.EOF, Pos: token.Position{Line: 1, Column: 1}})
	}
	return &Parser{tokens: sig}
}

// Parse parses a token stream into a Script plus any syntax errors found.
// The returned Script is always non-nil, possibly partial.
func Parse(tokens []token.Token) (*Script, []*ParseError) {
	p := NewParser(tokens)
	script := p.parseScript()
	return script, p.errors
}

// ParseText tokenizes and parses expression text in one step.
func ParseText(text string) (*Script, []*ParseError) {
	return Parse(Tokenize(text))
}

// ---------- Token Helpers ----------

func (p *Parser) cur() token.Token {
	return p.tokens[p.idx]
}

func (p *Parser) peek() token.Token {
	if p.idx+1 < len(p.tokens) {
		return p.tokens[p.idx+1]
	}
	return p.tokens[len(p.tokens)-1]
}

// next advances to the next token.
func (p *Parser) next() {
	if p.idx < len(p.tokens)-1 {
		p.prev = p.tokens[p.idx]
		p.idx++
	}
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.TokenType) bool {
	return p.cur().Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t token.TokenType) bool {
	if p.check(t) {
		p.next()
		return true
	}
	return false
}

// expect consumes the current token if it matches, otherwise adds an error.
func (p *Parser) expect(t token.TokenType) bool {
	if p.check(t) {
		p.next()
		return true
	}
	p.addError(fmt.Sprintf(ErrUnexpectedToken, p.cur().Type, t))
	return false
}

// addError records a parse error at the current token.
func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, &ParseError{Pos: p.cur().Pos, Message: msg})
}

// spanFrom builds a span from start to the end of the last consumed token.
func (p *Parser) spanFrom(start token.Position) token.Span {
	return token.Span{Start: start, End: p.prev.End()}
}

// syncDefinition skips ahead to the next definition boundary after an error.
func (p *Parser) syncDefinition() {
	for {
		switch p.cur().Type {
		case token.MEASURE, token.COLUMN, token.EVALUATE, token.DEFINE, token.EOF:
			return
		}
		p.next()
	}
}

// ---------- Statements ----------

func (p *Parser) parseScript() *Script {
	start := p.cur().Pos
	script := &Script{}
	for !p.check(token.EOF) {
		before := p.idx
		switch p.cur().Type {
		case token.DEFINE:
			script.Statements = append(script.Statements, p.parseDefine())
		case token.EVALUATE:
			script.Statements = append(script.Statements, p.parseEvaluate())
		case token.MEASURE, token.COLUMN:
			p.addError(fmt.Sprintf("%s definition outside a DEFINE block", p.cur().Type))
			script.Statements = append(script.Statements, p.parseDefinition())
		default:
			script.Statements = append(script.Statements, p.parseExprStmt())
		}
		if p.idx == before {
			// No progress: skip the offending token so the parse terminates.
			p.next()
		}
	}
	script.Span = p.spanFrom(start)
	return script
}

func (p *Parser) parseDefine() *Define {
	start := p.cur().Pos
	p.next() // DEFINE
	d := &Define{}
	for {
		switch p.cur().Type {
		case token.MEASURE, token.COLUMN:
			d.Definitions = append(d.Definitions, p.parseDefinition())
		case token.EVALUATE:
			d.Evaluate = p.parseEvaluate()
			d.Span = p.spanFrom(start)
			return d
		default:
			d.Span = p.spanFrom(start)
			return d
		}
	}
}

func (p *Parser) parseEvaluate() *Evaluate {
	start := p.cur().Pos
	p.next() // EVALUATE
	e := &Evaluate{Expr: p.parseExpression()}
	e.Span = p.spanFrom(start)
	return e
}

// parseDefinition parses MEASURE 'Table'[Name] = expr or the COLUMN form.
func (p *Parser) parseDefinition() Stmt {
	start := p.cur().Pos
	kw := p.cur()
	p.next()

	var table string
	switch p.cur().Type {
	case token.TABLE_NAME:
		table = unquoteTable(p.cur().Text)
		p.next()
	case token.IDENT:
		table = p.cur().Text
		p.next()
	default:
		p.addError(fmt.Sprintf(ErrExpectedMeasure, kw.Type))
		p.syncDefinition()
		return &ErrorNode{
			NodeInfo: NodeInfo{Span: p.spanFrom(start)},
			Message:  fmt.Sprintf("malformed %s definition", kw.Type),
			Tok:      kw,
		}
	}

	var name string
	if p.check(token.COLUMN_NAME) {
		name = unbracketColumn(p.cur().Text)
		p.next()
	} else {
		p.addError(fmt.Sprintf(ErrExpectedMeasure, kw.Type))
		p.syncDefinition()
		return &ErrorNode{
			NodeInfo: NodeInfo{Span: p.spanFrom(start)},
			Message:  fmt.Sprintf("malformed %s definition", kw.Type),
			Tok:      kw,
		}
	}

	p.expect(token.EQ)
	expr := p.parseExpression()

	if kw.Type == token.MEASURE {
		return &MeasureDef{NodeInfo: NodeInfo{Span: p.spanFrom(start)}, Table: table, Name: name, Expr: expr}
	}
	return &ColumnDef{NodeInfo: NodeInfo{Span: p.spanFrom(start)}, Table: table, Name: name, Expr: expr}
}

func (p *Parser) parseExprStmt() *ExprStmt {
	start := p.cur().Pos
	s := &ExprStmt{Expr: p.parseExpression()}
	s.Span = p.spanFrom(start)
	return s
}

// ---------- Name Helpers ----------

// unquoteTable strips the single quotes from 'Table Name' and unescapes
// doubled quotes. Unquoted identifiers pass through unchanged.
func unquoteTable(text string) string {
	if len(text) >= 2 && text[0] == '\'' {
		body := text[1:]
		if body[len(body)-1] == '\'' {
			body = body[:len(body)-1]
		}
		return strings.ReplaceAll(body, "''", "'")
	}
	return text
}

// unbracketColumn strips the brackets from [Column Name] and unescapes
// doubled closing brackets.
func unbracketColumn(text string) string {
	if len(text) >= 2 && text[0] == '[' {
		body := text[1:]
		if body[len(body)-1] == ']' {
			body = body[:len(body)-1]
		}
		return strings.ReplaceAll(body, "]]", "]")
	}
	return text
}

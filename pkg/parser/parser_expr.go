package parser

import (
	"fmt"

	"github.com/garydbutler/TabularForge-sub001/pkg/token"
)

// Expression precedence parsing using precedence climbing.
//
// Precedence levels, loosest to tightest:
//
//	precLogical        = 1  (&&, ||)
//	precComparison     = 2  (=, <>, <, >, <=, >=)
//	precAdditive       = 3  (+, -)
//	precConcat         = 4  (&)
//	precMultiplicative = 5  (*, /)
//	precPower          = 6  (^)
//	precUnary          = 7  (unary -, +)
//
// All binary operators are left-associative except ^, which is
// right-associative; unary operators are right-associative by construction.
const (
	precNone = iota
	precLogical
	precComparison
	precAdditive
	precConcat
	precMultiplicative
	precPower
	precUnary
)

// infixPrecedence returns the precedence of t as an infix operator,
// or precNone if t is not one.
func infixPrecedence(t token.TokenType) int {
	switch t {
	case token.AND, token.OR:
		return precLogical
	case token.EQ, token.NE, token.LT, token.GT, token.LE, token.GE:
		return precComparison
	case token.PLUS, token.MINUS:
		return precAdditive
	case token.AMP:
		return precConcat
	case token.STAR, token.SLASH:
		return precMultiplicative
	case token.CARET:
		return precPower
	default:
		return precNone
	}
}

// parseExpression parses an expression, including VAR ... RETURN chains.
func (p *Parser) parseExpression() Expr {
	if p.check(token.VAR) {
		return p.parseVarChain()
	}
	return p.parseBinary(precLogical)
}

// parseVarChain parses one or more VAR definitions followed by RETURN.
// VAR names are flat: a later VAR with the same name shadows by overwrite
// during analysis; the parser does not enforce uniqueness.
func (p *Parser) parseVarChain() Expr {
	start := p.cur().Pos
	list := &ExprList{}

	for p.check(token.VAR) {
		vstart := p.cur().Pos
		p.next() // VAR
		v := &VarExpr{}
		if p.check(token.IDENT) {
			v.Name = p.cur().Text
			p.next()
		} else {
			p.addError(ErrExpectedVarName)
		}
		p.expect(token.EQ)
		v.Value = p.parseBinary(precLogical)
		v.Span = p.spanFrom(vstart)
		list.Items = append(list.Items, v)
	}

	if p.check(token.RETURN) {
		rstart := p.cur().Pos
		p.next() // RETURN
		r := &ReturnExpr{Value: p.parseExpression()}
		r.Span = p.spanFrom(rstart)
		list.Items = append(list.Items, r)
	} else {
		p.addError(ErrExpectedReturn)
	}

	list.Span = p.spanFrom(start)
	return list
}

// parseBinary implements precedence climbing over binary operators.
func (p *Parser) parseBinary(minPrec int) Expr {
	left := p.parseUnary()
	for {
		prec := infixPrecedence(p.cur().Type)
		if prec < minPrec || prec == precNone {
			return left
		}
		op := p.cur()
		p.next()

		next := prec + 1
		if op.Type == token.CARET {
			next = prec // right-associative
		}
		right := p.parseBinary(next)
		left = &BinaryExpr{
			NodeInfo: NodeInfo{Span: token.Span{Start: left.GetSpan().Start, End: p.prev.End()}},
			Left:     left,
			Op:       op.Type,
			Right:    right,
		}
	}
}

// parseUnary parses prefix + and -.
func (p *Parser) parseUnary() Expr {
	if p.check(token.MINUS) || p.check(token.PLUS) {
		start := p.cur().Pos
		op := p.cur().Type
		p.next()
		operand := p.parseUnary()
		return &UnaryExpr{NodeInfo: NodeInfo{Span: p.spanFrom(start)}, Op: op, Expr: operand}
	}
	return p.parsePrimary()
}

// parsePrimary parses literals, references, calls, parens, and braces.
func (p *Parser) parsePrimary() Expr {
	start := p.cur().Pos

	switch p.cur().Type {
	case token.NUMBER:
		text := p.cur().Text
		p.next()
		return &Literal{NodeInfo: NodeInfo{Span: p.spanFrom(start)}, Kind: LiteralNumber, Text: text}

	case token.STRING:
		text := p.cur().Text
		p.next()
		return &Literal{NodeInfo: NodeInfo{Span: p.spanFrom(start)}, Kind: LiteralString, Text: text}

	case token.TABLE_NAME:
		table := unquoteTable(p.cur().Text)
		p.next()
		if p.check(token.COLUMN_NAME) {
			column := unbracketColumn(p.cur().Text)
			p.next()
			return &ColumnRef{NodeInfo: NodeInfo{Span: p.spanFrom(start)}, Table: table, Column: column}
		}
		return &TableRef{NodeInfo: NodeInfo{Span: p.spanFrom(start)}, Table: table}

	case token.COLUMN_NAME:
		column := unbracketColumn(p.cur().Text)
		p.next()
		return &ColumnRef{NodeInfo: NodeInfo{Span: p.spanFrom(start)}, Column: column}

	case token.IDENT:
		name := p.cur().Text
		switch p.peek().Type {
		case token.LPAREN:
			p.next() // name
			p.next() // (
			args := p.parseCallArgs()
			return &FunctionCall{NodeInfo: NodeInfo{Span: p.spanFrom(start)}, Name: name, Args: args}
		case token.COLUMN_NAME:
			p.next()
			column := unbracketColumn(p.cur().Text)
			p.next()
			return &ColumnRef{NodeInfo: NodeInfo{Span: p.spanFrom(start)}, Table: name, Column: column}
		default:
			p.next()
			return &Identifier{NodeInfo: NodeInfo{Span: p.spanFrom(start)}, Name: name}
		}

	case token.LPAREN:
		p.next()
		inner := p.parseExpression()
		p.expect(token.RPAREN)
		return &ParenExpr{NodeInfo: NodeInfo{Span: p.spanFrom(start)}, Expr: inner}

	case token.LBRACE:
		p.next()
		list := &ExprList{}
		if !p.check(token.RBRACE) {
			list.Items = append(list.Items, p.parseExpression())
			for p.match(token.COMMA) {
				if p.check(token.RBRACE) {
					break
				}
				list.Items = append(list.Items, p.parseExpression())
			}
		}
		p.expect(token.RBRACE)
		list.Span = p.spanFrom(start)
		return list

	case token.VAR:
		// Nested VAR chain (for example inside parentheses).
		return p.parseVarChain()
	}

	// Anything else cannot start an expression. Report it, produce an error
	// node, and advance only past tokens no outer construct can consume.
	tok := p.cur()
	p.addError(fmt.Sprintf("unexpected token %s in expression", tok.Type))
	switch tok.Type {
	case token.EOF, token.RPAREN, token.RBRACE, token.COMMA,
		token.EVALUATE, token.DEFINE, token.MEASURE, token.COLUMN, token.RETURN:
		// leave for the caller
	default:
		p.next()
	}
	return &ErrorNode{
		NodeInfo: NodeInfo{Span: token.Span{Start: tok.Pos, End: tok.End()}},
		Message:  fmt.Sprintf("unexpected token %s", tok.Type),
		Tok:      tok,
	}
}

// parseCallArgs parses a comma-separated argument list after '('.
func (p *Parser) parseCallArgs() []Expr {
	var args []Expr
	if !p.check(token.RPAREN) {
		args = append(args, p.parseExpression())
		for p.match(token.COMMA) {
			if p.check(token.RPAREN) {
				break
			}
			args = append(args, p.parseExpression())
		}
	}
	p.expect(token.RPAREN)
	return args
}

// Package analyzer performs semantic analysis of DAX scripts. It layers
// lexical checks (illegal tokens, bracket balance), syntax errors from the
// parser, and model-aware reference validation into a single flat list of
// diagnostics. The list is in discovery order: lexical findings first,
// then bracket balance, then syntax errors, then the model walk.
package analyzer

import (
	"fmt"
	"strings"

	"github.com/garydbutler/TabularForge-sub001/pkg/functions"
	"github.com/garydbutler/TabularForge-sub001/pkg/model"
	"github.com/garydbutler/TabularForge-sub001/pkg/parser"
	"github.com/garydbutler/TabularForge-sub001/pkg/token"
)

// Diagnostic represents an analysis finding.
type Diagnostic struct {
	Severity Severity
	Message  string
	Pos      token.Position
	Length   int
	Source   string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s at line %d, column %d: %s", d.Severity, d.Pos.Line, d.Pos.Column, d.Message)
}

// Analyze runs the full analysis pipeline over a DAX script. A nil model
// disables reference validation but keeps lexical, syntax and function
// catalog checks. The source label is stamped on every diagnostic so
// callers can attribute findings to a file name.
//
// Analyze never panics: an internal failure is converted into a single
// error diagnostic at the start of the input.
func Analyze(input string, mdl *model.ModelInfo, source string) (diags []Diagnostic) {
	defer func() {
		if r := recover(); r != nil {
			diags = []Diagnostic{{
				Severity: SeverityError,
				Message:  fmt.Sprintf("internal analysis failure: %v", r),
				Pos:      token.Position{Line: 1, Column: 1},
			}}
		}
		for i := range diags {
			diags[i].Source = source
		}
	}()

	a := &analysis{model: mdl, vars: make(map[string]bool)}

	tokens := parser.Tokenize(input)
	a.checkTokens(tokens)
	a.checkBrackets(tokens)

	script, parseErrs := parser.Parse(tokens)
	for _, e := range parseErrs {
		a.add(SeverityError, e.Pos, 1, "%s", e.Message)
	}

	a.collectVars(script)
	for _, stmt := range script.Statements {
		a.walkStmt(stmt)
	}

	return a.diags
}

type analysis struct {
	model *model.ModelInfo
	vars  map[string]bool
	diags []Diagnostic
}

func (a *analysis) add(sev Severity, pos token.Position, length int, format string, args ...any) {
	a.diags = append(a.diags, Diagnostic{
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
		Length:   length,
	})
}

func (a *analysis) addNode(sev Severity, n parser.Node, format string, args ...any) {
	span := n.GetSpan()
	length := span.End.Offset - span.Start.Offset
	if length < 1 {
		length = 1
	}
	a.add(sev, span.Start, length, format, args...)
}

// checkTokens reports every token the lexer could not classify.
func (a *analysis) checkTokens(tokens []token.Token) {
	for _, tok := range tokens {
		if tok.Type == token.ILLEGAL {
			a.add(SeverityError, tok.Pos, len(tok.Text), "unexpected character %q", tok.Text)
		}
	}
}

// checkBrackets verifies that parentheses and braces are balanced. Every
// unmatched opener and every unmatched closer produces its own
// diagnostic; a mismatched closer does not consume the opener, so the
// opener is still reported if nothing later closes it.
func (a *analysis) checkBrackets(tokens []token.Token) {
	var stack []token.Token
	for _, tok := range tokens {
		switch tok.Type {
		case token.LPAREN, token.LBRACE:
			stack = append(stack, tok)
		case token.RPAREN, token.RBRACE:
			want := token.LPAREN
			if tok.Type == token.RBRACE {
				want = token.LBRACE
			}
			if len(stack) > 0 && stack[len(stack)-1].Type == want {
				stack = stack[:len(stack)-1]
			} else {
				a.add(SeverityError, tok.Pos, 1, "unmatched %q", tok.Text)
			}
		}
	}
	for _, open := range stack {
		a.add(SeverityError, open.Pos, 1, "unclosed %q", open.Text)
	}
}

// collectVars records every VAR name so references to them are not
// mistaken for unknown functions. DAX variables share one scope per
// expression; a flat table is sufficient for name checks.
func (a *analysis) collectVars(n parser.Node) {
	if v, ok := n.(*parser.VarExpr); ok {
		a.vars[strings.ToLower(v.Name)] = true
	}
	for _, child := range childNodes(n) {
		a.collectVars(child)
	}
}

func (a *analysis) walkStmt(stmt parser.Stmt) {
	switch s := stmt.(type) {
	case *parser.Define:
		for _, def := range s.Definitions {
			a.walkStmt(def)
		}
		if s.Evaluate != nil {
			a.walkStmt(s.Evaluate)
		}
	case *parser.Evaluate:
		a.walkExpr(s.Expr)
	case *parser.MeasureDef:
		a.checkTable(s, s.Table)
		a.walkExpr(s.Expr)
	case *parser.ColumnDef:
		a.checkTable(s, s.Table)
		a.walkExpr(s.Expr)
	case *parser.ExprStmt:
		a.walkExpr(s.Expr)
	case *parser.ErrorNode:
		// Already reported by the parser.
	}
}

func (a *analysis) walkExpr(expr parser.Expr) {
	switch e := expr.(type) {
	case nil:
	case *parser.ExprList:
		for _, item := range e.Items {
			a.walkExpr(item)
		}
	case *parser.VarExpr:
		a.walkExpr(e.Value)
	case *parser.ReturnExpr:
		a.walkExpr(e.Value)
	case *parser.FunctionCall:
		a.checkCall(e)
		for _, arg := range e.Args {
			a.walkExpr(arg)
		}
	case *parser.TableRef:
		a.checkTable(e, e.Table)
	case *parser.ColumnRef:
		a.checkColumn(e)
	case *parser.BinaryExpr:
		a.walkExpr(e.Left)
		a.walkExpr(e.Right)
	case *parser.UnaryExpr:
		a.walkExpr(e.Expr)
	case *parser.ParenExpr:
		a.walkExpr(e.Expr)
	case *parser.Identifier, *parser.Literal, *parser.ErrorNode:
		// Bare identifiers are variable or keyword-like references and
		// carry no model obligation. Error nodes were reported already.
	}
}

func (a *analysis) checkCall(call *parser.FunctionCall) {
	sig, ok := functions.Lookup(call.Name)
	if !ok {
		// A VAR name only suppresses the unknown-function warning; a
		// catalog function keeps its arity contract even when a variable
		// shadows the name.
		if !a.vars[strings.ToLower(call.Name)] {
			a.addNode(SeverityWarning, call, "unknown function %q", call.Name)
		}
		return
	}
	if required := sig.RequiredParameters(); len(call.Args) < required {
		a.addNode(SeverityError, call, "%s expects at least %d argument(s), got %d", sig.Name, required, len(call.Args))
	}
}

func (a *analysis) checkTable(n parser.Node, name string) {
	if a.model == nil {
		return
	}
	if _, ok := a.model.Table(name); !ok {
		a.addNode(SeverityError, n, "unknown table %q", name)
	}
}

func (a *analysis) checkColumn(ref *parser.ColumnRef) {
	if a.model == nil {
		return
	}
	if ref.Table == "" {
		// Unqualified references resolve against every table, so a miss
		// is only a warning: the name may come from a variable or an
		// extension column created at query time.
		if !a.model.HasAnyField(ref.Column) {
			a.addNode(SeverityWarning, ref, "column %q not found in any table", ref.Column)
		}
		return
	}
	tbl, ok := a.model.Table(ref.Table)
	if !ok {
		a.addNode(SeverityError, ref, "unknown table %q", ref.Table)
		return
	}
	if !tbl.HasField(ref.Column) {
		a.addNode(SeverityError, ref, "unknown column %q on table %q", ref.Column, tbl.Name)
	}
}

// childNodes enumerates the direct children of a node. Used by the
// variable pre-pass, which needs a full traversal before validation.
func childNodes(n parser.Node) []parser.Node {
	var out []parser.Node
	push := func(c parser.Node) {
		// Typed nils appear when optional fields are absent.
		switch v := c.(type) {
		case *parser.Evaluate:
			if v == nil {
				return
			}
		case nil:
			return
		}
		if c != nil {
			out = append(out, c)
		}
	}
	switch v := n.(type) {
	case *parser.Script:
		for _, s := range v.Statements {
			push(s)
		}
	case *parser.Define:
		for _, s := range v.Definitions {
			push(s)
		}
		push(v.Evaluate)
	case *parser.Evaluate:
		push(v.Expr)
	case *parser.MeasureDef:
		push(v.Expr)
	case *parser.ColumnDef:
		push(v.Expr)
	case *parser.ExprStmt:
		push(v.Expr)
	case *parser.ExprList:
		for _, item := range v.Items {
			push(item)
		}
	case *parser.VarExpr:
		push(v.Value)
	case *parser.ReturnExpr:
		push(v.Value)
	case *parser.FunctionCall:
		for _, arg := range v.Args {
			push(arg)
		}
	case *parser.BinaryExpr:
		push(v.Left)
		push(v.Right)
	case *parser.UnaryExpr:
		push(v.Expr)
	case *parser.ParenExpr:
		push(v.Expr)
	}
	return out
}

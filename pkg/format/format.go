// Package format renders DAX expressions under a configurable style.
//
// The formatter is a token-level rewriter: it never builds an AST, so it
// can render malformed input best-effort and it never fails. Output is a
// pure function of the significant token stream and the options, which
// makes repeated formatting a fixed point: format(format(x)) == format(x).
package format

import (
	"strings"

	"github.com/garydbutler/TabularForge-sub001/pkg/functions"
	"github.com/garydbutler/TabularForge-sub001/pkg/parser"
	"github.com/garydbutler/TabularForge-sub001/pkg/token"
)

// renderTok is one significant token paired with its normalized output
// text. Normalization (keyword and function casing) happens once up
// front so every later decision sees final texts.
type renderTok struct {
	tok   token.Token
	text  string
	unary bool
}

// Format renders a DAX expression under the given options. Malformed
// input is rendered as well as the token stream allows; Format never
// returns an error.
func Format(input string, opts Options) string {
	toks := normalize(parser.Tokenize(input), opts)
	if len(toks) == 0 {
		return ""
	}
	if out, ok := tryInline(input, toks, opts); ok {
		return out
	}
	f := &formatter{toks: toks, opts: opts, p: newPrinter(opts)}
	f.run()
	return f.p.String()
}

// normalize drops trivia (keeping comments when preserved), applies
// casing rules and marks sign operators.
func normalize(tokens []token.Token, opts Options) []renderTok {
	var kept []token.Token
	for _, t := range tokens {
		switch {
		case t.Type == token.EOF:
		case token.IsComment(t.Type):
			if opts.PreserveComments {
				kept = append(kept, t)
			}
		case t.IsTrivia():
		default:
			kept = append(kept, t)
		}
	}

	out := make([]renderTok, 0, len(kept))
	var prev *token.Token
	for i, t := range kept {
		rt := renderTok{tok: t, text: t.Text}
		switch {
		case t.IsKeyword():
			if opts.UppercaseKeywords {
				rt.text = strings.ToUpper(t.Text)
			}
		case t.Type == token.IDENT:
			if opts.UppercaseFunctions && nextSignificant(kept, i) == token.LPAREN {
				if sig, ok := functions.Lookup(t.Text); ok {
					rt.text = sig.Name
				}
			}
		case t.Type == token.PLUS || t.Type == token.MINUS:
			rt.unary = isSignPosition(prev)
		}
		if !token.IsComment(t.Type) {
			tc := t
			prev = &tc
		}
		out = append(out, rt)
	}
	return out
}

// nextSignificant returns the type of the next non-comment token after i.
func nextSignificant(kept []token.Token, i int) token.TokenType {
	for j := i + 1; j < len(kept); j++ {
		if !token.IsComment(kept[j].Type) {
			return kept[j].Type
		}
	}
	return token.EOF
}

// isSignPosition reports whether a +/- following prev acts as a sign
// rather than a binary operator.
func isSignPosition(prev *token.Token) bool {
	if prev == nil {
		return true
	}
	switch {
	case token.IsOperator(prev.Type):
		return true
	case prev.IsKeyword():
		return true
	}
	switch prev.Type {
	case token.COMMA, token.LPAREN, token.LBRACE:
		return true
	}
	return false
}

// tryInline renders the whole expression on a single line when it is
// eligible: original text without newlines, no structural keywords, no
// line comments, and a rendering that fits the single-line budget.
func tryInline(input string, toks []renderTok, opts Options) (string, bool) {
	if strings.ContainsRune(input, '\n') {
		return "", false
	}
	for _, t := range toks {
		if t.tok.IsKeyword() || t.tok.Type == token.LINE_COMMENT {
			return "", false
		}
	}
	budget := opts.MaxLineLength
	if opts.CompactShortExpressions {
		budget = opts.CompactThreshold
	}
	out := renderFlat(toks, opts)
	if len(out) > budget {
		return "", false
	}
	return out, true
}

// renderFlat joins the normalized tokens with spacing rules only.
func renderFlat(toks []renderTok, opts Options) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 && needSpace(toks[i-1], t, opts) {
			b.WriteByte(' ')
		}
		b.WriteString(t.text)
	}
	return b.String()
}

// needSpace decides whether a space separates two adjacent rendered
// tokens.
func needSpace(prev, cur renderTok, opts Options) bool {
	pt, ct := prev.tok.Type, cur.tok.Type
	switch {
	case ct == token.COMMA:
		return false
	case pt == token.COMMA:
		return opts.SpaceAfterComma
	case pt == token.LPAREN || pt == token.LBRACE:
		return false
	case ct == token.RPAREN || ct == token.RBRACE:
		return false
	case prev.unary:
		return false
	case ct == token.LPAREN:
		// Callees hug their argument list; operators and keywords keep
		// a space before the paren.
		switch pt {
		case token.IDENT, token.TABLE_NAME, token.COLUMN_NAME, token.RPAREN:
			return false
		}
		return true
	case token.IsOperator(pt) || token.IsOperator(ct):
		return opts.SpaceAroundOperators
	case ct == token.COLUMN_NAME && (pt == token.IDENT || pt == token.TABLE_NAME):
		return false
	}
	return true
}

// group tracks one open bracket on the formatter stack.
type group struct {
	breaking  bool
	align     int // aligned continuation column, -1 when indenting
	prevAlign int
}

type formatter struct {
	toks   []renderTok
	opts   Options
	p      *printer
	groups []group
	inVar  bool
}

func (f *formatter) run() {
	for i := range f.toks {
		switch f.toks[i].tok.Type {
		case token.EVALUATE, token.DEFINE:
			f.breakLine()
			f.p.depth = 0
			f.p.alignCol = -1
			f.inVar = false
			f.emit(i)
		case token.MEASURE, token.COLUMN:
			f.breakLine()
			f.p.depth = 1
			f.inVar = false
			f.emit(i)
		case token.VAR:
			if f.inVar && f.opts.IndentAfterKeywords {
				f.p.dedent()
			}
			if f.opts.NewLineAfterVar {
				f.breakLine()
			}
			f.emit(i)
			if f.opts.IndentAfterKeywords {
				f.p.indent()
			}
			f.inVar = true
		case token.RETURN:
			if f.inVar && f.opts.IndentAfterKeywords {
				f.p.dedent()
			}
			f.inVar = false
			f.breakLine()
			f.emit(i)
			if f.opts.BreakAfterReturn {
				f.p.indent()
				f.p.writeln()
			}
		case token.LPAREN, token.LBRACE:
			f.openGroup(i)
		case token.RPAREN, token.RBRACE:
			f.closeGroup(i)
		case token.COMMA:
			g := f.topGroup()
			if g != nil && g.breaking && f.opts.BreakBeforeComma {
				f.breakLine()
			}
			f.emit(i)
			if g != nil && g.breaking && f.opts.BreakAfterComma {
				f.p.writeln()
			}
		case token.LINE_COMMENT:
			f.emit(i)
			f.p.writeln()
		default:
			f.emit(i)
		}
	}
}

func (f *formatter) openGroup(i int) {
	breaking := f.shouldBreak(i)
	f.emit(i)
	g := group{breaking: breaking, align: -1, prevAlign: f.p.alignCol}
	if breaking {
		if f.opts.AlignFunctionParameters {
			g.align = f.p.col
			f.p.alignCol = g.align
		} else {
			f.p.indent()
			f.p.writeln()
		}
	}
	f.groups = append(f.groups, g)
}

func (f *formatter) closeGroup(i int) {
	n := len(f.groups)
	if n == 0 {
		// Unbalanced input: render the stray closer in place.
		f.emit(i)
		return
	}
	g := f.groups[n-1]
	f.groups = f.groups[:n-1]
	if g.breaking {
		if g.align >= 0 {
			f.p.alignCol = g.prevAlign
			f.emit(i)
			return
		}
		f.p.dedent()
		f.breakLine()
	}
	f.emit(i)
}

func (f *formatter) topGroup() *group {
	if len(f.groups) == 0 {
		return nil
	}
	return &f.groups[len(f.groups)-1]
}

// shouldBreak estimates the rendered width of the bracket group opening
// at index open and breaks it when the content does not fit the
// remaining line budget. A preserved line comment inside the group
// always forces a break.
func (f *formatter) shouldBreak(open int) bool {
	depth := 0
	width := 0
	for i := open; i < len(f.toks); i++ {
		t := f.toks[i]
		switch t.tok.Type {
		case token.LPAREN, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACE:
			depth--
			if depth == 0 {
				return width > f.p.remaining()
			}
		case token.LINE_COMMENT:
			return true
		}
		if i > open {
			width += len(t.text) + 1
		}
	}
	// No matching close: break when the rest of the stream is long.
	return width > f.p.remaining()
}

func (f *formatter) breakLine() {
	if !f.p.atLineStart {
		f.p.writeln()
	}
}

func (f *formatter) emit(i int) {
	if !f.p.atLineStart && i > 0 && needSpace(f.toks[i-1], f.toks[i], f.opts) {
		f.p.space()
	}
	f.p.write(f.toks[i].text)
}

package format

import (
	"bytes"
	"strings"
)

// printer accumulates formatted output with indentation tracking. It is
// the only mutable state of a Format call.
type printer struct {
	opts        Options
	output      *bytes.Buffer
	depth       int
	col         int
	atLineStart bool
	// alignCol, when >= 0, overrides level indentation so continuation
	// lines line up under a function's first argument.
	alignCol int
}

func newPrinter(opts Options) *printer {
	return &printer{
		opts:        opts,
		output:      &bytes.Buffer{},
		atLineStart: true,
		alignCol:    -1,
	}
}

// String returns the output with trailing whitespace trimmed from every
// line.
func (p *printer) String() string {
	lines := strings.Split(p.output.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n \t")
}

func (p *printer) write(s string) {
	if p.atLineStart && len(s) > 0 {
		p.writeIndent()
	}
	p.output.WriteString(s)
	p.col += len(s)
}

func (p *printer) space() {
	p.output.WriteByte(' ')
	p.col++
}

func (p *printer) writeln() {
	p.output.WriteByte('\n')
	p.atLineStart = true
	p.col = 0
}

func (p *printer) writeIndent() {
	p.atLineStart = false
	if p.alignCol >= 0 {
		for i := 0; i < p.alignCol; i++ {
			p.output.WriteByte(' ')
		}
		p.col = p.alignCol
		return
	}
	if p.opts.UseTabs {
		for i := 0; i < p.depth; i++ {
			p.output.WriteByte('\t')
		}
		// Tabs count as one column each; the line budget is approximate
		// in tab mode.
		p.col = p.depth
		return
	}
	width := p.depth * p.opts.IndentSize
	for i := 0; i < width; i++ {
		p.output.WriteByte(' ')
	}
	p.col = width
}

func (p *printer) indent() {
	p.depth++
}

func (p *printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

// remaining reports the unused portion of the line budget at the current
// column.
func (p *printer) remaining() int {
	r := p.opts.MaxLineLength - p.col
	if r < 0 {
		return 0
	}
	return r
}

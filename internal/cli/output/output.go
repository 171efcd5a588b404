// Package output provides terminal rendering helpers for the CLI:
// severity styling, diagnostic lines and tabular listings.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"

	"github.com/garydbutler/TabularForge-sub001/pkg/analyzer"
)

// Styles holds the lipgloss styles used for terminal output.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Muted   lipgloss.Style
	Header  lipgloss.Style
}

// DefaultStyles returns the standard style set.
func DefaultStyles() *Styles {
	return &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Header:  lipgloss.NewStyle().Bold(true),
	}
}

// SeverityStyle returns the style for a diagnostic severity.
func (s *Styles) SeverityStyle(sev analyzer.Severity) lipgloss.Style {
	switch sev {
	case analyzer.SeverityError:
		return s.Error
	case analyzer.SeverityWarning:
		return s.Warning
	case analyzer.SeverityInfo:
		return s.Info
	default:
		return s.Muted
	}
}

// Renderer writes styled output. Styling is disabled when the writer is
// not a terminal so piped output stays plain.
type Renderer struct {
	out    io.Writer
	styles *Styles
	plain  bool
	width  int
}

// NewRenderer builds a renderer for the given writer.
func NewRenderer(out io.Writer) *Renderer {
	r := &Renderer{out: out, styles: DefaultStyles(), plain: true, width: 100}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.plain = false
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			r.width = w
		}
	}
	return r
}

// Writer returns the underlying writer.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// Width returns the terminal width, or a default for non-terminals.
func (r *Renderer) Width() int {
	return r.width
}

// Printf writes formatted plain text.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Println writes a plain line.
func (r *Renderer) Println(args ...any) {
	fmt.Fprintln(r.out, args...)
}

// Diagnostic writes one diagnostic line, styled by severity.
func (r *Renderer) Diagnostic(d analyzer.Diagnostic) {
	label := d.Severity.String()
	if !r.plain {
		label = r.styles.SeverityStyle(d.Severity).Render(label)
	}
	source := d.Source
	if source == "" {
		source = "<input>"
	}
	fmt.Fprintf(r.out, "%s:%d:%d: %s: %s\n", source, d.Pos.Line, d.Pos.Column, label, d.Message)
}

// Table renders rows under a header using box-drawn output on terminals
// and plain separated columns otherwise.
func (r *Renderer) Table(header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)

	hdr := make(table.Row, len(header))
	for i, h := range header {
		hdr[i] = h
	}
	t.AppendHeader(hdr)
	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, c := range row {
			tr[i] = c
		}
		t.AppendRow(tr)
	}

	if r.plain {
		t.RenderTSV()
		return
	}
	t.SetStyle(table.StyleLight)
	t.SetAllowedRowLength(r.width)
	t.Render()
}

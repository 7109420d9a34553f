package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/litezip/pkg/litezip"
)

// Printer renders command output, styled or plain.
type Printer struct {
	color bool
}

// NewPrinter creates a Printer. With color false every method returns plain text.
func NewPrinter(color bool) *Printer {
	return &Printer{color: color}
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

// Diagnostic formats d as "path: message". Schema messages of the form
// "line:col -- error: text" get their location and severity highlighted.
func (p *Printer) Diagnostic(d litezip.Diagnostic) string {
	if !p.color {
		return d.String()
	}

	path := p.render(PathStyle, d.Path)
	location, rest, ok := strings.Cut(d.Message, " -- error: ")
	if !ok {
		return fmt.Sprintf("%s: %s", path, d.Message)
	}
	return fmt.Sprintf("%s: %s %s %s",
		path, p.render(LocationStyle, location), p.render(SeverityStyle, "error:"), rest)
}

// Summary reports the outcome of validating a tree.
func (p *Printer) Summary(count int) string {
	if count == 0 {
		return p.render(SuccessStyle, SymbolCheck+" no problems found")
	}
	noun := "problems"
	if count == 1 {
		noun = "problem"
	}
	return p.render(ErrorStyle, fmt.Sprintf("%s %d %s found", SymbolCross, count, noun))
}

// Success renders a completed action.
func (p *Printer) Success(s string) string {
	return p.render(SuccessStyle, SymbolCheck+" "+s)
}

// Title renders a heading.
func (p *Printer) Title(s string) string {
	return p.render(TitleStyle, s)
}

// Field renders "key: value" with the key highlighted.
func (p *Printer) Field(key, value string) string {
	return p.render(KeyStyle, key+":") + " " + value
}

// Muted renders secondary text.
func (p *Printer) Muted(s string) string {
	return p.render(MutedStyle, s)
}

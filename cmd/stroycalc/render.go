package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Simplici0/stroycalc/internal/format"
)

var (
	colorHeader    = lipgloss.Color("12")
	colorLabel     = lipgloss.Color("245")
	colorHighlight = lipgloss.Color("10")
)

// lineRenderer prints formatted lines as an aligned two-column list, styled
// only when writing to a terminal.
type lineRenderer struct {
	styled    bool
	header    lipgloss.Style
	label     lipgloss.Style
	highlight lipgloss.Style
}

func newLineRenderer(styled bool) lineRenderer {
	return lineRenderer{
		styled:    styled,
		header:    lipgloss.NewStyle().Foreground(colorHeader).Bold(true),
		label:     lipgloss.NewStyle().Foreground(colorLabel),
		highlight: lipgloss.NewStyle().Foreground(colorHighlight).Bold(true),
	}
}

func (lr lineRenderer) render(w io.Writer, title string, lines []format.Line) {
	if title != "" {
		fmt.Fprintln(w, lr.style(lr.header, title))
	}

	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l.Label))
	}
	for _, l := range lines {
		label := l.Label + ":" + strings.Repeat(" ", width-lipgloss.Width(l.Label)+1)
		value := l.Value
		if l.Highlighted {
			value = lr.style(lr.highlight, value)
		}
		fmt.Fprintf(w, "  %s%s\n", lr.style(lr.label, label), value)
	}
}

func (lr lineRenderer) style(s lipgloss.Style, text string) string {
	if !lr.styled {
		return text
	}
	return s.Render(text)
}

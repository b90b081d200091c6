package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/you-not-fish/teya/internal/syntax"
)

// styles colours tree dumps and diagnostics written to one stream.
type styles struct {
	enabled bool
	labels  map[syntax.Paint]lipgloss.Style
	diag    lipgloss.Style
}

// newStyles returns the styles for w. In "auto" mode colour is used only
// when w is a terminal; "always" forces ANSI colours and "never"
// disables them.
func newStyles(w io.Writer, mode string) *styles {
	if mode == "never" {
		return &styles{}
	}
	r := lipgloss.NewRenderer(w)
	if mode == "always" {
		r.SetColorProfile(termenv.ANSI)
	}
	if r.ColorProfile() == termenv.Ascii {
		return &styles{}
	}
	return &styles{
		enabled: true,
		labels: map[syntax.Paint]lipgloss.Style{
			syntax.PaintNode:   r.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
			syntax.PaintToken:  r.NewStyle().Foreground(lipgloss.Color("10")),
			syntax.PaintTrivia: r.NewStyle().Foreground(lipgloss.Color("8")),
			syntax.PaintError:  r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			syntax.PaintSpan:   r.NewStyle().Foreground(lipgloss.Color("6")),
		},
		diag: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// paint is a syntax.Printer paint function, or nil without colour.
func (s *styles) paint() func(syntax.Paint, string) string {
	if !s.enabled {
		return nil
	}
	return func(what syntax.Paint, text string) string {
		return s.labels[what].Render(text)
	}
}

// diagnostic renders one error message.
func (s *styles) diagnostic(msg string) string {
	if !s.enabled {
		return msg
	}
	return s.diag.Render(msg)
}

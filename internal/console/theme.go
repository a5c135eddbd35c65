// Package console styles the demo output.
package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
}

// DefaultTheme is used on terminals. lipgloss drops the styling when stdout is not a TTY.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Body:     lipgloss.NewStyle(),
	}
}

// Plain renders text unchanged; tests use it for exact output.
func Plain() Theme {
	return Theme{
		Title:    lipgloss.NewStyle(),
		Subtitle: lipgloss.NewStyle(),
		Body:     lipgloss.NewStyle(),
	}
}

// Section renders a section heading.
func (t Theme) Section(title string) string {
	return render(t.Title, "== "+title+" ==")
}

// Note renders secondary text.
func (t Theme) Note(s string) string { return render(t.Subtitle, s) }

// Line renders body text.
func (t Theme) Line(s string) string { return render(t.Body, s) }

// render styles each line on its own; lipgloss pads multi-line blocks to the
// widest line otherwise.
func render(st lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = st.Render(l)
	}
	return strings.Join(lines, "\n")
}

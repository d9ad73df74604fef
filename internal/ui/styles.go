package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// CompletedIcon marks completed entries in rows.
const CompletedIcon = "✔"

// Styles holds the lipgloss styles used for entry output.
type Styles struct {
	Arrow     lipgloss.Style
	Name      lipgloss.Style
	Completed lipgloss.Style
	Created   lipgloss.Style
	Label     lipgloss.Style
	Muted     lipgloss.Style
}

// NewStyles builds styles bound to w. When color is false every style
// renders its input unchanged.
func NewStyles(w io.Writer, color bool) Styles {
	renderer := lipgloss.NewRenderer(w)
	if color {
		renderer.SetColorProfile(termenv.ANSI256)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return Styles{
		Arrow:     renderer.NewStyle().Foreground(lipgloss.Color("2")),
		Name:      renderer.NewStyle().Foreground(lipgloss.Color("14")),
		Completed: renderer.NewStyle().Foreground(lipgloss.Color("2")),
		Created:   renderer.NewStyle().Foreground(lipgloss.Color("12")),
		Label:     renderer.NewStyle().Bold(true),
		Muted:     renderer.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

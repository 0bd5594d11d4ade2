package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Emerald
	colorAccent  = lipgloss.Color("#F59E0B") // Amber
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorText    = lipgloss.Color("#F8FAFC") // Slate 50
)

type styles struct {
	location lipgloss.Style
	severity lipgloss.Style
	message  lipgloss.Style
	gutter   lipgloss.Style
	caret    lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		location: r.NewStyle().
			Bold(true),
		severity: r.NewStyle().
			Foreground(colorError).
			Bold(true),
		message: r.NewStyle().
			Foreground(colorText),
		gutter: r.NewStyle().
			Foreground(colorMuted),
		caret: r.NewStyle().
			Foreground(colorAccent).
			Bold(true),
		success: r.NewStyle().
			Foreground(colorSuccess).
			Bold(true),
		failure: r.NewStyle().
			Foreground(colorError),
	}
}

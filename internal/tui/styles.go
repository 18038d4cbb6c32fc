package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/deskcalc/internal/config"
)

const (
	// buttonWidth is the inner width of a keypad button.
	buttonWidth = 5
	// buttonGap is the number of columns between buttons.
	buttonGap = 1
)

type styles struct {
	display  lipgloss.Style
	button   lipgloss.Style
	operator lipgloss.Style
	focused  lipgloss.Style
	status   lipgloss.Style
	errText  lipgloss.Style
}

func newStyles(t config.Theme) styles {
	button := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Button)).
		MarginRight(buttonGap)
	// The display spans the grid minus the trailing gap and its own border.
	gridWidth := KeypadWidth()
	return styles{
		display: lipgloss.NewStyle().
			Width(gridWidth-buttonGap-2).
			Align(lipgloss.Right).
			Bold(true).
			Foreground(lipgloss.Color(t.Display)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)),
		button:   button,
		operator: button.Foreground(lipgloss.Color(t.Operator)).Bold(true),
		focused:  button.BorderForeground(lipgloss.Color(t.Accent)).Foreground(lipgloss.Color(t.Accent)).Bold(true),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Button)),
		errText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)),
	}
}

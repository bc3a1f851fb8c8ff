package tui

import (
	"salon/internal/session"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	Title      lipgloss.Style
	Section    lipgloss.Style
	Weekday    lipgloss.Style
	Selectable lipgloss.Style
	Disabled   lipgloss.Style
	Cursor     lipgloss.Style
	Chosen     lipgloss.Style
	Muted      lipgloss.Style
	Busy       lipgloss.Style
	Info       lipgloss.Style
	Success    lipgloss.Style
	Error      lipgloss.Style
	Panel      lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F5C2E7")),
		Section:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89B4FA")).MarginTop(1),
		Weekday:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")).Width(4).Align(lipgloss.Right),
		Selectable: lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")).Width(4).Align(lipgloss.Right),
		Disabled:   lipgloss.NewStyle().Foreground(lipgloss.Color("#45475A")).Width(4).Align(lipgloss.Right),
		Cursor:     lipgloss.NewStyle().Reverse(true).Width(4).Align(lipgloss.Right),
		Chosen:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF")),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Busy:       lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		Info:       lipgloss.NewStyle().Foreground(lipgloss.Color("#CDD6F4")),
		Success:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
		Error:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
		Panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#585B70")).Padding(0, 1),
	}
}

func (s styles) status(st session.Status) string {
	if st.Message == "" {
		return ""
	}

	switch st.Level {
	case session.LevelBusy:
		return s.Busy.Render(st.Message)
	case session.LevelSuccess:
		return s.Success.Render(st.Message)
	case session.LevelError:
		return s.Error.Render(st.Message)
	default:
		return s.Info.Render(st.Message)
	}
}

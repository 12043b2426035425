package tui

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.Color("#F28C28")
	muted   = lipgloss.Color("241")
)

type styles struct {
	title    lipgloss.Style
	label    lipgloss.Style
	selector lipgloss.Style
	focused  lipgloss.Style
	status   lipgloss.Style
	help     lipgloss.Style
	empty    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1),
		label:    lipgloss.NewStyle().Foreground(muted),
		selector: lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(muted),
		focused:  lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(primary).Bold(true),
		status:   lipgloss.NewStyle().Foreground(muted).Italic(true),
		help:     lipgloss.NewStyle().Foreground(muted).MarginTop(1),
		empty:    lipgloss.NewStyle().Foreground(muted).Padding(1, 2),
	}
}

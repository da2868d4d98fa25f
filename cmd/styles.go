package cmd

import "charm.land/lipgloss/v2"

var (
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	revealStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#14B8A6"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	valueStyle   = lipgloss.NewStyle().Bold(true)
)

package ui

import "github.com/charmbracelet/lipgloss"

// Color palette: default terminal foreground for primary text, one accent for
// paths and ids, muted gray for secondary info. Status is conveyed with
// unicode symbols, not color.
var (
	// Accent style for file paths, entity ids, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#7AA2F7"))

	// Muted style for secondary info and hints
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)
)

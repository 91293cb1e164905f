package ui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	divider  lipgloss.Style
	row      lipgloss.Style
	button   lipgloss.Style
	disabled lipgloss.Style
	status   lipgloss.Style
	failure  lipgloss.Style
	footer   lipgloss.Style
	mapFrame lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Padding(1, 2),
		divider:  lipgloss.NewStyle().Foreground(lipgloss.Color("#0000FF")),
		row:      lipgloss.NewStyle().Padding(0, 2),
		button:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#0A84FF")).Padding(0, 2).Margin(1, 1, 0),
		disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("#8E8E93")).Background(lipgloss.Color("#3A3A3C")).Padding(0, 2).Margin(1, 1, 0),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#AD8CFF")).Padding(0, 1),
		failure:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF453A")).Padding(0, 1),
		footer:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8E8E93")).Padding(0, 1),
		mapFrame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
	}
}

package calview

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	day        lipgloss.Style
	outOfMonth lipgloss.Style
	today      lipgloss.Style
	booked     lipgloss.Style
	hourLabel  lipgloss.Style
	slot       lipgloss.Style
	slotFull   lipgloss.Style
	empty      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		day:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		outOfMonth: lipgloss.NewStyle().Faint(true),
		today:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		booked:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		hourLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		slot:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		slotFull:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		empty:      lipgloss.NewStyle().Faint(true),
	}
}

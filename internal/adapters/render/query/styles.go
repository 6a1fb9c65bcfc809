package query

import "github.com/charmbracelet/lipgloss"

type styles struct {
	label   lipgloss.Style
	value   lipgloss.Style
	secret  lipgloss.Style
	ok      lipgloss.Style
	fail    lipgloss.Style
	unsure  lipgloss.Style
	muted   lipgloss.Style
	section lipgloss.Style
}

func newStyles() styles {
	return styles{
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		value:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		secret:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		ok:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		fail:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		unsure:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		muted:   lipgloss.NewStyle().Faint(true),
		section: lipgloss.NewStyle().MarginTop(1),
	}
}

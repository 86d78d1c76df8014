package calculator

import "github.com/charmbracelet/lipgloss"

var (
	Cyan    = lipgloss.Color("#00E5FF")
	Magenta = lipgloss.Color("#FF1B6B")
	Green   = lipgloss.Color("#2AFFAA")
	Muted   = lipgloss.Color("#6C7280")
	Text    = lipgloss.Color("#ECEFF4")
)

// tierColors follows the package order of the landing page.
var tierColors = []lipgloss.Color{
	lipgloss.Color("#F59E0B"), // spark
	lipgloss.Color("#EF4444"), // ignite
	lipgloss.Color("#3B82F6"), // surge
	lipgloss.Color("#8B5CF6"), // titan
	lipgloss.Color("#2AFFAA"), // supreme
}

func tierColor(i int) lipgloss.Color {
	if len(tierColors) == 0 {
		return Cyan
	}
	return tierColors[i%len(tierColors)]
}

type styles struct {
	title    lipgloss.Style
	label    lipgloss.Style
	muted    lipgloss.Style
	item     lipgloss.Style
	estimate lipgloss.Style
	box      lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title: lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true).
			MarginBottom(1),
		label: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),
		muted: lipgloss.NewStyle().
			Foreground(Muted),
		item: lipgloss.NewStyle().
			Foreground(Text).
			Padding(0, 1),
		estimate: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true).
			Padding(0, 1),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Magenta).
			Padding(1, 2),
	}
}

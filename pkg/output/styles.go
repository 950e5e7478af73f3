package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/iwvelando/youth-budget/internal/budget"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
	ColorYellow    = lipgloss.Color("#D0A215")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	costStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGreen)

	detailStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// severityStyles mirror the red/yellow/blue panels of the original form.
var severityStyles = map[budget.Severity]lipgloss.Style{
	budget.SeverityRequired: lipgloss.NewStyle().Bold(true).Foreground(ColorRed),
	budget.SeverityWarning:  lipgloss.NewStyle().Bold(true).Foreground(ColorYellow),
	budget.SeverityInfo:     lipgloss.NewStyle().Bold(true).Foreground(ColorBlue),
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

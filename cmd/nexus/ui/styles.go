package ui

import "github.com/charmbracelet/lipgloss"

// Brand palette. Accent matches the product's indigo.
var (
	accentColor = lipgloss.Color("#5A31F4")
	subtleColor = lipgloss.Color("240")
	errorColor  = lipgloss.Color("#EF4444")
	okColor     = lipgloss.Color("#22C55E")
	warnColor   = lipgloss.Color("#F59E0B")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	taglineStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			Italic(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtleColor).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(accentColor)

	priceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(okColor)

	storeStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	ratingStyle = lipgloss.NewStyle().
			Foreground(warnColor)

	errStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(warnColor).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	chatUserStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	chatBotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette using standard terminal colors for better compatibility
var (
	primaryColor   = lipgloss.Color("14") // Bright Cyan
	secondaryColor = lipgloss.Color("12") // Bright Blue
	accentColor    = lipgloss.Color("10") // Bright Green
	errorColor     = lipgloss.Color("9")  // Bright Red

	bgDark    = lipgloss.Color("235")
	bgLighter = lipgloss.Color("241")

	textSecondary = lipgloss.Color("7")
	textMuted     = lipgloss.Color("8")
)

var (
	// Base message card style
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(bgLighter).
			Padding(0, 2).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			MarginRight(1)

	noticeStyle = lipgloss.NewStyle().
			Foreground(textMuted).
			Italic(true).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	statusBarStyle = lipgloss.NewStyle().
			Background(bgDark).
			Foreground(textSecondary).
			Padding(0, 1)

	statusItemStyle = lipgloss.NewStyle().
			Foreground(textMuted).
			MarginRight(2)

	selectorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	welcomeStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)
)

// Message icons
const (
	userIcon      = "👤"
	assistantIcon = "🤖"
)

package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the console uses.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent = colorPink
	colorFocus  = colorLavender
	colorMuted  = colorOverlay1
)

var (
	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorBase).Background(colorAccent).Padding(0, 1)
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle       = lipgloss.NewStyle().Foreground(colorMuted)
	summaryStyle     = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0).Padding(0, 1)
	cursorStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorFocus)
	errorStyle       = lipgloss.NewStyle().Foreground(colorRed)
	buttonStyle      = lipgloss.NewStyle().Padding(0, 2).Foreground(colorText).Background(colorSurface0)
	buttonFocusStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(colorBase).Background(colorFocus)
	footerStyle      = lipgloss.NewStyle().Background(colorMantle)
)

var noticeStyles = map[NoticeLevel]lipgloss.Style{
	LevelInfo:    lipgloss.NewStyle().Foreground(colorTeal),
	LevelSuccess: lipgloss.NewStyle().Foreground(colorGreen),
	LevelWarning: lipgloss.NewStyle().Foreground(colorYellow),
	LevelError:   lipgloss.NewStyle().Bold(true).Foreground(colorRed),
}

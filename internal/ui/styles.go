package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors (ANSI 256 indexes)
const (
	ColorBackground = "234"
	ColorPanel      = "235"
	ColorText       = "252"
	ColorMuted      = "244"
	ColorAccent     = "86"  // Cyan/green - selected tab, keys
	ColorHighlight  = "205" // Magenta - selected rows, cursor
	ColorDate       = "179"
	ColorStatusFg   = "236"
	ColorStatusBg   = "232"
)

// Theme holds every style the frame composer uses.
type Theme struct {
	Root            lipgloss.Style // whole frame background
	Middle          lipgloss.Style // bordered boxes: tab content, popup, event log
	Tabs            lipgloss.Style // unselected tab titles
	TabsSelected    lipgloss.Style
	Key             lipgloss.Style // status bar key names
	KeyDesc         lipgloss.Style // status bar key descriptions
	Date            lipgloss.Style
	MessageSelected lipgloss.Style // highlighted row and the prompt text
	Cursor          lipgloss.Style
	StatusBar       lipgloss.Style
}

// DefaultTheme returns the dashboard's dark theme.
func DefaultTheme() Theme {
	return Theme{
		Root: lipgloss.NewStyle().
			Background(lipgloss.Color(ColorBackground)),
		Middle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorText)).
			Background(lipgloss.Color(ColorPanel)),
		Tabs: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorMuted)).
			Background(lipgloss.Color(ColorBackground)),
		TabsSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorBackground)).
			Background(lipgloss.Color(ColorAccent)),
		Key: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccent)),
		KeyDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorText)),
		Date: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDate)),
		MessageSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorHighlight)),
		Cursor: lipgloss.NewStyle().
			Reverse(true),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorStatusFg)).
			Background(lipgloss.Color(ColorStatusBg)),
	}
}

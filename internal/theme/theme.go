package theme

import "github.com/charmbracelet/lipgloss"

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for the top application title bar.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// DayButtonStyle frames one split day in the day grid.
var DayButtonStyle = lipgloss.NewStyle().
	Padding(0, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// DayButtonFocusedStyle highlights the day under the cursor.
var DayButtonFocusedStyle = DayButtonStyle.
	Bold(true).
	Foreground(ColorBlue).
	BorderForeground(ColorBlue)

// CardStyle frames a collapsed exercise card.
var CardStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// CardFocusedStyle highlights the exercise card under the cursor.
var CardFocusedStyle = CardStyle.
	BorderForeground(ColorBlue)

// CardTitleStyle renders the exercise name on a card.
var CardTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite)

// UpgradeStyle marks an exercise whose last entry maxed out both sets,
// meaning the weight should go up next session.
var UpgradeStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorGreen)

// NoDataStyle renders the "No data" placeholder on a card.
var NoDataStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// SelectedRowStyle highlights the focused history or nutrition log row.
var SelectedRowStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorBlue)

// ErrorStyle renders inline validation messages.
var ErrorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorRed)

// HelpStyle is used for keyboard shortcut hints and secondary text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// PanelStyle wraps an expanded card's add form or history table.
var PanelStyle = lipgloss.NewStyle().
	Padding(0, 2)

// MacroStyle color-codes a consumed-vs-target figure: green while under
// the daily quota, red once over it.
func MacroStyle(consumed, quota float64) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	if quota > 0 && consumed > quota {
		return base.Foreground(ColorRed)
	}
	return base.Foreground(ColorGreen)
}

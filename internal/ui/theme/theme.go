package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: dark scanner console with a few signal colors.
var (
	Primary   = lipgloss.Color("#22D3EE") // Cyan
	Secondary = lipgloss.Color("#A78BFA") // Violet
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#34D399") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Glitch    = lipgloss.Color("#E11D48") // Crimson
	Text      = lipgloss.Color("#E2E8F0") // Light slate
	TextDim   = lipgloss.Color("#64748B") // Slate
	BgDark    = lipgloss.Color("#020617") // Near black
	BgCard    = lipgloss.Color("#0F172A") // Navy
	Border    = lipgloss.Color("#1E293B") // Dark slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Warning = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Done = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Locked = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)

// Highlight returns the accent used for a frame: crimson in glitch mode,
// cyan otherwise.
func Highlight(glitch bool) lipgloss.Style {
	if glitch {
		return lipgloss.NewStyle().Foreground(Glitch).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(Primary).Bold(true)
}

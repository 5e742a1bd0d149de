package theme

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizmastery/internal/mastery"
)

// Base palette
var (
	Primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
)

// Mastery tiers
var (
	Gold  = lipgloss.Color(mastery.TierGold.Hex())
	Green = lipgloss.Color(mastery.TierGreen.Hex())
	Amber = lipgloss.Color(mastery.TierAmber.Hex())
	Red   = lipgloss.Color(mastery.TierRed.Hex())
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Label = lipgloss.NewStyle().
		Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// TierColor returns the palette color of a mastery tier.
func TierColor(t mastery.ColorTier) color.Color {
	switch t {
	case mastery.TierGold:
		return Gold
	case mastery.TierGreen:
		return Green
	case mastery.TierAmber:
		return Amber
	default:
		return Red
	}
}

// LevelStyle colors text by the tier of level.
func LevelStyle(level int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(TierColor(mastery.MasteryColor(level))).
		Bold(true)
}

// LevelBadge renders "Lv N Name" in the level's tier color.
func LevelBadge(level int) string {
	return LevelStyle(level).Render(fmt.Sprintf("Lv %d %s", level, mastery.LevelName(level)))
}

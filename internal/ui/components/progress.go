package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizmastery/internal/mastery"
	"github.com/abhisek/quizmastery/internal/ui/theme"
)

// LevelBar shows how far points have come between the current level's
// threshold and the next one.
type LevelBar struct {
	Points int
	Width  int
}

// NewLevelBar creates a level bar.
func NewLevelBar(points, width int) LevelBar {
	return LevelBar{Points: points, Width: width}
}

// Fraction returns progress through the current level in [0, 1].
// It is 1 at the top level.
func (b LevelBar) Fraction() float64 {
	lvl := mastery.Level(b.Points)
	if lvl >= mastery.MaxLevel {
		return 1
	}
	lo := mastery.Thresholds[lvl]
	hi := mastery.Thresholds[lvl+1]
	return float64(max(b.Points, 0)-lo) / float64(hi-lo)
}

// View renders the bar followed by the points remaining to the next level.
func (b LevelBar) View() string {
	lvl := mastery.Level(b.Points)

	barWidth := max(b.Width, 4)
	filled := min(max(int(float64(barWidth)*b.Fraction()), 0), barWidth)
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(theme.TierColor(mastery.MasteryColor(lvl))).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	suffix := "max level"
	if next := mastery.PointsToNext(b.Points); next > 0 {
		suffix = fmt.Sprintf("%d to next", next)
	}

	return filledStr + emptyStr + theme.Label.Render("  "+suffix)
}

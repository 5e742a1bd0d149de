package theme

import (
	"strings"
	"testing"

	"github.com/abhisek/quizmastery/internal/mastery"
)

func TestTierColor(t *testing.T) {
	tests := []struct {
		tier mastery.ColorTier
		want any
	}{
		{mastery.TierGold, Gold},
		{mastery.TierGreen, Green},
		{mastery.TierAmber, Amber},
		{mastery.TierRed, Red},
		{mastery.ColorTier("unknown"), Red},
	}
	for _, tt := range tests {
		if got := TierColor(tt.tier); got != tt.want {
			t.Errorf("TierColor(%q) = %v, want %v", tt.tier, got, tt.want)
		}
	}
}

func TestLevelBadge(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "Lv 0 Starting"},
		{4, "Lv 4 Competent"},
		{10, "Lv 10 Complete Mastery"},
	}
	for _, tt := range tests {
		if got := LevelBadge(tt.level); !strings.Contains(got, tt.want) {
			t.Errorf("LevelBadge(%d) = %q, want it to contain %q", tt.level, got, tt.want)
		}
	}
}

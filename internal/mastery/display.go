package mastery

// ColorTier is the display band a mastery level falls into.
type ColorTier string

const (
	TierGold  ColorTier = "gold"
	TierGreen ColorTier = "green"
	TierAmber ColorTier = "amber"
	TierRed   ColorTier = "red"
)

// MasteryColor maps a level to its color tier.
func MasteryColor(level int) ColorTier {
	switch {
	case level >= 9:
		return TierGold
	case level >= 6:
		return TierGreen
	case level >= 3:
		return TierAmber
	default:
		return TierRed
	}
}

// Hex returns the tier's color as a CSS hex string.
func (t ColorTier) Hex() string {
	switch t {
	case TierGold:
		return "#a855f7"
	case TierGreen:
		return "#059669"
	case TierAmber:
		return "#f59e0b"
	default:
		return "#ef4444"
	}
}

// Class returns the tier's CSS class name.
func (t ColorTier) Class() string {
	switch t {
	case TierGold:
		return "mastery-gold"
	case TierGreen:
		return "mastery-green"
	case TierAmber:
		return "mastery-yellow"
	default:
		return "mastery-red"
	}
}

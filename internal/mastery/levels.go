package mastery

// Thresholds holds the points required for each level; the index is the level.
var Thresholds = [...]int{0, 2, 6, 12, 20, 30, 40, 50, 60, 70, 80}

// MaxLevel is the highest reachable level.
const MaxLevel = len(Thresholds) - 1

var levelNames = [...]string{
	"Starting",
	"Beginner",
	"Familiar",
	"Developing",
	"Competent",
	"Proficient",
	"Advanced",
	"Expert",
	"Master",
	"Elite",
	"Complete Mastery",
}

// Level returns the highest level whose threshold points reaches.
func Level(points int) int {
	for i := MaxLevel; i > 0; i-- {
		if points >= Thresholds[i] {
			return i
		}
	}
	return 0
}

// LevelName returns the display name of a level, or "Unknown" if out of range.
func LevelName(level int) string {
	if level < 0 || level > MaxLevel {
		return "Unknown"
	}
	return levelNames[level]
}

// PointsForLevel returns the threshold of level, or 0 if out of range.
func PointsForLevel(level int) int {
	if level < 0 || level > MaxLevel {
		return 0
	}
	return Thresholds[level]
}

// PointsToNext returns how many more points reach the next level.
// It is 0 at MaxLevel.
func PointsToNext(points int) int {
	lvl := Level(points)
	if lvl >= MaxLevel {
		return 0
	}
	return Thresholds[lvl+1] - points
}

// SetPoints converts one set's score into points:
// >=90% earns 3, >=80% earns 2, >=70% earns 1, anything lower earns 0.
func SetPoints(correct, total int) int {
	if total <= 0 {
		return 0
	}
	// Integer comparison keeps exact breakpoints exact (9/10 is 90%, not 89.999%).
	pct100 := correct * 100
	switch {
	case pct100 >= 90*total:
		return 3
	case pct100 >= 80*total:
		return 2
	case pct100 >= 70*total:
		return 1
	default:
		return 0
	}
}

// Percent returns part/whole as a whole percentage, rounding halves up.
// A zero whole yields 0.
func Percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return (200*part + whole) / (2 * whole)
}

package scoring

// LevelBreakpoint pairs a proficiency level with the cumulative star count
// required to reach it.
type LevelBreakpoint struct {
	Level         int
	StarsRequired int
}

// LevelFromStars returns the highest level whose star requirement is met by
// totalStars. Breakpoints may arrive in any order; an empty list means the
// learner is at level 1. Meeting a requirement exactly counts.
func LevelFromStars(totalStars int, breakpoints []LevelBreakpoint) int {
	level := 1
	for _, bp := range breakpoints {
		if totalStars >= bp.StarsRequired && bp.Level > level {
			level = bp.Level
		}
	}
	return level
}

// MeetsThreshold reports whether value has reached threshold. Kept as a
// named function so level-up checks read the same everywhere.
func MeetsThreshold(value, threshold float64) bool {
	return value >= threshold
}

// ProgressPercent returns part as a percentage of whole, clamped to
// [0, 100]. A zero whole yields 0, never a division error.
func ProgressPercent(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	pct := part / whole * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

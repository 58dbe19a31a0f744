// Package progression implements the weakest-link level unlock rule: the
// level unlocked across all themes is gated by the least-advanced theme,
// so a learner cannot race ahead in one theme while ignoring the rest.
package progression

import (
	"github.com/lernbox/lernbox/internal/scoring"
	"github.com/lernbox/lernbox/internal/stats"
)

// MaxThemeLevel is the highest level a theme can reach.
const MaxThemeLevel = 4

// GlobalLevel returns the level unlocked across all themes: the minimum
// completed level over every known theme (themes never started count as 0)
// plus one, capped at MaxThemeLevel. With no known themes the global
// level is 1.
func GlobalLevel(themeLevels map[string]int, themeIDs []string) int {
	if len(themeIDs) == 0 {
		return 1
	}
	min := MaxThemeLevel
	for _, id := range themeIDs {
		if lvl := themeLevels[id]; lvl < min {
			min = lvl
		}
	}
	level := min + 1
	if level > MaxThemeLevel {
		return MaxThemeLevel
	}
	return level
}

// AccessibleLevel returns the highest level the learner may enter in the
// given theme. Two gates apply at once: a theme never opens more than one
// level past its own completion, and never past the global level.
func AccessibleLevel(themeID string, themeLevels map[string]int, themeIDs []string) int {
	own := themeLevels[themeID] + 1
	global := GlobalLevel(themeLevels, themeIDs)
	if own < global {
		return own
	}
	return global
}

// IsAccessible reports whether the (theme, level) pair may be entered.
func IsAccessible(themeID string, level int, themeLevels map[string]int, themeIDs []string) bool {
	return level <= AccessibleLevel(themeID, themeLevels, themeIDs)
}

// IsCompleted reports whether the level is completed in the theme.
// Completion is theme-local; the global gate plays no part here.
func IsCompleted(themeID string, level int, themeLevels map[string]int) bool {
	return level <= themeLevels[themeID]
}

// DeriveThemeLevels computes the completed level per theme from the result
// history: the per-theme star total folded through the level breakpoints.
// Themes without results sit at level 0 (never started); a level-1
// breakpoint requirement that is not yet met also reports 0.
func DeriveThemeLevels(results []stats.Result, themeIDs []string, breakpoints []scoring.LevelBreakpoint) map[string]int {
	starsByTheme := make(map[string]int, len(themeIDs))
	for i := range results {
		r := &results[i]
		if err := r.Validate(); err != nil || !r.Correct {
			continue
		}
		s, _ := scoring.StarRating(r.Attempts)
		starsByTheme[r.ThemeID] += s
	}

	levels := make(map[string]int, len(themeIDs))
	for _, id := range themeIDs {
		stars, ok := starsByTheme[id]
		if !ok {
			levels[id] = 0
			continue
		}
		levels[id] = completedLevel(stars, breakpoints)
	}
	return levels
}

// completedLevel is LevelFromStars with a floor of 0: a started theme that
// has not met any breakpoint has completed nothing yet.
func completedLevel(stars int, breakpoints []scoring.LevelBreakpoint) int {
	level := 0
	for _, bp := range breakpoints {
		if stars >= bp.StarsRequired && bp.Level > level {
			level = bp.Level
		}
	}
	if level > MaxThemeLevel {
		return MaxThemeLevel
	}
	return level
}

package progression

import "github.com/lernbox/lernbox/internal/scoring"

// DefaultBreakpoints maps cumulative theme stars to the highest completed
// level within that theme. A learner who collects 10 stars in a theme has
// finished its level 1, and so on.
func DefaultBreakpoints() []scoring.LevelBreakpoint {
	return []scoring.LevelBreakpoint{
		{Level: 1, StarsRequired: 10},
		{Level: 2, StarsRequired: 24},
		{Level: 3, StarsRequired: 42},
		{Level: 4, StarsRequired: 64},
	}
}

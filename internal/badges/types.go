package badges

// BadgeType identifies the category of badge.
type BadgeType string

const (
	BadgeMilestone BadgeType = "milestone"
	BadgeStars     BadgeType = "stars"
	BadgeTheme     BadgeType = "theme"
	BadgeLevel     BadgeType = "level"
	BadgeSession   BadgeType = "session"
)

// AllBadgeTypes returns all badge types in display order.
func AllBadgeTypes() []BadgeType {
	return []BadgeType{BadgeMilestone, BadgeStars, BadgeTheme, BadgeLevel, BadgeSession}
}

// DisplayName returns a human-readable label for the badge type.
func (t BadgeType) DisplayName() string {
	switch t {
	case BadgeMilestone:
		return "Milestones"
	case BadgeStars:
		return "Stars"
	case BadgeTheme:
		return "Themes"
	case BadgeLevel:
		return "Levels"
	case BadgeSession:
		return "Sessions"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the badge type.
func (t BadgeType) Icon() string {
	switch t {
	case BadgeMilestone:
		return "🎯"
	case BadgeStars:
		return "⭐"
	case BadgeTheme:
		return "🗺️"
	case BadgeLevel:
		return "🚀"
	case BadgeSession:
		return "🏆"
	default:
		return "✦"
	}
}

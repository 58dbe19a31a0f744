package badges

import "fmt"

// Def defines a single badge.
type Def struct {
	Name        string
	Description string
	Type        BadgeType
	Rarity      Rarity
}

// Defs maps badge keys to their definitions. Theme and level badge keys
// are derived with ThemeBadgeKey and LevelBadgeKey.
var Defs = map[string]Def{
	"first_session":  {Name: "First Steps", Description: "Finish your first session", Type: BadgeMilestone, Rarity: RarityCommon},
	"sessions_10":    {Name: "Regular", Description: "Finish 10 sessions", Type: BadgeMilestone, Rarity: RarityRare},
	"sessions_50":    {Name: "Dedicated", Description: "Finish 50 sessions", Type: BadgeMilestone, Rarity: RarityEpic},
	"sessions_200":   {Name: "Unstoppable", Description: "Finish 200 sessions", Type: BadgeMilestone, Rarity: RarityLegendary},
	"exercises_50":   {Name: "Half Century", Description: "Solve 50 exercises", Type: BadgeMilestone, Rarity: RarityCommon},
	"exercises_250":  {Name: "Scholar", Description: "Solve 250 exercises", Type: BadgeMilestone, Rarity: RarityRare},
	"exercises_1000": {Name: "Expert", Description: "Solve 1000 exercises", Type: BadgeMilestone, Rarity: RarityEpic},
	"stars_25":       {Name: "Star Gazer", Description: "Collect 25 stars", Type: BadgeStars, Rarity: RarityCommon},
	"stars_100":      {Name: "Star Collector", Description: "Collect 100 stars", Type: BadgeStars, Rarity: RarityRare},
	"stars_300":      {Name: "Constellation", Description: "Collect 300 stars", Type: BadgeStars, Rarity: RarityEpic},
	"stars_1000":     {Name: "Supernova", Description: "Collect 1000 stars", Type: BadgeStars, Rarity: RarityLegendary},
	"perfect_1":      {Name: "Flawless", Description: "First perfect session", Type: BadgeSession, Rarity: RarityRare},
	"perfect_10":     {Name: "Perfectionist", Description: "10 perfect sessions", Type: BadgeSession, Rarity: RarityEpic},
}

// ThemeBadgeKey returns the key for completing every level of a theme.
func ThemeBadgeKey(themeID string) string {
	return "theme_complete_" + themeID
}

// LevelBadgeKey returns the key for reaching a global level.
func LevelBadgeKey(level int) string {
	return fmt.Sprintf("level_%d", level)
}

// Lookup resolves a badge key to its definition. Derived theme and level
// keys resolve to synthesized definitions.
func Lookup(key string) (Def, bool) {
	if def, ok := Defs[key]; ok {
		return def, true
	}
	var themeID string
	if _, err := fmt.Sscanf(key, "theme_complete_%s", &themeID); err == nil && themeID != "" {
		return Def{
			Name:        "Theme Champion",
			Description: fmt.Sprintf("Complete every level of %s", themeID),
			Type:        BadgeTheme,
			Rarity:      RarityEpic,
		}, true
	}
	var level int
	if _, err := fmt.Sscanf(key, "level_%d", &level); err == nil && level > 0 {
		return Def{
			Name:        fmt.Sprintf("Level %d", level),
			Description: fmt.Sprintf("Reach level %d everywhere", level),
			Type:        BadgeLevel,
			Rarity:      LevelRarity(level),
		}, true
	}
	return Def{}, false
}

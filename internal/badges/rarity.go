package badges

// Rarity represents the difficulty tier of a badge.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns all rarities in order from lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return string(r)
	}
}

// SessionRarity returns the rarity for a completed session with the given
// accuracy percentage (0-100).
func SessionRarity(accuracy float64) Rarity {
	switch {
	case accuracy >= 90:
		return RarityLegendary
	case accuracy >= 75:
		return RarityEpic
	case accuracy >= 50:
		return RarityRare
	default:
		return RarityCommon
	}
}

// LevelRarity returns the rarity for reaching a global level.
func LevelRarity(level int) Rarity {
	switch {
	case level >= 4:
		return RarityLegendary
	case level >= 3:
		return RarityEpic
	case level >= 2:
		return RarityRare
	default:
		return RarityCommon
	}
}

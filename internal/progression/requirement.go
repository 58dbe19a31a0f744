package progression

import (
	"fmt"
	"sort"
	"strings"
)

// NextUnlockRequirement describes which themes must advance before the
// global level rises. The second return is false when the global level is
// already at MaxThemeLevel and nothing further can unlock.
func NextUnlockRequirement(themeLevels map[string]int, themeIDs []string, themeNames map[string]string) (string, bool) {
	global := GlobalLevel(themeLevels, themeIDs)
	if global >= MaxThemeLevel {
		return "", false
	}

	// Themes whose completed level is below the current global target.
	target := global
	var lagging []string
	for _, id := range themeIDs {
		if themeLevels[id] < target {
			lagging = append(lagging, displayName(id, themeNames))
		}
	}
	if len(lagging) == 0 {
		return "", false
	}
	sort.Strings(lagging)

	return fmt.Sprintf("Finish level %d in %s to unlock level %d everywhere.",
		target, joinNames(lagging), target+1), true
}

func displayName(id string, names map[string]string) string {
	if n, ok := names[id]; ok && n != "" {
		return n
	}
	return id
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

package catalog

import (
	"fmt"
	"strings"
)

// validateCatalog performs all structural checks on the given catalog.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(cat *Catalog) error {
	var errs []string

	areaSet := make(map[string]bool, len(cat.Areas))
	for _, a := range cat.Areas {
		if a.ID == "" {
			errs = append(errs, "area with empty ID")
			continue
		}
		if areaSet[a.ID] {
			errs = append(errs, fmt.Sprintf("duplicate area ID: %q", a.ID))
		}
		areaSet[a.ID] = true
		if a.Name == "" {
			errs = append(errs, fmt.Sprintf("area %q has no display name", a.ID))
		}
	}

	themeSet := make(map[string]bool, len(cat.Themes))
	usedAreas := make(map[string]bool)
	for _, t := range cat.Themes {
		if t.ID == "" {
			errs = append(errs, "theme with empty ID")
			continue
		}
		if themeSet[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate theme ID: %q", t.ID))
		}
		themeSet[t.ID] = true
		if t.Name == "" {
			errs = append(errs, fmt.Sprintf("theme %q has no display name", t.ID))
		}
		if !areaSet[t.AreaID] {
			errs = append(errs, fmt.Sprintf("theme %q references nonexistent area %q", t.ID, t.AreaID))
		}
		usedAreas[t.AreaID] = true
	}

	if len(cat.Themes) == 0 {
		errs = append(errs, "catalog has no themes")
	}

	for _, a := range cat.Areas {
		if !usedAreas[a.ID] {
			errs = append(errs, fmt.Sprintf("area %q has no themes", a.ID))
		}
	}

	prefixSet := make(map[string]bool, len(cat.ExerciseTypes))
	for _, et := range cat.ExerciseTypes {
		if et.Prefix == "" {
			errs = append(errs, "exercise type with empty prefix")
			continue
		}
		if strings.ContainsRune(et.Prefix, '-') {
			// The prefix is everything before the first separator, so a
			// separator inside the prefix can never round-trip.
			errs = append(errs, fmt.Sprintf("exercise type prefix %q contains a separator", et.Prefix))
		}
		if prefixSet[et.Prefix] {
			errs = append(errs, fmt.Sprintf("duplicate exercise type prefix: %q", et.Prefix))
		}
		prefixSet[et.Prefix] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

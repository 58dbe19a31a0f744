// Package catalog holds the static content catalog: areas, themes and
// exercise types. The catalog is the source of truth for the set of known
// theme identifiers that the progression engine gates on.
package catalog

// Area is a top-level skill category grouping exercises.
type Area struct {
	ID   string
	Name string
}

// Theme is one strand of progression within an area. Every theme runs
// through the same four levels.
type Theme struct {
	ID     string
	Name   string
	AreaID string
	Icon   string
}

// ExerciseType describes one kind of exercise. The Prefix is the leading
// segment of every exercise identifier of that type ("mc-add-1" → "mc")
// and doubles as the statistics grouping key.
type ExerciseType struct {
	Prefix string
	Name   string
}

// Catalog bundles the full content configuration.
type Catalog struct {
	Areas         []Area
	Themes        []Theme
	ExerciseTypes []ExerciseType
}

// c is the package-level catalog singleton, set by init() in seed.go.
var c *Catalog

// Themes returns all themes in display order.
func Themes() []Theme {
	out := make([]Theme, len(c.Themes))
	copy(out, c.Themes)
	return out
}

// ThemeIDs returns the identifiers of all known themes, in display order.
func ThemeIDs() []string {
	ids := make([]string, len(c.Themes))
	for i, t := range c.Themes {
		ids[i] = t.ID
	}
	return ids
}

// ThemeNames returns a map from theme identifier to display name.
func ThemeNames() map[string]string {
	names := make(map[string]string, len(c.Themes))
	for _, t := range c.Themes {
		names[t.ID] = t.Name
	}
	return names
}

// ThemeByID looks up a theme. The second return is false for unknown IDs.
func ThemeByID(id string) (Theme, bool) {
	for _, t := range c.Themes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// Areas returns all areas in display order.
func Areas() []Area {
	out := make([]Area, len(c.Areas))
	copy(out, c.Areas)
	return out
}

// AreaName returns the display name for an area, falling back to the ID.
func AreaName(id string) string {
	for _, a := range c.Areas {
		if a.ID == id {
			return a.Name
		}
	}
	return id
}

// TypeName returns the display name for an exercise type prefix, falling
// back to the prefix itself for unknown types.
func TypeName(prefix string) string {
	for _, et := range c.ExerciseTypes {
		if et.Prefix == prefix {
			return et.Name
		}
	}
	return prefix
}

// Validate checks the package catalog for structural issues.
func Validate() error {
	return validateCatalog(c)
}

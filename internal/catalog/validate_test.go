package catalog

import (
	"strings"
	"testing"
)

func validTestCatalog() *Catalog {
	return &Catalog{
		Areas: []Area{
			{ID: "math", Name: "Math"},
		},
		Themes: []Theme{
			{ID: "numbers", Name: "Numbers", AreaID: "math"},
		},
		ExerciseTypes: []ExerciseType{
			{Prefix: "mc", Name: "Multiple Choice"},
		},
	}
}

func TestSeedCatalogIsValid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Errorf("seed catalog invalid: %v", err)
	}
}

func TestValidateCatalog_Valid(t *testing.T) {
	if err := validateCatalog(validTestCatalog()); err != nil {
		t.Errorf("expected valid catalog, got: %v", err)
	}
}

func TestValidateCatalog_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Catalog)
		want   string
	}{
		{
			"duplicate theme",
			func(c *Catalog) { c.Themes = append(c.Themes, c.Themes[0]) },
			"duplicate theme ID",
		},
		{
			"dangling area reference",
			func(c *Catalog) { c.Themes[0].AreaID = "nope" },
			"nonexistent area",
		},
		{
			"no themes",
			func(c *Catalog) { c.Themes = nil },
			"no themes",
		},
		{
			"separator in type prefix",
			func(c *Catalog) { c.ExerciseTypes[0].Prefix = "multi-choice" },
			"contains a separator",
		},
		{
			"duplicate type prefix",
			func(c *Catalog) { c.ExerciseTypes = append(c.ExerciseTypes, c.ExerciseTypes[0]) },
			"duplicate exercise type prefix",
		},
		{
			"theme without name",
			func(c *Catalog) { c.Themes[0].Name = "" },
			"no display name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := validTestCatalog()
			tt.mutate(cat)
			err := validateCatalog(cat)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestThemeLookups(t *testing.T) {
	ids := ThemeIDs()
	if len(ids) == 0 {
		t.Fatal("no theme IDs")
	}

	names := ThemeNames()
	for _, id := range ids {
		th, ok := ThemeByID(id)
		if !ok {
			t.Errorf("ThemeByID(%q) not found", id)
			continue
		}
		if names[id] != th.Name {
			t.Errorf("ThemeNames()[%q] = %q, want %q", id, names[id], th.Name)
		}
	}

	if _, ok := ThemeByID("missing"); ok {
		t.Error("ThemeByID(missing) should not be found")
	}
}

func TestFallbackNames(t *testing.T) {
	if got := AreaName("unknown-area"); got != "unknown-area" {
		t.Errorf("AreaName fallback = %q", got)
	}
	if got := TypeName("zz"); got != "zz" {
		t.Errorf("TypeName fallback = %q", got)
	}
}

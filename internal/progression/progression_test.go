package progression

import (
	"testing"
	"time"

	"github.com/lernbox/lernbox/internal/scoring"
	"github.com/lernbox/lernbox/internal/stats"
)

var themes = []string{"numbers", "letters", "shapes"}

func TestGlobalLevel(t *testing.T) {
	tests := []struct {
		name   string
		levels map[string]int
		ids    []string
		want   int
	}{
		{"no themes", map[string]int{}, nil, 1},
		{"nothing started", map[string]int{}, themes, 1},
		{"weakest at 1", map[string]int{"numbers": 2, "letters": 1, "shapes": 3}, themes, 2},
		{"all equal", map[string]int{"numbers": 2, "letters": 2, "shapes": 2}, themes, 3},
		{"absent theme counts as 0", map[string]int{"numbers": 3, "letters": 3}, themes, 1},
		{"capped at max", map[string]int{"numbers": 4, "letters": 4, "shapes": 4}, themes, 4},
		{"above max stays capped", map[string]int{"numbers": 9, "letters": 9, "shapes": 9}, themes, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GlobalLevel(tt.levels, tt.ids); got != tt.want {
				t.Errorf("GlobalLevel(%v) = %d, want %d", tt.levels, got, tt.want)
			}
		})
	}
}

func TestAccessibleLevel(t *testing.T) {
	levels := map[string]int{"numbers": 3, "letters": 1, "shapes": 2}
	// global = min(3,1,2)+1 = 2

	tests := []struct {
		theme string
		want  int
	}{
		{"numbers", 2}, // own would allow 4, global caps at 2
		{"letters", 2}, // own completed+1 = 2
		{"shapes", 2},  // own would allow 3, global caps at 2
	}

	for _, tt := range tests {
		if got := AccessibleLevel(tt.theme, levels, themes); got != tt.want {
			t.Errorf("AccessibleLevel(%s) = %d, want %d", tt.theme, got, tt.want)
		}
	}
}

func TestAccessibleLevel_Bounds(t *testing.T) {
	// Accessible level never exceeds the global level nor own completed+1.
	for a := 0; a <= 4; a++ {
		for b := 0; b <= 4; b++ {
			for c := 0; c <= 4; c++ {
				levels := map[string]int{"numbers": a, "letters": b, "shapes": c}
				global := GlobalLevel(levels, themes)
				for _, id := range themes {
					acc := AccessibleLevel(id, levels, themes)
					if acc > global {
						t.Fatalf("AccessibleLevel(%s, %v) = %d exceeds global %d", id, levels, acc, global)
					}
					if acc > levels[id]+1 {
						t.Fatalf("AccessibleLevel(%s, %v) = %d exceeds own+1 %d", id, levels, acc, levels[id]+1)
					}
				}
			}
		}
	}
}

func TestIsAccessible(t *testing.T) {
	levels := map[string]int{"numbers": 1, "letters": 1, "shapes": 1}
	// global = 2, every theme accessible up to level 2

	if !IsAccessible("numbers", 1, levels, themes) {
		t.Error("level 1 should be accessible")
	}
	if !IsAccessible("numbers", 2, levels, themes) {
		t.Error("level 2 should be accessible")
	}
	if IsAccessible("numbers", 3, levels, themes) {
		t.Error("level 3 should be gated")
	}
}

func TestIsCompleted_ThemeLocal(t *testing.T) {
	// Completion ignores the global gate: a theme far ahead still shows
	// its own completed levels.
	levels := map[string]int{"numbers": 3, "letters": 0, "shapes": 0}

	if !IsCompleted("numbers", 3, levels) {
		t.Error("numbers level 3 should be completed")
	}
	if IsCompleted("numbers", 4, levels) {
		t.Error("numbers level 4 should not be completed")
	}
	if IsCompleted("letters", 1, levels) {
		t.Error("letters level 1 should not be completed")
	}
}

func TestNextUnlockRequirement(t *testing.T) {
	names := map[string]string{"numbers": "Numbers", "letters": "Letters", "shapes": "Shapes"}

	levels := map[string]int{"numbers": 2, "letters": 1, "shapes": 1}
	// global = 2; letters and shapes must finish level 2
	msg, ok := NextUnlockRequirement(levels, themes, names)
	if !ok {
		t.Fatal("expected a requirement")
	}
	want := "Finish level 2 in Letters and Shapes to unlock level 3 everywhere."
	if msg != want {
		t.Errorf("requirement = %q, want %q", msg, want)
	}
}

func TestNextUnlockRequirement_AtMax(t *testing.T) {
	levels := map[string]int{"numbers": 4, "letters": 4, "shapes": 4}
	if msg, ok := NextUnlockRequirement(levels, themes, nil); ok {
		t.Errorf("expected no requirement at max level, got %q", msg)
	}
}

func TestNextUnlockRequirement_FallsBackToID(t *testing.T) {
	levels := map[string]int{"numbers": 0, "letters": 1, "shapes": 1}
	msg, ok := NextUnlockRequirement(levels, themes, nil)
	if !ok {
		t.Fatal("expected a requirement")
	}
	want := "Finish level 1 in numbers to unlock level 2 everywhere."
	if msg != want {
		t.Errorf("requirement = %q, want %q", msg, want)
	}
}

func TestDeriveThemeLevels(t *testing.T) {
	bps := []scoring.LevelBreakpoint{
		{Level: 1, StarsRequired: 3},
		{Level: 2, StarsRequired: 8},
	}

	now := time.Now()
	mk := func(id, theme string, correct bool, attempts int) stats.Result {
		return stats.Result{
			ID: id, ProfileID: "p1", ExerciseID: "mc-" + id, AreaID: "math",
			ThemeID: theme, Level: 1, Correct: correct, Attempts: attempts,
			CompletedAt: now,
		}
	}

	results := []stats.Result{
		mk("a", "numbers", true, 1), // 3 stars
		mk("b", "numbers", true, 1), // 3 stars
		mk("c", "numbers", true, 2), // 2 stars → numbers has 8, level 2
		mk("d", "letters", true, 1), // 3 stars → letters level 1
		mk("e", "shapes", false, 3), // incorrect, 0 stars → shapes started but level 0
		mk("", "shapes", true, 1),   // invalid record, skipped
	}

	levels := DeriveThemeLevels(results, themes, bps)

	if levels["numbers"] != 2 {
		t.Errorf("numbers = %d, want 2", levels["numbers"])
	}
	if levels["letters"] != 1 {
		t.Errorf("letters = %d, want 1", levels["letters"])
	}
	if levels["shapes"] != 0 {
		t.Errorf("shapes = %d, want 0", levels["shapes"])
	}
}

package summary

import (
	"strings"
	"testing"
	"time"

	"github.com/lernbox/lernbox/internal/badges"
	"github.com/lernbox/lernbox/internal/session"
)

func TestViewShowsStats(t *testing.T) {
	s := New(&session.Summary{
		ThemeID:        "numbers",
		Level:          2,
		Duration:       95 * time.Second,
		TotalExercises: 6,
		TotalCorrect:   5,
		Accuracy:       83.3,
		StarsEarned:    12,
		MaxStars:       18,
	}, nil)

	view := s.View(80, 24)
	for _, want := range []string{"Session complete!", "Exercises: 6", "Correct: 5", "12 of 18 stars", "1:35"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "New badges") {
		t.Error("badge section shown without awards")
	}
}

func TestViewPerfectRun(t *testing.T) {
	s := New(&session.Summary{
		TotalExercises: 6,
		TotalCorrect:   6,
		StarsEarned:    18,
		MaxStars:       18,
		PerfectRun:     true,
	}, nil)

	if !strings.Contains(s.View(80, 24), "Perfect run!") {
		t.Error("perfect run title missing")
	}
}

func TestViewShowsBadges(t *testing.T) {
	s := New(&session.Summary{TotalExercises: 6}, []badges.Award{
		{Key: "first_session", Type: badges.BadgeMilestone, Rarity: badges.RarityCommon,
			Name: "First Steps", Reason: "Finish your first session"},
	})

	view := s.View(80, 24)
	if !strings.Contains(view, "First Steps") {
		t.Errorf("badge missing from view:\n%s", view)
	}
}

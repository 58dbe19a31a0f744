package badges

import (
	"context"
	"testing"

	"github.com/lernbox/lernbox/internal/stats"
	"github.com/lernbox/lernbox/internal/store"
)

// mockEventRepo implements store.EventRepo for badge tests.
type mockEventRepo struct {
	badges []store.BadgeEventData
	held   map[string]bool
}

func (m *mockEventRepo) AppendResult(_ context.Context, _ store.ResultEventData) error {
	return nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
	return nil
}
func (m *mockEventRepo) AppendBadge(_ context.Context, data store.BadgeEventData) error {
	m.badges = append(m.badges, data)
	return nil
}
func (m *mockEventRepo) ResultsForProfile(_ context.Context, _ string) ([]stats.Result, error) {
	return nil, nil
}
func (m *mockEventRepo) LatestResultSequence(_ context.Context, _ string) (int64, error) {
	return 0, nil
}
func (m *mockEventRepo) ExerciseFailureCounts(_ context.Context, _ string) (map[string]int, error) {
	return nil, nil
}
func (m *mockEventRepo) QuerySessionSummaries(_ context.Context, _ string, _ store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) BadgesForProfile(_ context.Context, _ string) ([]store.BadgeRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) HasBadge(_ context.Context, _ string, key string) (bool, error) {
	return m.held[key], nil
}
func (m *mockEventRepo) ClearProfileHistory(_ context.Context, _ string) error {
	return nil
}

func awardedKeys(awards []Award) map[string]bool {
	keys := make(map[string]bool, len(awards))
	for _, a := range awards {
		keys[a.Key] = true
	}
	return keys
}

func TestEvaluateFirstSession(t *testing.T) {
	repo := &mockEventRepo{held: map[string]bool{}}
	svc := NewService(repo)

	awards := svc.EvaluateSession(context.Background(), "p1", "s1",
		Totals{Sessions: 1, Exercises: 6, Stars: 12}, 1, nil, nil)

	keys := awardedKeys(awards)
	if !keys["first_session"] {
		t.Fatal("first_session not awarded")
	}
	if keys["sessions_10"] || keys["stars_25"] {
		t.Fatalf("over-awarded: %v", keys)
	}
	if len(repo.badges) != len(awards) {
		t.Fatalf("persisted %d, awarded %d", len(repo.badges), len(awards))
	}
}

func TestEvaluateSkipsHeldBadges(t *testing.T) {
	repo := &mockEventRepo{held: map[string]bool{"first_session": true, "stars_25": true}}
	svc := NewService(repo)

	awards := svc.EvaluateSession(context.Background(), "p1", "s2",
		Totals{Sessions: 3, Exercises: 18, Stars: 30}, 1, nil, nil)

	keys := awardedKeys(awards)
	if keys["first_session"] || keys["stars_25"] {
		t.Fatalf("re-awarded held badges: %v", keys)
	}
}

func TestEvaluateLevelBadges(t *testing.T) {
	repo := &mockEventRepo{held: map[string]bool{}}
	svc := NewService(repo)

	awards := svc.EvaluateSession(context.Background(), "p1", "s1",
		Totals{}, 3, nil, nil)

	keys := awardedKeys(awards)
	if !keys["level_2"] || !keys["level_3"] {
		t.Fatalf("missing level badges: %v", keys)
	}
	if keys["level_4"] {
		t.Fatal("level_4 awarded at global level 3")
	}
}

func TestEvaluateThemeBadgeUsesDisplayName(t *testing.T) {
	repo := &mockEventRepo{held: map[string]bool{}}
	svc := NewService(repo)

	awards := svc.EvaluateSession(context.Background(), "p1", "s1",
		Totals{}, 1, []string{"numbers"}, map[string]string{"numbers": "Numbers"})

	if len(awards) != 1 {
		t.Fatalf("awards = %d, want 1", len(awards))
	}
	a := awards[0]
	if a.Key != "theme_complete_numbers" || a.Type != BadgeTheme {
		t.Fatalf("award = %+v", a)
	}
	if a.Reason != "Completed every level of Numbers" {
		t.Fatalf("reason = %q", a.Reason)
	}
}

func TestEvaluateAccumulatesSessionBadges(t *testing.T) {
	repo := &mockEventRepo{held: map[string]bool{}}
	svc := NewService(repo)

	svc.EvaluateSession(context.Background(), "p1", "s1", Totals{Sessions: 1}, 1, nil, nil)
	svc.EvaluateSession(context.Background(), "p1", "s1", Totals{Sessions: 1, Stars: 25}, 1, nil, nil)

	if len(svc.SessionBadges) < 2 {
		t.Fatalf("session accumulator = %d, want at least 2", len(svc.SessionBadges))
	}
	svc.ResetSession()
	if svc.SessionBadges != nil {
		t.Fatal("ResetSession did not clear accumulator")
	}
}

func TestLookupDerivedKeys(t *testing.T) {
	tests := []struct {
		key      string
		wantType BadgeType
		ok       bool
	}{
		{"first_session", BadgeMilestone, true},
		{"stars_100", BadgeStars, true},
		{"theme_complete_shapes", BadgeTheme, true},
		{"level_4", BadgeLevel, true},
		{"nonsense", "", false},
	}
	for _, tt := range tests {
		def, ok := Lookup(tt.key)
		if ok != tt.ok {
			t.Errorf("Lookup(%q) ok = %v, want %v", tt.key, ok, tt.ok)
			continue
		}
		if ok && def.Type != tt.wantType {
			t.Errorf("Lookup(%q) type = %v, want %v", tt.key, def.Type, tt.wantType)
		}
	}
}

func TestLevelRarityTiers(t *testing.T) {
	if LevelRarity(4) != RarityLegendary || LevelRarity(2) != RarityRare {
		t.Fatal("level rarity tiers off")
	}
	if SessionRarity(92) != RarityLegendary || SessionRarity(40) != RarityCommon {
		t.Fatal("session rarity tiers off")
	}
}

package store

import (
	"context"
	"testing"
	"time"

	"github.com/lernbox/lernbox/internal/stats"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testEventRepo(t *testing.T, s *Store) EventRepo {
	t.Helper()
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestResultEventsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	data := ResultEventData{
		ResultID:      "r-1",
		ProfileID:     "p-1",
		SessionID:     "s-1",
		ExerciseID:    "mc-add-1",
		AreaID:        "math",
		ThemeID:       "numbers",
		Level:         1,
		Correct:       true,
		Score:         3,
		Attempts:      1,
		TimeSpentSecs: 20,
	}
	if err := repo.AppendResult(ctx, data); err != nil {
		t.Fatalf("append result: %v", err)
	}

	results, err := repo.ResultsForProfile(ctx, "p-1")
	if err != nil {
		t.Fatalf("query results: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	r := results[0]
	if r.ID != "r-1" || r.ExerciseID != "mc-add-1" || r.ThemeID != "numbers" || !r.Correct || r.Attempts != 1 {
		t.Errorf("round-tripped result = %+v", r)
	}
	if err := r.Validate(); err != nil {
		t.Errorf("round-tripped result invalid: %v", err)
	}

	// Other profiles see nothing.
	other, err := repo.ResultsForProfile(ctx, "p-2")
	if err != nil {
		t.Fatalf("query other profile: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("other profile has %d results, want 0", len(other))
	}
}

func TestLatestResultSequenceAdvances(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	seq0, err := repo.LatestResultSequence(ctx, "p-1")
	if err != nil {
		t.Fatalf("latest sequence (empty): %v", err)
	}
	if seq0 != 0 {
		t.Errorf("empty profile sequence = %d, want 0", seq0)
	}

	for i, id := range []string{"r-1", "r-2"} {
		err := repo.AppendResult(ctx, ResultEventData{
			ResultID: id, ProfileID: "p-1", SessionID: "s-1",
			ExerciseID: "mc-add-1", AreaID: "math", ThemeID: "numbers",
			Level: 1, Correct: true, Score: 3, Attempts: i + 1, TimeSpentSecs: 5,
		})
		if err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	seq, err := repo.LatestResultSequence(ctx, "p-1")
	if err != nil {
		t.Fatalf("latest sequence: %v", err)
	}
	if seq <= seq0 {
		t.Errorf("sequence did not advance: %d", seq)
	}
}

func TestBadgeAppendAndHasBadge(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	has, err := repo.HasBadge(ctx, "p-1", "stars_10")
	if err != nil {
		t.Fatalf("has badge (empty): %v", err)
	}
	if has {
		t.Error("badge should not exist yet")
	}

	err = repo.AppendBadge(ctx, BadgeEventData{
		ProfileID: "p-1", BadgeKey: "stars_10", BadgeType: "stars",
		Rarity: "common", SessionID: "s-1", Reason: "Earned 10 stars",
	})
	if err != nil {
		t.Fatalf("append badge: %v", err)
	}

	has, err = repo.HasBadge(ctx, "p-1", "stars_10")
	if err != nil {
		t.Fatalf("has badge: %v", err)
	}
	if !has {
		t.Error("badge should exist")
	}

	badges, err := repo.BadgesForProfile(ctx, "p-1")
	if err != nil {
		t.Fatalf("badges: %v", err)
	}
	if len(badges) != 1 || badges[0].BadgeKey != "stars_10" {
		t.Errorf("badges = %+v", badges)
	}
}

func TestProfileRepoCRUD(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p, err := repo.Create(ctx, "Mia", "🐼")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == "" || p.Name != "Mia" || p.Avatar != "🐼" {
		t.Errorf("created profile = %+v", p)
	}

	got, err := repo.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Mia" {
		t.Errorf("got name %q", got.Name)
	}

	if err := repo.Rename(ctx, p.ID, "Mio"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	got, _ = repo.Get(ctx, p.ID)
	if got.Name != "Mio" {
		t.Errorf("renamed name %q", got.Name)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("list has %d profiles, want 1", len(list))
	}

	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, p.ID); err != ErrProfileNotFound {
		t.Errorf("get after delete: %v, want ErrProfileNotFound", err)
	}
	if err := repo.Delete(ctx, p.ID); err != ErrProfileNotFound {
		t.Errorf("double delete: %v, want ErrProfileNotFound", err)
	}
}

func TestSettingsRepoUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.SettingsRepo()
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, "p-1", "sound")
	if err != nil {
		t.Fatalf("get (missing): %v", err)
	}
	if ok {
		t.Error("setting should not exist yet")
	}

	if err := repo.Set(ctx, "p-1", "sound", "off"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, "p-1", "sound", "on"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	v, ok, err := repo.Get(ctx, "p-1", "sound")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || v != "on" {
		t.Errorf("setting = %q (found %v), want on", v, ok)
	}

	// App-wide settings live under the empty profile ID.
	if err := repo.Set(ctx, "", "teacher_pin_hash", "x"); err != nil {
		t.Fatalf("set app-wide: %v", err)
	}
	v, ok, _ = repo.Get(ctx, "", "teacher_pin_hash")
	if !ok || v != "x" {
		t.Errorf("app-wide setting = %q (found %v)", v, ok)
	}
}

func TestStatsCacheSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	cache, err := repo.Latest(ctx, "p-1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if cache != nil {
		t.Fatal("expected nil cache when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	summary := stats.Aggregate([]stats.Result{{
		ID: "r-1", ProfileID: "p-1", ExerciseID: "mc-add-1", AreaID: "math",
		ThemeID: "numbers", Level: 1, Correct: true, Attempts: 1,
		CompletedAt: now,
	}})

	err = repo.Save(ctx, &StatsCache{
		ProfileID:   "p-1",
		Sequence:    7,
		Timestamp:   now,
		Summary:     summary,
		ThemeLevels: map[string]int{"numbers": 1},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	cache, err = repo.Latest(ctx, "p-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if cache == nil {
		t.Fatal("expected a cache entry")
	}
	if cache.Sequence != 7 {
		t.Errorf("sequence = %d, want 7", cache.Sequence)
	}
	if cache.Summary == nil || cache.Summary.Total != 1 || cache.Summary.TotalStars != 3 {
		t.Errorf("summary = %+v", cache.Summary)
	}
	if cache.ThemeLevels["numbers"] != 1 {
		t.Errorf("theme levels = %v", cache.ThemeLevels)
	}
}

func TestClearProfileHistory(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	err := repo.AppendResult(ctx, ResultEventData{
		ResultID: "r-1", ProfileID: "p-1", SessionID: "s-1",
		ExerciseID: "mc-add-1", AreaID: "math", ThemeID: "numbers",
		Level: 1, Correct: true, Score: 3, Attempts: 1, TimeSpentSecs: 5,
	})
	if err != nil {
		t.Fatalf("append result: %v", err)
	}
	err = repo.AppendBadge(ctx, BadgeEventData{
		ProfileID: "p-1", BadgeKey: "stars_10", BadgeType: "stars",
		Rarity: "common", Reason: "x",
	})
	if err != nil {
		t.Fatalf("append badge: %v", err)
	}

	if err := repo.ClearProfileHistory(ctx, "p-1"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	results, _ := repo.ResultsForProfile(ctx, "p-1")
	if len(results) != 0 {
		t.Errorf("results after clear: %d", len(results))
	}
	badges, _ := repo.BadgesForProfile(ctx, "p-1")
	if len(badges) != 0 {
		t.Errorf("badges after clear: %d", len(badges))
	}
}

package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lernbox/lernbox/internal/stats"
	"github.com/lernbox/lernbox/internal/store"
)

// mockEvents serves a fixed result history.
type mockEvents struct {
	results []stats.Result
	seq     int64
	queries int
}

func (m *mockEvents) AppendResult(_ context.Context, _ store.ResultEventData) error { return nil }
func (m *mockEvents) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
	return nil
}
func (m *mockEvents) AppendBadge(_ context.Context, _ store.BadgeEventData) error { return nil }
func (m *mockEvents) ResultsForProfile(_ context.Context, _ string) ([]stats.Result, error) {
	m.queries++
	return m.results, nil
}
func (m *mockEvents) LatestResultSequence(_ context.Context, _ string) (int64, error) {
	return m.seq, nil
}
func (m *mockEvents) ExerciseFailureCounts(_ context.Context, _ string) (map[string]int, error) {
	return nil, nil
}
func (m *mockEvents) QuerySessionSummaries(_ context.Context, _ string, _ store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}
func (m *mockEvents) BadgesForProfile(_ context.Context, _ string) ([]store.BadgeRecord, error) {
	return nil, nil
}
func (m *mockEvents) HasBadge(_ context.Context, _, _ string) (bool, error) { return false, nil }
func (m *mockEvents) ClearProfileHistory(_ context.Context, _ string) error { return nil }

// mockSnaps keeps the latest cache entry in memory.
type mockSnaps struct {
	latest   *store.StatsCache
	saves    int
	pruneErr error
}

func (m *mockSnaps) Save(_ context.Context, c *store.StatsCache) error {
	m.latest = c
	m.saves++
	return nil
}
func (m *mockSnaps) Latest(_ context.Context, _ string) (*store.StatsCache, error) {
	return m.latest, nil
}
func (m *mockSnaps) Prune(_ context.Context, _ string, _ int) error { return m.pruneErr }

func testResult(id, themeID string, correct bool, attempts int) stats.Result {
	return stats.Result{
		ID:          id,
		ProfileID:   "p1",
		ExerciseID:  "mc-" + id,
		AreaID:      "math",
		ThemeID:     themeID,
		Level:       1,
		Correct:     correct,
		Attempts:    attempts,
		CompletedAt: time.Now(),
	}
}

func TestLoadComputesAndCaches(t *testing.T) {
	events := &mockEvents{
		seq: 3,
		results: []stats.Result{
			testResult("a", "numbers", true, 1),
			testResult("b", "numbers", true, 2),
			testResult("c", "shapes", false, 3),
		},
	}
	snaps := &mockSnaps{}
	l := NewLoader(events, snaps)

	cache, err := l.Load(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cache.Sequence != 3 {
		t.Fatalf("sequence = %d, want 3", cache.Sequence)
	}
	if cache.Summary.Total != 3 || cache.Summary.TotalStars != 5 {
		t.Fatalf("summary = %+v", cache.Summary)
	}
	if snaps.saves != 1 {
		t.Fatalf("saves = %d, want 1", snaps.saves)
	}

	// Unchanged history is served from the cache without re-aggregation.
	again, err := l.Load(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if again != cache {
		t.Fatal("expected the cached entry back")
	}
	if events.queries != 1 || snaps.saves != 1 {
		t.Fatalf("recomputed despite fresh cache: queries=%d saves=%d", events.queries, snaps.saves)
	}
}

func TestLoadRecomputesOnNewEvents(t *testing.T) {
	events := &mockEvents{seq: 1, results: []stats.Result{testResult("a", "numbers", true, 1)}}
	snaps := &mockSnaps{}
	l := NewLoader(events, snaps)

	first, _ := l.Load(context.Background(), "p1")

	events.seq = 2
	events.results = append(events.results, testResult("b", "numbers", true, 1))

	second, err := l.Load(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if second == first {
		t.Fatal("stale cache served after new events")
	}
	if second.Summary.Total != 2 {
		t.Fatalf("total = %d, want 2", second.Summary.Total)
	}
	if snaps.saves != 2 {
		t.Fatalf("saves = %d, want 2", snaps.saves)
	}
}

func TestLoadSurvivesPruneFailure(t *testing.T) {
	events := &mockEvents{seq: 1, results: []stats.Result{testResult("a", "numbers", true, 1)}}
	snaps := &mockSnaps{pruneErr: errors.New("disk full")}
	l := NewLoader(events, snaps)

	cache, err := l.Load(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Load failed on prune error: %v", err)
	}
	if cache == nil || cache.Summary.Total != 1 {
		t.Fatalf("cache = %+v, want fresh aggregate", cache)
	}
	if snaps.saves != 1 {
		t.Fatalf("saves = %d, want 1", snaps.saves)
	}
}

func TestGlobalLevelFromCache(t *testing.T) {
	if GlobalLevel(nil) != 1 {
		t.Fatal("nil cache must be level 1")
	}
	cache := &store.StatsCache{ThemeLevels: map[string]int{
		"numbers": 1, "shapes": 1, "letters": 1, "words": 1, "puzzles": 1,
	}}
	if got := GlobalLevel(cache); got != 2 {
		t.Fatalf("global level = %d, want 2", got)
	}
}

func TestCompletedThemes(t *testing.T) {
	cache := &store.StatsCache{ThemeLevels: map[string]int{
		"numbers": 4, "shapes": 2,
	}}
	done := CompletedThemes(cache)
	if len(done) != 1 || done[0] != "numbers" {
		t.Fatalf("completed = %v, want [numbers]", done)
	}
}

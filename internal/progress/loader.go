// Package progress computes a profile's aggregated statistics and theme
// levels, caching the result in the store keyed by the profile's event
// sequence so unchanged history is never re-aggregated.
package progress

import (
	"context"
	"time"

	"github.com/lernbox/lernbox/internal/catalog"
	"github.com/lernbox/lernbox/internal/progression"
	"github.com/lernbox/lernbox/internal/stats"
	"github.com/lernbox/lernbox/internal/store"
)

// keepSnapshots bounds the cache entries retained per profile.
const keepSnapshots = 5

// Loader loads cached progress or recomputes it from the event history.
type Loader struct {
	events store.EventRepo
	snaps  store.SnapshotRepo
}

// NewLoader creates a progress loader.
func NewLoader(events store.EventRepo, snaps store.SnapshotRepo) *Loader {
	return &Loader{events: events, snaps: snaps}
}

// Load returns the profile's current statistics summary and theme levels.
// A cache entry whose sequence matches the newest result event is served
// as is; anything older triggers a full recompute and a new cache entry.
func (l *Loader) Load(ctx context.Context, profileID string) (*store.StatsCache, error) {
	seq, err := l.events.LatestResultSequence(ctx, profileID)
	if err != nil {
		return nil, err
	}

	cached, err := l.snaps.Latest(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if cached != nil && cached.Sequence == seq {
		return cached, nil
	}

	results, err := l.events.ResultsForProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	cache := &store.StatsCache{
		ProfileID: profileID,
		Sequence:  seq,
		Timestamp: time.Now(),
		Summary:   stats.Aggregate(results),
		ThemeLevels: progression.DeriveThemeLevels(
			results, catalog.ThemeIDs(), progression.DefaultBreakpoints()),
	}

	if err := l.snaps.Save(ctx, cache); err != nil {
		return nil, err
	}
	// Pruning only bounds the snapshot table; leftover rows are harmless
	// and the fresh cache is already saved, so a prune failure never
	// fails the load.
	_ = l.snaps.Prune(ctx, profileID, keepSnapshots)

	return cache, nil
}

// GlobalLevel returns the profile's current global level from a loaded
// cache entry.
func GlobalLevel(cache *store.StatsCache) int {
	if cache == nil {
		return 1
	}
	return progression.GlobalLevel(cache.ThemeLevels, catalog.ThemeIDs())
}

// CompletedThemes lists the themes whose final level is done.
func CompletedThemes(cache *store.StatsCache) []string {
	if cache == nil {
		return nil
	}
	var out []string
	for _, id := range catalog.ThemeIDs() {
		if progression.IsCompleted(id, progression.MaxThemeLevel, cache.ThemeLevels) {
			out = append(out, id)
		}
	}
	return out
}

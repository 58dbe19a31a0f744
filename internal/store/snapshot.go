package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lernbox/lernbox/ent"
	"github.com/lernbox/lernbox/ent/statssnapshot"
	"github.com/lernbox/lernbox/internal/stats"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
}

// cacheData is the JSON shape stored in the snapshot row.
type cacheData struct {
	Version     int            `json:"version"`
	Summary     *stats.Summary `json:"summary"`
	ThemeLevels map[string]int `json:"theme_levels"`
}

const cacheVersion = 1

func (r *snapshotRepo) Save(ctx context.Context, cache *StatsCache) error {
	dataMap, err := cacheToMap(cache)
	if err != nil {
		return fmt.Errorf("marshal stats cache: %w", err)
	}

	_, err = r.client.StatsSnapshot.Create().
		SetProfileID(cache.ProfileID).
		SetSequence(cache.Sequence).
		SetTimestamp(cache.Timestamp).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save stats cache: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, profileID string) (*StatsCache, error) {
	row, err := r.client.StatsSnapshot.Query().
		Where(statssnapshot.ProfileID(profileID)).
		Order(ent.Desc(statssnapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest stats cache: %w", err)
	}
	return entSnapshotToCache(row)
}

func (r *snapshotRepo) Prune(ctx context.Context, profileID string, keep int) error {
	rows, err := r.client.StatsSnapshot.Query().
		Where(statssnapshot.ProfileID(profileID)).
		Order(ent.Desc(statssnapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query stats caches for prune: %w", err)
	}
	if len(rows) == 0 {
		return nil // fewer than keep entries exist
	}

	threshold := rows[0].Sequence
	_, err = r.client.StatsSnapshot.Delete().
		Where(
			statssnapshot.ProfileID(profileID),
			statssnapshot.SequenceLTE(threshold),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune stats caches: %w", err)
	}
	return nil
}

// cacheToMap converts a StatsCache to map[string]any for ent JSON storage.
func cacheToMap(cache *StatsCache) (map[string]any, error) {
	b, err := json.Marshal(cacheData{
		Version:     cacheVersion,
		Summary:     cache.Summary,
		ThemeLevels: cache.ThemeLevels,
	})
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entSnapshotToCache converts an ent StatsSnapshot row to a StatsCache.
func entSnapshotToCache(row *ent.StatsSnapshot) (*StatsCache, error) {
	b, err := json.Marshal(row.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	var data cacheData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshal stats cache: %w", err)
	}
	return &StatsCache{
		ID:          row.ID,
		ProfileID:   row.ProfileID,
		Sequence:    row.Sequence,
		Timestamp:   row.Timestamp,
		Summary:     data.Summary,
		ThemeLevels: data.ThemeLevels,
	}, nil
}

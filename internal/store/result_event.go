package store

import (
	"context"
	"fmt"

	"github.com/lernbox/lernbox/ent"
	"github.com/lernbox/lernbox/ent/resultevent"
	"github.com/lernbox/lernbox/internal/stats"
)

func (r *eventRepo) AppendResult(ctx context.Context, data ResultEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ResultEvent.Create().
		SetSequence(seqNum).
		SetResultID(data.ResultID).
		SetProfileID(data.ProfileID).
		SetSessionID(data.SessionID).
		SetExerciseID(data.ExerciseID).
		SetAreaID(data.AreaID).
		SetThemeID(data.ThemeID).
		SetLevel(data.Level).
		SetCorrect(data.Correct).
		SetScore(data.Score).
		SetAttempts(data.Attempts).
		SetTimeSpentSecs(data.TimeSpentSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save result event: %w", err)
	}
	return nil
}

func (r *eventRepo) ResultsForProfile(ctx context.Context, profileID string) ([]stats.Result, error) {
	events, err := r.client.ResultEvent.Query().
		Where(resultevent.ProfileID(profileID)).
		Order(ent.Asc(resultevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}

	results := make([]stats.Result, 0, len(events))
	for _, e := range events {
		results = append(results, stats.Result{
			ID:            e.ResultID,
			ProfileID:     e.ProfileID,
			ExerciseID:    e.ExerciseID,
			AreaID:        e.AreaID,
			ThemeID:       e.ThemeID,
			Level:         e.Level,
			Correct:       e.Correct,
			Score:         e.Score,
			Attempts:      e.Attempts,
			TimeSpentSecs: e.TimeSpentSecs,
			CompletedAt:   e.Timestamp,
		})
	}
	return results, nil
}

func (r *eventRepo) LatestResultSequence(ctx context.Context, profileID string) (int64, error) {
	e, err := r.client.ResultEvent.Query().
		Where(resultevent.ProfileID(profileID)).
		Order(ent.Desc(resultevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("query latest result sequence: %w", err)
	}
	return e.Sequence, nil
}

func (r *eventRepo) ExerciseFailureCounts(ctx context.Context, profileID string) (map[string]int, error) {
	events, err := r.client.ResultEvent.Query().
		Where(
			resultevent.ProfileID(profileID),
			resultevent.Correct(false),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query failures: %w", err)
	}

	counts := make(map[string]int)
	for _, e := range events {
		counts[e.ExerciseID]++
	}
	return counts, nil
}

package store

import (
	"context"
	"fmt"

	"github.com/lernbox/lernbox/ent"
	"github.com/lernbox/lernbox/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetProfileID(data.ProfileID).
		SetAction(data.Action).
		SetThemeID(data.ThemeID).
		SetLevel(data.Level).
		SetExercisesServed(data.ExercisesServed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetStarsEarned(data.StarsEarned).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, profileID string, opts QueryOpts) ([]SessionSummaryRecord, error) {
	query := r.client.SessionEvent.Query().
		Where(sessionevent.ProfileID(profileID)).
		Order(ent.Desc(sessionevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(sessionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(sessionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(sessionevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	records := make([]SessionSummaryRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SessionSummaryRecord{
			Sequence:        e.Sequence,
			Timestamp:       e.Timestamp,
			SessionID:       e.SessionID,
			ProfileID:       e.ProfileID,
			Action:          e.Action,
			ThemeID:         e.ThemeID,
			Level:           e.Level,
			ExercisesServed: e.ExercisesServed,
			CorrectAnswers:  e.CorrectAnswers,
			StarsEarned:     e.StarsEarned,
			DurationSecs:    e.DurationSecs,
		})
	}
	return records, nil
}

package store

import (
	"context"
	"fmt"

	"github.com/lernbox/lernbox/ent"
	"github.com/lernbox/lernbox/ent/badgeevent"
)

func (r *eventRepo) AppendBadge(ctx context.Context, data BadgeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.BadgeEvent.Create().
		SetSequence(seqNum).
		SetProfileID(data.ProfileID).
		SetBadgeKey(data.BadgeKey).
		SetBadgeType(data.BadgeType).
		SetRarity(data.Rarity).
		SetReason(data.Reason)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save badge event: %w", err)
	}
	return nil
}

func (r *eventRepo) BadgesForProfile(ctx context.Context, profileID string) ([]BadgeRecord, error) {
	events, err := r.client.BadgeEvent.Query().
		Where(badgeevent.ProfileID(profileID)).
		Order(ent.Desc(badgeevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query badge events: %w", err)
	}

	records := make([]BadgeRecord, 0, len(events))
	for _, e := range events {
		records = append(records, BadgeRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ProfileID: e.ProfileID,
			BadgeKey:  e.BadgeKey,
			BadgeType: e.BadgeType,
			Rarity:    e.Rarity,
			SessionID: e.SessionID,
			Reason:    e.Reason,
		})
	}
	return records, nil
}

func (r *eventRepo) HasBadge(ctx context.Context, profileID, badgeKey string) (bool, error) {
	exists, err := r.client.BadgeEvent.Query().
		Where(
			badgeevent.ProfileID(profileID),
			badgeevent.BadgeKey(badgeKey),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check badge: %w", err)
	}
	return exists, nil
}

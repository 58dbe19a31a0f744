package store

import (
	"context"
	"fmt"

	"github.com/lernbox/lernbox/ent/badgeevent"
	"github.com/lernbox/lernbox/ent/resultevent"
	"github.com/lernbox/lernbox/ent/sessionevent"
	"github.com/lernbox/lernbox/ent/statssnapshot"
)

// ClearProfileHistory removes every event and cached snapshot belonging
// to the profile. Used by the teacher dashboard's full-history clear and
// by profile deletion.
func (r *eventRepo) ClearProfileHistory(ctx context.Context, profileID string) error {
	if _, err := r.client.ResultEvent.Delete().
		Where(resultevent.ProfileID(profileID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("clear result events: %w", err)
	}

	if _, err := r.client.SessionEvent.Delete().
		Where(sessionevent.ProfileID(profileID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("clear session events: %w", err)
	}

	if _, err := r.client.BadgeEvent.Delete().
		Where(badgeevent.ProfileID(profileID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("clear badge events: %w", err)
	}

	if _, err := r.client.StatsSnapshot.Delete().
		Where(statssnapshot.ProfileID(profileID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("clear stats caches: %w", err)
	}

	return nil
}

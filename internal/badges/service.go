package badges

import (
	"context"
	"fmt"
	"time"

	"github.com/lernbox/lernbox/internal/store"
)

// Award is one badge granted to a profile.
type Award struct {
	Key       string
	Type      BadgeType
	Rarity    Rarity
	Name      string
	Reason    string
	SessionID string
	AwardedAt time.Time
}

// Totals carries the lifetime counters badge checks run against. The
// caller computes them from the profile's aggregated history after the
// finished session has been recorded.
type Totals struct {
	Sessions        int
	Exercises       int
	Stars           int
	PerfectSessions int
}

// Service evaluates badge milestones and tracks awards.
type Service struct {
	eventRepo store.EventRepo

	// SessionBadges accumulates badges awarded during the current session.
	SessionBadges []Award
}

// NewService creates a badge service backed by the event repository.
func NewService(eventRepo store.EventRepo) *Service {
	return &Service{eventRepo: eventRepo}
}

// ResetSession clears the session badge accumulator. Called at session start.
func (s *Service) ResetSession() {
	s.SessionBadges = nil
}

// EvaluateSession checks every milestone against the profile's totals and
// progression state and awards badges not yet held. Returns the new awards
// in check order.
func (s *Service) EvaluateSession(ctx context.Context, profileID, sessionID string, totals Totals, globalLevel int, completedThemes []string, themeNames map[string]string) []Award {
	var keys []string

	if totals.Sessions >= 1 {
		keys = append(keys, "first_session")
	}
	if totals.Sessions >= 10 {
		keys = append(keys, "sessions_10")
	}
	if totals.Sessions >= 50 {
		keys = append(keys, "sessions_50")
	}
	if totals.Sessions >= 200 {
		keys = append(keys, "sessions_200")
	}

	if totals.Exercises >= 50 {
		keys = append(keys, "exercises_50")
	}
	if totals.Exercises >= 250 {
		keys = append(keys, "exercises_250")
	}
	if totals.Exercises >= 1000 {
		keys = append(keys, "exercises_1000")
	}

	if totals.Stars >= 25 {
		keys = append(keys, "stars_25")
	}
	if totals.Stars >= 100 {
		keys = append(keys, "stars_100")
	}
	if totals.Stars >= 300 {
		keys = append(keys, "stars_300")
	}
	if totals.Stars >= 1000 {
		keys = append(keys, "stars_1000")
	}

	if totals.PerfectSessions >= 1 {
		keys = append(keys, "perfect_1")
	}
	if totals.PerfectSessions >= 10 {
		keys = append(keys, "perfect_10")
	}

	for lvl := 2; lvl <= globalLevel; lvl++ {
		keys = append(keys, LevelBadgeKey(lvl))
	}
	for _, themeID := range completedThemes {
		keys = append(keys, ThemeBadgeKey(themeID))
	}

	var awarded []Award
	for _, key := range keys {
		def, ok := Lookup(key)
		if !ok {
			continue
		}
		held, err := s.eventRepo.HasBadge(ctx, profileID, key)
		if err != nil || held {
			continue
		}
		award := Award{
			Key:       key,
			Type:      def.Type,
			Rarity:    def.Rarity,
			Name:      def.Name,
			Reason:    def.Description,
			SessionID: sessionID,
			AwardedAt: time.Now(),
		}
		if def.Type == BadgeTheme {
			themeID := key[len("theme_complete_"):]
			if name, ok := themeNames[themeID]; ok && name != "" {
				award.Reason = fmt.Sprintf("Completed every level of %s", name)
			}
		}
		s.persist(ctx, profileID, &award)
		s.SessionBadges = append(s.SessionBadges, award)
		awarded = append(awarded, award)
	}
	return awarded
}

func (s *Service) persist(ctx context.Context, profileID string, award *Award) {
	if s.eventRepo == nil {
		return
	}
	_ = s.eventRepo.AppendBadge(ctx, store.BadgeEventData{
		ProfileID: profileID,
		BadgeKey:  award.Key,
		BadgeType: string(award.Type),
		Rarity:    string(award.Rarity),
		SessionID: award.SessionID,
		Reason:    award.Reason,
	})
}

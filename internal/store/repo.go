package store

import (
	"context"
	"time"

	"github.com/lernbox/lernbox/internal/stats"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ResultEventData captures one finished exercise attempt for appending.
type ResultEventData struct {
	ResultID      string
	ProfileID     string
	SessionID     string
	ExerciseID    string
	AreaID        string
	ThemeID       string
	Level         int
	Correct       bool
	Score         int
	Attempts      int
	TimeSpentSecs int
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID       string
	ProfileID       string
	Action          string // "started", "completed", "abandoned"
	ThemeID         string
	Level           int
	ExercisesServed int
	CorrectAnswers  int
	StarsEarned     int
	DurationSecs    int
}

// SessionSummaryRecord is a queried session event for history display.
type SessionSummaryRecord struct {
	Sequence        int64
	Timestamp       time.Time
	SessionID       string
	ProfileID       string
	Action          string
	ThemeID         string
	Level           int
	ExercisesServed int
	CorrectAnswers  int
	StarsEarned     int
	DurationSecs    int
}

// BadgeEventData captures a badge award for appending.
type BadgeEventData struct {
	ProfileID string
	BadgeKey  string
	BadgeType string
	Rarity    string
	SessionID string
	Reason    string
}

// BadgeRecord is a queried badge award.
type BadgeRecord struct {
	Sequence  int64
	Timestamp time.Time
	ProfileID string
	BadgeKey  string
	BadgeType string
	Rarity    string
	SessionID string
	Reason    string
}

// EventRepo provides append and query access to all domain events.
type EventRepo interface {
	// AppendResult records one exercise result. Appending moves the
	// profile's event sequence forward and thereby invalidates any
	// cached statistics snapshot.
	AppendResult(ctx context.Context, data ResultEventData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendBadge records a badge award.
	AppendBadge(ctx context.Context, data BadgeEventData) error

	// ResultsForProfile returns the profile's full result history as
	// statistics records, oldest first.
	ResultsForProfile(ctx context.Context, profileID string) ([]stats.Result, error)

	// LatestResultSequence returns the sequence of the profile's newest
	// result event, or 0 when the profile has none.
	LatestResultSequence(ctx context.Context, profileID string) (int64, error)

	// ExerciseFailureCounts returns, per exercise ID, how many of the
	// profile's results for that exercise were incorrect.
	ExerciseFailureCounts(ctx context.Context, profileID string) (map[string]int, error)

	// QuerySessionSummaries returns session events, newest first.
	QuerySessionSummaries(ctx context.Context, profileID string, opts QueryOpts) ([]SessionSummaryRecord, error)

	// BadgesForProfile returns the profile's badge awards, newest first.
	BadgesForProfile(ctx context.Context, profileID string) ([]BadgeRecord, error)

	// HasBadge reports whether the profile already holds the badge key.
	HasBadge(ctx context.Context, profileID, badgeKey string) (bool, error)

	// ClearProfileHistory deletes every event and snapshot of a profile.
	// The only way result records ever disappear.
	ClearProfileHistory(ctx context.Context, profileID string) error
}

// Profile is one learner on this machine.
type Profile struct {
	ID           string
	Name         string
	Avatar       string
	CreatedAt    time.Time
	LastActiveAt time.Time
}

// ProfileRepo manages learner profiles.
type ProfileRepo interface {
	Create(ctx context.Context, name, avatar string) (*Profile, error)
	List(ctx context.Context) ([]Profile, error)
	Get(ctx context.Context, profileID string) (*Profile, error)
	Rename(ctx context.Context, profileID, name string) error
	Touch(ctx context.Context, profileID string) error
	Delete(ctx context.Context, profileID string) error
}

// SettingsRepo stores key/value settings. An empty profileID addresses
// app-wide settings such as the teacher PIN hash.
type SettingsRepo interface {
	Get(ctx context.Context, profileID, key string) (string, bool, error)
	Set(ctx context.Context, profileID, key, value string) error
	DeleteForProfile(ctx context.Context, profileID string) error
}

// StatsCache is a cached statistics computation for one profile, valid
// while no result event newer than Sequence exists.
type StatsCache struct {
	ID          int
	ProfileID   string
	Sequence    int64
	Timestamp   time.Time
	Summary     *stats.Summary
	ThemeLevels map[string]int
}

// SnapshotRepo manages cached per-profile statistics snapshots.
type SnapshotRepo interface {
	// Save stores a new cache entry for the profile.
	Save(ctx context.Context, cache *StatsCache) error

	// Latest returns the profile's most recent cache entry, or nil.
	Latest(ctx context.Context, profileID string) (*StatsCache, error)

	// Prune deletes all but the N most recent entries per profile.
	Prune(ctx context.Context, profileID string, keep int) error
}

package stats

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation errors for result records.
var (
	ErrMissingID       = errors.New("result has no identifier")
	ErrInvalidAttempts = errors.New("attempts must be at least 1")
	ErrInvalidLevel    = errors.New("level must be at least 1")
	ErrNegativeScore   = errors.New("score must not be negative")
	ErrNegativeTime    = errors.New("time spent must not be negative")
)

// Result is one exercise attempt outcome. Records are append-only: a later
// retry of the same exercise creates a new record rather than mutating an
// old one.
type Result struct {
	ID            string
	ProfileID     string
	ExerciseID    string
	AreaID        string
	ThemeID       string
	Level         int
	Correct       bool
	Score         int
	Attempts      int
	TimeSpentSecs int
	CompletedAt   time.Time
}

// Validate checks the record invariants.
func (r *Result) Validate() error {
	if r.ID == "" {
		return ErrMissingID
	}
	if r.Attempts < 1 {
		return fmt.Errorf("result %s: %w", r.ID, ErrInvalidAttempts)
	}
	if r.Level < 1 {
		return fmt.Errorf("result %s: %w", r.ID, ErrInvalidLevel)
	}
	if r.Score < 0 {
		return fmt.Errorf("result %s: %w", r.ID, ErrNegativeScore)
	}
	if r.TimeSpentSecs < 0 {
		return fmt.Errorf("result %s: %w", r.ID, ErrNegativeTime)
	}
	return nil
}

// TypeKey derives the grouping key for the exercise type: the prefix of
// the exercise identifier before its first "-". Identifiers without a
// separator group under the whole identifier; this fallback is a contract,
// not an accident.
func (r *Result) TypeKey() string {
	if i := strings.IndexByte(r.ExerciseID, '-'); i > 0 {
		return r.ExerciseID[:i]
	}
	return r.ExerciseID
}

// LevelKey derives the grouping key for the level, e.g. "level-2".
func (r *Result) LevelKey() string {
	return fmt.Sprintf("level-%d", r.Level)
}

// Package session runs one practice session: a queue of exercises for a
// single theme and level, attempt counting per exercise, and the result
// records the statistics and progression engines consume.
package session

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lernbox/lernbox/internal/exercises"
	"github.com/lernbox/lernbox/internal/scoring"
	"github.com/lernbox/lernbox/internal/stats"
)

// ErrNoExercises is returned when the bank has nothing for the requested
// theme and level.
var ErrNoExercises = errors.New("no exercises available for this theme and level")

// Start builds a new session state from the picker.
func Start(profileID, themeID string, level int, picker *exercises.Picker, failures map[string]int) (*State, error) {
	queue := picker.Pick(themeID, level, ExercisesPerSession, failures)
	if len(queue) == 0 {
		return nil, ErrNoExercises
	}

	now := time.Now()
	return &State{
		SessionID:         uuid.NewString(),
		ProfileID:         profileID,
		ThemeID:           themeID,
		Level:             level,
		Queue:             queue,
		Phase:             PhaseActive,
		StartTime:         now,
		ExerciseStartTime: now,
	}, nil
}

// Submit checks an answer against the current exercise. A correct answer
// or the attempt limit finishes the exercise and appends a result record;
// otherwise the learner gets another try. Returns whether the answer was
// correct.
func (s *State) Submit(answer string) bool {
	ex := s.Current()
	if ex == nil || s.Phase != PhaseActive {
		return false
	}

	s.AttemptsOnCurrent++
	correct := answersMatch(answer, ex.Answer)
	s.LastAnswerCorrect = correct

	if correct || s.AttemptsOnCurrent >= MaxAttemptsPerExercise {
		s.finishCurrent(ex, correct)
	}
	return correct
}

// GiveUp finishes the current exercise as failed regardless of the
// attempt count. The record keeps the attempts made so far, floored at 1
// so an immediate give-up stays a valid record.
func (s *State) GiveUp() {
	ex := s.Current()
	if ex == nil || s.Phase != PhaseActive {
		return
	}
	if s.AttemptsOnCurrent < 1 {
		s.AttemptsOnCurrent = 1
	}
	s.LastAnswerCorrect = false
	s.finishCurrent(ex, false)
}

func (s *State) finishCurrent(ex *exercises.Exercise, correct bool) {
	timeSpent := int(time.Since(s.ExerciseStartTime).Seconds())
	if timeSpent < 0 {
		timeSpent = 0
	}

	starsAward := 0
	score := 0
	if correct {
		starsAward, _ = scoring.StarRating(s.AttemptsOnCurrent)
		// Score scales with the star share of a first-try solve.
		score = ex.MaxScore * starsAward / scoring.MaxStars
		s.TotalCorrect++
	}
	s.StarsEarned += starsAward
	s.LastStars = starsAward

	s.Results = append(s.Results, stats.Result{
		ID:            uuid.NewString(),
		ProfileID:     s.ProfileID,
		ExerciseID:    ex.ID,
		AreaID:        ex.AreaID,
		ThemeID:       ex.ThemeID,
		Level:         ex.Level,
		Correct:       correct,
		Score:         score,
		Attempts:      s.AttemptsOnCurrent,
		TimeSpentSecs: timeSpent,
		CompletedAt:   time.Now(),
	})

	s.Phase = PhaseFeedback
}

// Advance moves past the feedback overlay to the next exercise, or into
// the summary phase when the queue is exhausted.
func (s *State) Advance() {
	if s.Phase != PhaseFeedback {
		return
	}
	s.Index++
	s.AttemptsOnCurrent = 0
	s.ExerciseStartTime = time.Now()
	if s.Done() {
		s.Phase = PhaseSummary
		return
	}
	s.Phase = PhaseActive
}

// answersMatch compares a learner answer with the canonical one,
// ignoring case and surrounding whitespace.
func answersMatch(got, want string) bool {
	return strings.EqualFold(strings.TrimSpace(got), strings.TrimSpace(want))
}

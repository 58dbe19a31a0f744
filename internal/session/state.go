package session

import (
	"time"

	"github.com/lernbox/lernbox/internal/exercises"
	"github.com/lernbox/lernbox/internal/stats"
)

// Phase represents the current phase of a practice session.
type Phase int

const (
	PhaseActive   Phase = iota // Serving exercises
	PhaseFeedback              // Showing answer feedback
	PhaseSummary               // Showing the summary screen
)

// MaxAttemptsPerExercise is how many tries the learner gets before the
// exercise counts as failed and the session moves on.
const MaxAttemptsPerExercise = 3

// ExercisesPerSession is the default number of exercises in one run.
const ExercisesPerSession = 6

// State tracks the runtime state of an active practice session.
type State struct {
	// SessionID is the UUID for this session.
	SessionID string

	// ProfileID is the learner running the session.
	ProfileID string

	// ThemeID and Level identify what is being practiced.
	ThemeID string
	Level   int

	// Queue is the ordered list of exercises for this run.
	Queue []exercises.Exercise

	// Index points at the current exercise in Queue.
	Index int

	// AttemptsOnCurrent counts tries on the current exercise so far.
	AttemptsOnCurrent int

	// Results collects one record per finished exercise.
	Results []stats.Result

	// StarsEarned is the running star total for the summary.
	StarsEarned int

	// TotalCorrect counts solved exercises.
	TotalCorrect int

	// Phase is the current session phase.
	Phase Phase

	// LastAnswerCorrect records the outcome of the most recent submit.
	LastAnswerCorrect bool

	// LastStars is the star award shown in the feedback overlay.
	LastStars int

	// ShowingQuitConfirm is true while the quit dialog is displayed.
	ShowingQuitConfirm bool

	// StartTime is when the session began.
	StartTime time.Time

	// ExerciseStartTime is when the current exercise was first shown.
	ExerciseStartTime time.Time
}

// Current returns the active exercise, or nil when the queue is done.
func (s *State) Current() *exercises.Exercise {
	if s.Index < 0 || s.Index >= len(s.Queue) {
		return nil
	}
	return &s.Queue[s.Index]
}

// Done reports whether every exercise has been finished.
func (s *State) Done() bool {
	return s.Index >= len(s.Queue)
}

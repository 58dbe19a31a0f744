package session

import (
	"time"

	"github.com/lernbox/lernbox/internal/scoring"
)

// Summary holds the data displayed on the session summary screen.
type Summary struct {
	SessionID      string
	ThemeID        string
	Level          int
	Duration       time.Duration
	TotalExercises int
	TotalCorrect   int
	Accuracy       float64
	StarsEarned    int
	MaxStars       int
	PerfectRun     bool
}

// BuildSummary creates a Summary from the finished session state.
func BuildSummary(state *State) *Summary {
	total := len(state.Results)

	var accuracy float64
	if total > 0 {
		accuracy = float64(state.TotalCorrect) / float64(total) * 100
	}

	maxStars := total * scoring.MaxStars
	perfect := total > 0 && state.StarsEarned == maxStars

	return &Summary{
		SessionID:      state.SessionID,
		ThemeID:        state.ThemeID,
		Level:          state.Level,
		Duration:       time.Since(state.StartTime),
		TotalExercises: total,
		TotalCorrect:   state.TotalCorrect,
		Accuracy:       accuracy,
		StarsEarned:    state.StarsEarned,
		MaxStars:       maxStars,
		PerfectRun:     perfect,
	}
}

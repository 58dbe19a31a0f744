// Package session drives one practice run on screen: picking exercises,
// checking answers, and recording results.
package session

import (
	"context"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/lernbox/lernbox/internal/badges"
	"github.com/lernbox/lernbox/internal/catalog"
	"github.com/lernbox/lernbox/internal/exercises"
	"github.com/lernbox/lernbox/internal/progress"
	"github.com/lernbox/lernbox/internal/router"
	"github.com/lernbox/lernbox/internal/screen"
	"github.com/lernbox/lernbox/internal/screens/summary"
	sess "github.com/lernbox/lernbox/internal/session"
	"github.com/lernbox/lernbox/internal/store"
	"github.com/lernbox/lernbox/internal/ui/components"
	"github.com/lernbox/lernbox/internal/ui/layout"
)

// SessionScreen implements screen.Screen for an active practice run.
type SessionScreen struct {
	profileID string
	themeID   string
	level     int

	bank      *exercises.Bank
	eventRepo store.EventRepo
	loader    *progress.Loader
	badgeSvc  *badges.Service

	state    *sess.State
	input    components.TextInput
	mc       components.MultiChoice
	mcActive bool
	errMsg   string
	ending   bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a SessionScreen with injected dependencies.
func New(profileID, themeID string, level int, bank *exercises.Bank, eventRepo store.EventRepo, loader *progress.Loader, badgeSvc *badges.Service) *SessionScreen {
	return &SessionScreen{
		profileID: profileID,
		themeID:   themeID,
		level:     level,
		bank:      bank,
		eventRepo: eventRepo,
		loader:    loader,
		badgeSvc:  badgeSvc,
		input:     components.NewTextInput("Type your answer...", 30),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	if s.badgeSvc != nil {
		s.badgeSvc.ResetSession()
	}
	return tea.Batch(
		s.initSession(),
		s.input.Init(),
	)
}

func (s *SessionScreen) Title() string {
	if t, ok := catalog.ThemeByID(s.themeID); ok {
		return t.Name
	}
	return "Practice"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.state == nil {
		return nil
	}
	if s.state.ShowingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.state.Phase == sess.PhaseFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+G", Description: "Give up"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionInitMsg:
		return s.handleInit(msg)

	case sessionEndMsg:
		return s.handleSessionEnd(msg)

	case sessionFinishedMsg:
		return s.handleFinished(msg)

	case resultPersistedMsg:
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward other messages to the text input while it is active.
	if s.state != nil && s.state.Phase == sess.PhaseActive && !s.state.ShowingQuitConfirm && !s.mcActive {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// initSession picks the exercise queue, weighting previously failed
// exercises, and records the session start.
func (s *SessionScreen) initSession() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		failures, err := s.eventRepo.ExerciseFailureCounts(ctx, s.profileID)
		if err != nil {
			return sessionInitMsg{Err: err}
		}

		picker := exercises.NewPicker(s.bank, rand.New(rand.NewSource(time.Now().UnixNano())))
		state, err := sess.Start(s.profileID, s.themeID, s.level, picker, failures)
		if err != nil {
			return sessionInitMsg{Err: err}
		}

		_ = s.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID: state.SessionID,
			ProfileID: s.profileID,
			Action:    "started",
			ThemeID:   s.themeID,
			Level:     s.level,
		})

		return sessionInitMsg{State: state}
	}
}

func (s *SessionScreen) handleInit(msg sessionInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.state = msg.State
	s.setupInput()
	return s, s.input.Init()
}

// setupInput prepares the answer widget for the current exercise.
func (s *SessionScreen) setupInput() {
	ex := s.state.Current()
	if ex == nil {
		return
	}
	if ex.Format == exercises.FormatMultipleChoice {
		s.mcActive = true
		s.mc = components.NewMultiChoice(ex.Choices)
	} else {
		s.mcActive = false
		s.input = components.NewTextInput("Type your answer...", 30)
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state — any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.state == nil || s.ending {
		return s, nil
	}

	// Quit confirmation dialog.
	if s.state.ShowingQuitConfirm {
		switch key {
		case "y", "Y":
			s.state.ShowingQuitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{Abandoned: true} }
		case "n", "N", "esc":
			s.state.ShowingQuitConfirm = false
			return s, nil
		}
		return s, nil
	}

	// Feedback overlay — any key advances.
	if s.state.Phase == sess.PhaseFeedback {
		s.state.Advance()
		if s.state.Phase == sess.PhaseSummary {
			return s, func() tea.Msg { return sessionEndMsg{} }
		}
		s.setupInput()
		return s, s.input.Init()
	}

	if s.state.Phase != sess.PhaseActive {
		return s, nil
	}

	switch key {
	case "esc":
		s.state.ShowingQuitConfirm = true
		return s, nil
	case "ctrl+g":
		s.state.GiveUp()
		return s, s.persistLastResult()
	case "enter":
		return s.submitAnswer()
	}

	// Multiple choice: the selector handles arrows, a number key picks
	// and submits in one stroke.
	if s.mcActive {
		var chosen bool
		s.mc, chosen = s.mc.Update(msg)
		if chosen {
			return s.submitAnswer()
		}
		return s, nil
	}

	// Forward to text input.
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer checks the current answer and persists the result when the
// exercise is finished.
func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	ex := s.state.Current()
	if ex == nil {
		return s, nil
	}

	var answer string
	if s.mcActive {
		answer = s.mc.Value()
	} else {
		answer = s.input.Value()
		if answer == "" {
			return s, nil
		}
	}

	correct := s.state.Submit(answer)
	if !s.mcActive {
		s.input.Submit(correct)
	}

	// Still in the active phase means another attempt is allowed.
	if s.state.Phase != sess.PhaseFeedback {
		if !s.mcActive {
			s.input.Reset()
		}
		return s, nil
	}

	return s, s.persistLastResult()
}

// persistLastResult appends the newest finished exercise result.
func (s *SessionScreen) persistLastResult() tea.Cmd {
	if len(s.state.Results) == 0 {
		return nil
	}
	r := s.state.Results[len(s.state.Results)-1]
	sessionID := s.state.SessionID
	return func() tea.Msg {
		err := s.eventRepo.AppendResult(context.Background(), store.ResultEventData{
			ResultID:      r.ID,
			ProfileID:     r.ProfileID,
			SessionID:     sessionID,
			ExerciseID:    r.ExerciseID,
			AreaID:        r.AreaID,
			ThemeID:       r.ThemeID,
			Level:         r.Level,
			Correct:       r.Correct,
			Score:         r.Score,
			Attempts:      r.Attempts,
			TimeSpentSecs: r.TimeSpentSecs,
		})
		return resultPersistedMsg{Err: err}
	}
}

// handleSessionEnd records the session event, refreshes cached progress,
// and evaluates badges before showing the summary.
func (s *SessionScreen) handleSessionEnd(msg sessionEndMsg) (screen.Screen, tea.Cmd) {
	if s.state == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	s.ending = true
	state := s.state
	abandoned := msg.Abandoned

	return s, func() tea.Msg {
		ctx := context.Background()

		action := "completed"
		if abandoned {
			action = "abandoned"
		}
		_ = s.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:       state.SessionID,
			ProfileID:       s.profileID,
			Action:          action,
			ThemeID:         state.ThemeID,
			Level:           state.Level,
			ExercisesServed: len(state.Results),
			CorrectAnswers:  state.TotalCorrect,
			StarsEarned:     state.StarsEarned,
			DurationSecs:    int(time.Since(state.StartTime).Seconds()),
		})

		sum := sess.BuildSummary(state)
		if abandoned {
			return sessionFinishedMsg{Summary: sum}
		}

		cache, err := s.loader.Load(ctx, s.profileID)
		if err != nil {
			return sessionFinishedMsg{Summary: sum, Err: err}
		}

		awarded := s.evaluateBadges(ctx, state, cache)
		return sessionFinishedMsg{Summary: sum, Badges: awarded}
	}
}

func (s *SessionScreen) evaluateBadges(ctx context.Context, state *sess.State, cache *store.StatsCache) []badges.Award {
	if s.badgeSvc == nil {
		return nil
	}

	records, _ := s.eventRepo.QuerySessionSummaries(ctx, s.profileID, store.QueryOpts{})
	totals := badges.Totals{
		Exercises: cache.Summary.Total,
		Stars:     cache.Summary.TotalStars,
	}
	for _, rec := range records {
		if rec.Action != "completed" {
			continue
		}
		totals.Sessions++
		if rec.ExercisesServed > 0 && rec.StarsEarned == rec.ExercisesServed*3 {
			totals.PerfectSessions++
		}
	}

	return s.badgeSvc.EvaluateSession(ctx, s.profileID, state.SessionID, totals,
		progress.GlobalLevel(cache), progress.CompletedThemes(cache), catalog.ThemeNames())
}

func (s *SessionScreen) handleFinished(msg sessionFinishedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(msg.Summary, msg.Badges)}
	}
}

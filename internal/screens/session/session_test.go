package session

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/lernbox/lernbox/internal/exercises"
	sess "github.com/lernbox/lernbox/internal/session"
)

func choiceBank(n int) *exercises.Bank {
	b := &exercises.Bank{}
	for i := 0; i < n; i++ {
		b.Exercises = append(b.Exercises, exercises.Exercise{
			ID:       "mc-test-" + strconv.Itoa(i),
			AreaID:   "math",
			ThemeID:  "numbers",
			Level:    1,
			Format:   exercises.FormatMultipleChoice,
			Prompt:   "2 + 2 = ?",
			Choices:  []string{"3", "4"},
			Answer:   "4",
			MaxScore: 10,
		})
	}
	return b
}

// choiceScreen builds a SessionScreen with a running state, bypassing the
// async init so key handling can be driven directly.
func choiceScreen(t *testing.T) *SessionScreen {
	t.Helper()
	bank := choiceBank(10)
	s := New("p1", "numbers", 1, bank, nil, nil, nil)

	picker := exercises.NewPicker(bank, rand.New(rand.NewSource(1)))
	state, err := sess.Start("p1", "numbers", 1, picker, nil)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.state = state
	s.setupInput()
	return s
}

func TestChoiceExerciseUsesSelector(t *testing.T) {
	s := choiceScreen(t)
	if !s.mcActive {
		t.Fatal("multiple choice exercise must activate the selector")
	}
	if len(s.mc.Choices) != 2 {
		t.Fatalf("selector choices = %d, want 2", len(s.mc.Choices))
	}
}

func TestChoiceArrowsMoveSelector(t *testing.T) {
	s := choiceScreen(t)

	s.handleKey(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.mc.Selected != 1 {
		t.Fatalf("selected = %d, want 1 after down", s.mc.Selected)
	}
	if s.state.Phase != sess.PhaseActive {
		t.Fatal("arrow navigation must not submit")
	}

	s.handleKey(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.mc.Selected != 0 {
		t.Fatalf("selected = %d, want 0 after up", s.mc.Selected)
	}
}

func TestChoiceNumberKeySubmits(t *testing.T) {
	s := choiceScreen(t)

	// "2" picks the second choice ("4", the right answer) and submits.
	s.handleKey(tea.KeyPressMsg{Code: '2', Text: "2"})
	if s.state.Phase != sess.PhaseFeedback {
		t.Fatalf("phase = %v, want feedback after a number pick", s.state.Phase)
	}
	if !s.state.LastAnswerCorrect {
		t.Fatal("picked choice must be submitted as the answer")
	}
	if s.state.LastStars != 3 {
		t.Fatalf("stars = %d, want 3 on first try", s.state.LastStars)
	}
}

func TestChoiceEnterSubmitsSelection(t *testing.T) {
	s := choiceScreen(t)

	// Leave the selection on the first choice ("3", wrong).
	s.handleKey(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.state.AttemptsOnCurrent != 1 {
		t.Fatalf("attempts = %d, want 1 after enter", s.state.AttemptsOnCurrent)
	}
	if s.state.Phase != sess.PhaseActive {
		t.Fatal("wrong answer with tries left must stay active")
	}

	// Move to the right answer and confirm with enter.
	s.handleKey(tea.KeyPressMsg{Code: tea.KeyDown})
	s.handleKey(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.state.Phase != sess.PhaseFeedback || !s.state.LastAnswerCorrect {
		t.Fatalf("phase = %v correct = %v, want correct feedback", s.state.Phase, s.state.LastAnswerCorrect)
	}
}

func TestChoiceViewShowsSelector(t *testing.T) {
	s := choiceScreen(t)

	view := s.View(80, 24)
	for _, want := range []string{"1) 3", "2) 4", "Select (1-4)"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

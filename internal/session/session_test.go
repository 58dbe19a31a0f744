package session

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/lernbox/lernbox/internal/exercises"
)

func testBank(n int) *exercises.Bank {
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

func startTestSession(t *testing.T, n int) *State {
	t.Helper()
	picker := exercises.NewPicker(testBank(n), rand.New(rand.NewSource(1)))
	s, err := Start("p1", "numbers", 1, picker, nil)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

func TestStartEmptyBank(t *testing.T) {
	picker := exercises.NewPicker(&exercises.Bank{}, rand.New(rand.NewSource(1)))
	if _, err := Start("p1", "numbers", 1, picker, nil); err != ErrNoExercises {
		t.Fatalf("expected ErrNoExercises, got %v", err)
	}
}

func TestStartFillsQueue(t *testing.T) {
	s := startTestSession(t, 10)
	if len(s.Queue) != ExercisesPerSession {
		t.Fatalf("queue length = %d, want %d", len(s.Queue), ExercisesPerSession)
	}
	if s.Phase != PhaseActive {
		t.Fatalf("phase = %v, want PhaseActive", s.Phase)
	}
	if s.SessionID == "" || s.ProfileID != "p1" {
		t.Fatalf("bad identifiers: %q %q", s.SessionID, s.ProfileID)
	}
}

func TestSubmitFirstTryCorrect(t *testing.T) {
	s := startTestSession(t, 6)
	if !s.Submit("4") {
		t.Fatal("correct answer rejected")
	}
	if s.Phase != PhaseFeedback {
		t.Fatalf("phase = %v, want PhaseFeedback", s.Phase)
	}
	if len(s.Results) != 1 {
		t.Fatalf("results = %d, want 1", len(s.Results))
	}
	r := s.Results[0]
	if !r.Correct || r.Attempts != 1 {
		t.Fatalf("result = %+v, want correct with 1 attempt", r)
	}
	if s.LastStars != 3 || s.StarsEarned != 3 {
		t.Fatalf("stars = %d/%d, want 3/3", s.LastStars, s.StarsEarned)
	}
	if r.Score != 10 {
		t.Fatalf("score = %d, want full 10", r.Score)
	}
}

func TestSubmitSecondTryCorrect(t *testing.T) {
	s := startTestSession(t, 6)
	if s.Submit("3") {
		t.Fatal("wrong answer accepted")
	}
	if s.Phase != PhaseActive {
		t.Fatalf("phase = %v, want PhaseActive after first miss", s.Phase)
	}
	if !s.Submit("4") {
		t.Fatal("correct answer rejected")
	}
	r := s.Results[0]
	if r.Attempts != 2 || s.LastStars != 2 {
		t.Fatalf("attempts = %d, stars = %d, want 2 and 2", r.Attempts, s.LastStars)
	}
}

func TestSubmitExhaustsAttempts(t *testing.T) {
	s := startTestSession(t, 6)
	for i := 0; i < MaxAttemptsPerExercise; i++ {
		s.Submit("3")
	}
	if s.Phase != PhaseFeedback {
		t.Fatalf("phase = %v, want PhaseFeedback after attempt limit", s.Phase)
	}
	r := s.Results[0]
	if r.Correct {
		t.Fatal("failed exercise recorded as correct")
	}
	if r.Attempts != MaxAttemptsPerExercise {
		t.Fatalf("attempts = %d, want %d", r.Attempts, MaxAttemptsPerExercise)
	}
	if r.Score != 0 || s.LastStars != 0 {
		t.Fatalf("failed exercise must earn nothing, got score %d stars %d", r.Score, s.LastStars)
	}
}

func TestAnswerMatchingIgnoresCaseAndSpace(t *testing.T) {
	picker := exercises.NewPicker(&exercises.Bank{Exercises: []exercises.Exercise{{
		ID:       "ti-test-0",
		AreaID:   "reading",
		ThemeID:  "numbers",
		Level:    1,
		Format:   exercises.FormatTextInput,
		Prompt:   "Type the word for 4",
		Answer:   "four",
		MaxScore: 10,
	}}}, rand.New(rand.NewSource(1)))
	s, err := Start("p1", "numbers", 1, picker, nil)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !s.Submit("  FOUR ") {
		t.Fatal("case and whitespace should be ignored")
	}
}

func TestGiveUp(t *testing.T) {
	s := startTestSession(t, 6)
	s.GiveUp()
	if s.Phase != PhaseFeedback {
		t.Fatalf("phase = %v, want PhaseFeedback", s.Phase)
	}
	r := s.Results[0]
	if r.Correct || r.Attempts != 1 {
		t.Fatalf("give-up result = %+v, want failed with 1 attempt", r)
	}
}

func TestAdvanceThroughSession(t *testing.T) {
	s := startTestSession(t, 6)
	for !s.Done() {
		if !s.Submit("4") {
			t.Fatal("correct answer rejected")
		}
		s.Advance()
	}
	if s.Phase != PhaseSummary {
		t.Fatalf("phase = %v, want PhaseSummary", s.Phase)
	}
	if len(s.Results) != ExercisesPerSession {
		t.Fatalf("results = %d, want %d", len(s.Results), ExercisesPerSession)
	}
	if s.TotalCorrect != ExercisesPerSession {
		t.Fatalf("correct = %d, want %d", s.TotalCorrect, ExercisesPerSession)
	}
}

func TestBuildSummary(t *testing.T) {
	s := startTestSession(t, 6)
	// Two correct on the first try, one failed, rest correct.
	s.Submit("4")
	s.Advance()
	s.Submit("4")
	s.Advance()
	for i := 0; i < MaxAttemptsPerExercise; i++ {
		s.Submit("3")
	}
	s.Advance()
	for !s.Done() {
		s.Submit("4")
		s.Advance()
	}

	sum := BuildSummary(s)
	if sum.TotalExercises != 6 || sum.TotalCorrect != 5 {
		t.Fatalf("summary counts = %d/%d, want 6/5", sum.TotalExercises, sum.TotalCorrect)
	}
	wantAccuracy := float64(5) / 6 * 100
	if sum.Accuracy < wantAccuracy-0.01 || sum.Accuracy > wantAccuracy+0.01 {
		t.Fatalf("accuracy = %f, want %f", sum.Accuracy, wantAccuracy)
	}
	if sum.StarsEarned != 15 || sum.MaxStars != 18 {
		t.Fatalf("stars = %d/%d, want 15/18", sum.StarsEarned, sum.MaxStars)
	}
	if sum.PerfectRun {
		t.Fatal("run with a miss must not be perfect")
	}
}

func TestBuildSummaryPerfectRun(t *testing.T) {
	s := startTestSession(t, 6)
	for !s.Done() {
		s.Submit("4")
		s.Advance()
	}
	sum := BuildSummary(s)
	if !sum.PerfectRun {
		t.Fatal("all first-try solves should be a perfect run")
	}
}

package stats

import (
	"math"
	"reflect"
	"testing"
	"time"
)

func mkResult(id, exerciseID, areaID, themeID string, level int, correct bool, score, attempts, timeSecs int) Result {
	return Result{
		ID:            id,
		ProfileID:     "p1",
		ExerciseID:    exerciseID,
		AreaID:        areaID,
		ThemeID:       themeID,
		Level:         level,
		Correct:       correct,
		Score:         score,
		Attempts:      attempts,
		TimeSpentSecs: timeSecs,
		CompletedAt:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 0.01 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestAggregate_Empty(t *testing.T) {
	s := Aggregate(nil)

	if s.Total != 0 || s.Correct != 0 || s.TotalStars != 0 || s.MaxStars != 0 {
		t.Errorf("empty aggregate totals = %+v, want all zero", s)
	}
	if s.Accuracy != 0 || s.StarCompletion != 0 || s.AverageAttempts != 0 || s.AverageTimeSecs != 0 {
		t.Errorf("empty aggregate ratios = %+v, want all zero", s)
	}
	if len(s.ByType) != 0 || len(s.ByArea) != 0 || len(s.ByLevel) != 0 {
		t.Errorf("empty aggregate groupings not empty: %+v", s)
	}
}

func TestAggregate_ThreeResults(t *testing.T) {
	results := []Result{
		mkResult("r1", "mc-add-1", "math", "numbers", 1, true, 3, 1, 20),
		mkResult("r2", "ti-add-2", "math", "numbers", 1, true, 2, 2, 40),
		mkResult("r3", "mc-sub-1", "math", "numbers", 2, false, 1, 3, 60),
	}

	s := Aggregate(results)

	if s.Total != 3 {
		t.Errorf("Total = %d, want 3", s.Total)
	}
	if s.Correct != 2 {
		t.Errorf("Correct = %d, want 2", s.Correct)
	}
	approx(t, "Accuracy", s.Accuracy, 66.67)
	if s.TotalStars != 5 { // 3 + 2 + 0
		t.Errorf("TotalStars = %d, want 5", s.TotalStars)
	}
	if s.MaxStars != 9 {
		t.Errorf("MaxStars = %d, want 9", s.MaxStars)
	}
	approx(t, "StarCompletion", s.StarCompletion, 55.56)
	approx(t, "AverageAttempts", s.AverageAttempts, 2)
	approx(t, "AverageTimeSecs", s.AverageTimeSecs, 40)
}

func TestAggregate_GroupByType(t *testing.T) {
	results := []Result{
		mkResult("r1", "mc-exercise-1", "math", "numbers", 1, true, 3, 1, 10),
		mkResult("r2", "mc-exercise-2", "math", "numbers", 1, false, 0, 3, 30),
	}

	s := Aggregate(results)

	g, ok := s.ByType["mc"]
	if !ok {
		t.Fatalf("no group for key %q, groups: %v", "mc", keys(s.ByType))
	}
	if g.Total != 2 || g.Correct != 1 {
		t.Errorf("group mc = total %d correct %d, want 2/1", g.Total, g.Correct)
	}
	approx(t, "group accuracy", g.Accuracy, 50)
	if g.TotalStars != 3 {
		t.Errorf("group stars = %d, want 3", g.TotalStars)
	}
	approx(t, "group avg attempts", g.AverageAttempts, 2)
}

func TestAggregate_TypeKeyFallback(t *testing.T) {
	// No separator in the exercise ID: the whole ID is the group key.
	results := []Result{
		mkResult("r1", "memory", "math", "numbers", 1, true, 3, 1, 10),
	}

	s := Aggregate(results)
	if _, ok := s.ByType["memory"]; !ok {
		t.Errorf("expected fallback group %q, got %v", "memory", keys(s.ByType))
	}
}

func TestAggregate_GroupByAreaAndLevel(t *testing.T) {
	results := []Result{
		mkResult("r1", "mc-a-1", "reading", "letters", 1, true, 3, 1, 10),
		mkResult("r2", "mc-a-2", "math", "numbers", 2, true, 3, 1, 10),
		mkResult("r3", "mc-a-3", "math", "numbers", 2, false, 0, 2, 10),
	}

	s := Aggregate(results)

	if g := s.ByArea["math"]; g == nil || g.Total != 2 || g.Correct != 1 {
		t.Errorf("ByArea[math] = %+v, want total 2 correct 1", s.ByArea["math"])
	}
	if g := s.ByArea["reading"]; g == nil || g.Total != 1 {
		t.Errorf("ByArea[reading] = %+v, want total 1", s.ByArea["reading"])
	}
	if g := s.ByLevel["level-2"]; g == nil || g.Total != 2 {
		t.Errorf("ByLevel[level-2] = %+v, want total 2", s.ByLevel["level-2"])
	}
}

func TestAggregate_GroupTotalsSumToOverall(t *testing.T) {
	results := []Result{
		mkResult("r1", "mc-a-1", "math", "numbers", 1, true, 3, 1, 10),
		mkResult("r2", "ti-b-1", "reading", "letters", 2, false, 0, 4, 25),
		mkResult("r3", "sort-c-1", "math", "shapes", 3, true, 2, 2, 15),
		mkResult("r4", "plain", "logic", "puzzles", 1, true, 1, 3, 5),
	}

	s := Aggregate(results)

	for name, m := range map[string]map[string]*GroupStat{"ByType": s.ByType, "ByArea": s.ByArea, "ByLevel": s.ByLevel} {
		sum := 0
		for _, g := range m {
			sum += g.Total
		}
		if sum != s.Total {
			t.Errorf("%s totals sum to %d, want %d", name, sum, s.Total)
		}
	}
}

func TestAggregate_SkipsInvalidRecords(t *testing.T) {
	results := []Result{
		mkResult("r1", "mc-a-1", "math", "numbers", 1, true, 3, 1, 10),
		mkResult("", "mc-a-2", "math", "numbers", 1, true, 3, 1, 10),   // no ID
		mkResult("r3", "mc-a-3", "math", "numbers", 1, true, 3, 0, 10), // zero attempts
		mkResult("r4", "mc-a-4", "math", "numbers", 0, true, 3, 1, 10), // zero level
		mkResult("r5", "mc-a-5", "math", "numbers", 1, true, 3, 1, -1), // negative time
	}

	s := Aggregate(results)

	if s.Total != 1 {
		t.Errorf("Total = %d, want 1", s.Total)
	}
	if s.Skipped != 4 {
		t.Errorf("Skipped = %d, want 4", s.Skipped)
	}
}

func TestAggregate_MaxStarsOption(t *testing.T) {
	results := []Result{
		mkResult("r1", "mc-a-1", "math", "numbers", 1, true, 3, 1, 10),
		mkResult("r2", "mc-a-2", "math", "numbers", 1, true, 3, 1, 10),
	}

	s := Aggregate(results, WithMaxStarsPerExercise(5))

	if s.MaxStars != 10 {
		t.Errorf("MaxStars = %d, want 10", s.MaxStars)
	}
	if s.TotalStars != 6 {
		t.Errorf("TotalStars = %d, want 6 (earning logic unaffected)", s.TotalStars)
	}
	approx(t, "StarCompletion", s.StarCompletion, 60)
}

func TestAggregate_Idempotent(t *testing.T) {
	results := []Result{
		mkResult("r1", "mc-a-1", "math", "numbers", 1, true, 3, 1, 20),
		mkResult("r2", "ti-b-1", "reading", "letters", 2, false, 0, 3, 60),
	}

	a := Aggregate(results)
	b := Aggregate(results)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("aggregate not idempotent:\n first = %+v\nsecond = %+v", a, b)
	}
}

func keys(m map[string]*GroupStat) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

package scoring

import (
	"math"
	"testing"
)

func defaultBreakpoints() []LevelBreakpoint {
	return []LevelBreakpoint{
		{Level: 2, StarsRequired: 10},
		{Level: 3, StarsRequired: 25},
		{Level: 4, StarsRequired: 45},
	}
}

func TestLevelFromStars(t *testing.T) {
	tests := []struct {
		stars int
		want  int
	}{
		{0, 1},
		{9, 1},
		{10, 2}, // exact boundary counts as met
		{24, 2},
		{25, 3},
		{44, 3},
		{45, 4},
		{1000, 4},
	}

	for _, tt := range tests {
		if got := LevelFromStars(tt.stars, defaultBreakpoints()); got != tt.want {
			t.Errorf("LevelFromStars(%d) = %d, want %d", tt.stars, got, tt.want)
		}
	}
}

func TestLevelFromStars_EmptyBreakpoints(t *testing.T) {
	for _, stars := range []int{0, 5, 9999} {
		if got := LevelFromStars(stars, nil); got != 1 {
			t.Errorf("LevelFromStars(%d, nil) = %d, want 1", stars, got)
		}
	}
}

func TestLevelFromStars_OrderIndependent(t *testing.T) {
	reversed := []LevelBreakpoint{
		{Level: 4, StarsRequired: 45},
		{Level: 2, StarsRequired: 10},
		{Level: 3, StarsRequired: 25},
	}
	for stars := 0; stars <= 50; stars++ {
		a := LevelFromStars(stars, defaultBreakpoints())
		b := LevelFromStars(stars, reversed)
		if a != b {
			t.Fatalf("LevelFromStars(%d) order-dependent: %d vs %d", stars, a, b)
		}
	}
}

func TestMeetsThreshold(t *testing.T) {
	tests := []struct {
		value, threshold float64
		want             bool
	}{
		{10, 10, true},
		{10.1, 10, true},
		{9.9, 10, false},
		{0, 0, true},
	}

	for _, tt := range tests {
		if got := MeetsThreshold(tt.value, tt.threshold); got != tt.want {
			t.Errorf("MeetsThreshold(%v, %v) = %v, want %v", tt.value, tt.threshold, got, tt.want)
		}
	}
}

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		part, whole float64
		want        float64
	}{
		{0, 0, 0},
		{5, 0, 0}, // zero whole never divides
		{0, 10, 0},
		{5, 10, 50},
		{10, 10, 100},
		{15, 10, 100}, // clamped
		{-5, 10, 0},   // clamped
		{2, 3, 66.666666},
	}

	for _, tt := range tests {
		got := ProgressPercent(tt.part, tt.whole)
		if math.Abs(got-tt.want) > 0.001 {
			t.Errorf("ProgressPercent(%v, %v) = %v, want %v", tt.part, tt.whole, got, tt.want)
		}
	}
}

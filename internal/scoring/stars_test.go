package scoring

import (
	"errors"
	"testing"
)

func TestStarRating(t *testing.T) {
	tests := []struct {
		attempts int
		want     int
	}{
		{1, 3},
		{2, 2},
		{3, 1},
		{4, 1},
		{10, 1},
		{100, 1},
	}

	for _, tt := range tests {
		got, err := StarRating(tt.attempts)
		if err != nil {
			t.Errorf("StarRating(%d) error: %v", tt.attempts, err)
			continue
		}
		if got != tt.want {
			t.Errorf("StarRating(%d) = %d, want %d", tt.attempts, got, tt.want)
		}
	}
}

func TestStarRating_InvalidAttempts(t *testing.T) {
	for _, attempts := range []int{0, -1, -100} {
		_, err := StarRating(attempts)
		if !errors.Is(err, ErrInvalidAttempts) {
			t.Errorf("StarRating(%d) error = %v, want ErrInvalidAttempts", attempts, err)
		}
	}
}

func TestStarsDisplay(t *testing.T) {
	tests := []struct {
		stars int
		want  string
	}{
		{-1, "–"},
		{0, "–"},
		{1, "★"},
		{2, "★★"},
		{3, "★★★"},
		{4, "★★★"},
		{99, "★★★"},
	}

	for _, tt := range tests {
		if got := StarsDisplay(tt.stars); got != tt.want {
			t.Errorf("StarsDisplay(%d) = %q, want %q", tt.stars, got, tt.want)
		}
	}
}

func TestStarsDisplay_CappedLength(t *testing.T) {
	// Display length grows up to 3 stars, then stays constant.
	prev := 0
	for n := 1; n <= 3; n++ {
		l := len([]rune(StarsDisplay(n)))
		if l <= prev {
			t.Errorf("StarsDisplay(%d) length %d, want > %d", n, l, prev)
		}
		prev = l
	}
	for n := 4; n <= 8; n++ {
		if l := len([]rune(StarsDisplay(n))); l != prev {
			t.Errorf("StarsDisplay(%d) length %d, want capped at %d", n, l, prev)
		}
	}
}

package scoring

import (
	"errors"
	"fmt"
	"strings"
)

// MaxStars is the highest star rating a single exercise can earn.
const MaxStars = 3

// ErrInvalidAttempts is returned when an attempt count below 1 is rated.
// Attempt counts are never clamped; a zero or negative count means the
// caller is feeding corrupt data into the star accounting.
var ErrInvalidAttempts = errors.New("attempts must be at least 1")

// StarRating maps the number of attempts needed to solve an exercise to a
// star rating: first try earns 3 stars, second try 2, anything later 1.
// The caller is responsible for awarding 0 stars to incorrect or abandoned
// exercises; this function assumes a completed one.
func StarRating(attempts int) (int, error) {
	if attempts < 1 {
		return 0, fmt.Errorf("rate %d attempts: %w", attempts, ErrInvalidAttempts)
	}
	switch attempts {
	case 1:
		return 3, nil
	case 2:
		return 2, nil
	default:
		return 1, nil
	}
}

// StarsDisplay renders a star count for a single exercise. Counts above
// MaxStars are capped; aggregated star totals can legitimately exceed 3,
// but a single exercise never shows more.
func StarsDisplay(stars int) string {
	if stars <= 0 {
		return "–"
	}
	if stars > MaxStars {
		stars = MaxStars
	}
	return strings.Repeat("★", stars)
}

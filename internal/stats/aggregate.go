package stats

import "github.com/lernbox/lernbox/internal/scoring"

// GroupStat is the sub-aggregate for one grouping key.
type GroupStat struct {
	Total           int
	Correct         int
	Accuracy        float64
	TotalStars      int
	AverageAttempts float64

	attemptsSum int
}

// Summary holds aggregate statistics over a result collection. It is
// derived data, recomputed on demand; nothing here is persisted directly.
type Summary struct {
	Total           int
	Correct         int
	Accuracy        float64
	TotalStars      int
	MaxStars        int
	StarCompletion  float64
	AverageAttempts float64
	AverageTimeSecs float64

	ByType  map[string]*GroupStat
	ByArea  map[string]*GroupStat
	ByLevel map[string]*GroupStat

	// Skipped counts records that failed validation and were excluded
	// from every total above. A bad record never aborts the pass.
	Skipped int
}

// Option configures an aggregation pass.
type Option func(*config)

type config struct {
	maxStarsPerExercise int
}

// WithMaxStarsPerExercise overrides the per-exercise star ceiling used for
// the max-possible-star sum (and thus star completion). It does not change
// how stars are earned.
func WithMaxStarsPerExercise(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxStarsPerExercise = n
		}
	}
}

// Aggregate folds results into a Summary in a single pass. Order of the
// input is irrelevant; the function is pure and idempotent. Invalid
// records are skipped and counted, never fatal.
func Aggregate(results []Result, opts ...Option) *Summary {
	cfg := config{maxStarsPerExercise: scoring.MaxStars}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Summary{
		ByType:  make(map[string]*GroupStat),
		ByArea:  make(map[string]*GroupStat),
		ByLevel: make(map[string]*GroupStat),
	}

	attemptsSum := 0
	timeSum := 0

	for i := range results {
		r := &results[i]
		if err := r.Validate(); err != nil {
			s.Skipped++
			continue
		}

		stars := 0
		if r.Correct {
			// Validate guarantees attempts >= 1, so the rating
			// cannot fail here.
			stars, _ = scoring.StarRating(r.Attempts)
		}

		s.Total++
		if r.Correct {
			s.Correct++
		}
		s.TotalStars += stars
		s.MaxStars += cfg.maxStarsPerExercise
		attemptsSum += r.Attempts
		timeSum += r.TimeSpentSecs

		record(s.ByType, r.TypeKey(), r.Correct, r.Attempts, stars)
		record(s.ByArea, r.AreaID, r.Correct, r.Attempts, stars)
		record(s.ByLevel, r.LevelKey(), r.Correct, r.Attempts, stars)
	}

	s.Accuracy = scoring.ProgressPercent(float64(s.Correct), float64(s.Total))
	s.StarCompletion = scoring.ProgressPercent(float64(s.TotalStars), float64(s.MaxStars))
	if s.Total > 0 {
		s.AverageAttempts = float64(attemptsSum) / float64(s.Total)
		s.AverageTimeSecs = float64(timeSum) / float64(s.Total)
	}

	for _, m := range []map[string]*GroupStat{s.ByType, s.ByArea, s.ByLevel} {
		for _, g := range m {
			g.Accuracy = scoring.ProgressPercent(float64(g.Correct), float64(g.Total))
			g.AverageAttempts = float64(g.attemptsSum) / float64(g.Total)
		}
	}

	return s
}

func record(m map[string]*GroupStat, key string, correct bool, attempts, stars int) {
	g, ok := m[key]
	if !ok {
		g = &GroupStat{}
		m[key] = g
	}
	g.Total++
	if correct {
		g.Correct++
	}
	g.TotalStars += stars
	g.attemptsSum += attempts
}

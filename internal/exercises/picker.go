package exercises

import (
	"math/rand"
)

// Picker selects exercises for a practice session. Selection is weighted
// toward exercises the profile has previously gotten wrong, so weak spots
// come around more often.
type Picker struct {
	bank *Bank
	rng  *rand.Rand
}

// NewPicker creates a Picker over the given bank. A nil rng uses the
// shared global source.
func NewPicker(bank *Bank, rng *rand.Rand) *Picker {
	return &Picker{bank: bank, rng: rng}
}

// Pick returns up to count exercises for the theme and level, shuffled.
// failures maps exercise IDs to how often the profile has failed them;
// exercises with more failures are more likely to be included when the
// pool is larger than count.
func (p *Picker) Pick(themeID string, level, count int, failures map[string]int) []Exercise {
	pool := p.bank.ForThemeLevel(themeID, level)
	if len(pool) == 0 {
		return nil
	}

	if count <= 0 || count >= len(pool) {
		picked := make([]Exercise, len(pool))
		copy(picked, pool)
		p.shuffle(picked)
		return picked
	}

	picked := p.weightedSample(pool, count, failures)
	p.shuffle(picked)
	return picked
}

// weightedSample draws count exercises without replacement. Every
// exercise has base weight 1; each recorded failure adds 1.
func (p *Picker) weightedSample(pool []Exercise, count int, failures map[string]int) []Exercise {
	remaining := make([]Exercise, len(pool))
	copy(remaining, pool)

	picked := make([]Exercise, 0, count)
	for len(picked) < count && len(remaining) > 0 {
		total := 0
		for _, e := range remaining {
			total += 1 + failures[e.ID]
		}

		roll := p.intn(total)
		idx := 0
		for i, e := range remaining {
			roll -= 1 + failures[e.ID]
			if roll < 0 {
				idx = i
				break
			}
		}

		picked = append(picked, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return picked
}

func (p *Picker) shuffle(exs []Exercise) {
	swap := func(i, j int) { exs[i], exs[j] = exs[j], exs[i] }
	if p.rng != nil {
		p.rng.Shuffle(len(exs), swap)
		return
	}
	rand.Shuffle(len(exs), swap)
}

func (p *Picker) intn(n int) int {
	if p.rng != nil {
		return p.rng.Intn(n)
	}
	return rand.Intn(n)
}

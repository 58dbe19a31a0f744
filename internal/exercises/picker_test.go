package exercises

import (
	"math/rand"
	"testing"
)

func testBank() *Bank {
	return &Bank{Exercises: []Exercise{
		{ID: "mc-a-1", ThemeID: "numbers", Level: 1, Format: FormatMultipleChoice, Choices: []string{"x", "y"}, Answer: "x"},
		{ID: "mc-a-2", ThemeID: "numbers", Level: 1, Format: FormatMultipleChoice, Choices: []string{"x", "y"}, Answer: "x"},
		{ID: "ti-a-3", ThemeID: "numbers", Level: 1, Format: FormatTextInput, Answer: "1"},
		{ID: "ti-a-4", ThemeID: "numbers", Level: 2, Format: FormatTextInput, Answer: "2"},
		{ID: "mc-b-1", ThemeID: "shapes", Level: 1, Format: FormatMultipleChoice, Choices: []string{"x", "y"}, Answer: "y"},
	}}
}

func TestPick_EmptyPool(t *testing.T) {
	p := NewPicker(testBank(), rand.New(rand.NewSource(1)))
	if got := p.Pick("numbers", 4, 5, nil); got != nil {
		t.Errorf("expected nil for empty pool, got %v", got)
	}
}

func TestPick_WholePoolWhenCountLarge(t *testing.T) {
	p := NewPicker(testBank(), rand.New(rand.NewSource(1)))
	got := p.Pick("numbers", 1, 10, nil)
	if len(got) != 3 {
		t.Fatalf("got %d exercises, want 3", len(got))
	}
	for _, e := range got {
		if e.ThemeID != "numbers" || e.Level != 1 {
			t.Errorf("picked exercise outside theme/level: %+v", e)
		}
	}
}

func TestPick_CountRespected(t *testing.T) {
	p := NewPicker(testBank(), rand.New(rand.NewSource(1)))
	got := p.Pick("numbers", 1, 2, nil)
	if len(got) != 2 {
		t.Fatalf("got %d exercises, want 2", len(got))
	}
	if got[0].ID == got[1].ID {
		t.Error("sampled the same exercise twice")
	}
}

func TestPick_FailureWeighting(t *testing.T) {
	// With a heavy failure count the weak exercise should dominate the
	// single-slot draws.
	bank := testBank()
	failures := map[string]int{"ti-a-3": 50}

	rng := rand.New(rand.NewSource(7))
	p := NewPicker(bank, rng)

	hits := 0
	const draws = 200
	for i := 0; i < draws; i++ {
		got := p.Pick("numbers", 1, 1, failures)
		if len(got) != 1 {
			t.Fatalf("got %d exercises, want 1", len(got))
		}
		if got[0].ID == "ti-a-3" {
			hits++
		}
	}

	// Weight 51 of 53 total: near-certain. Well above the unweighted 1/3.
	if hits < draws*8/10 {
		t.Errorf("weak exercise drawn %d/%d times, want at least 80%%", hits, draws)
	}
}

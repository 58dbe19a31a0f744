package exercises

import (
	"strings"
	"testing"
)

func TestDefaultBankLoads(t *testing.T) {
	bank, err := DefaultBank()
	if err != nil {
		t.Fatalf("default bank: %v", err)
	}
	if len(bank.Exercises) == 0 {
		t.Fatal("default bank is empty")
	}
}

func TestDefaultBankCoversAllLevels(t *testing.T) {
	bank, err := DefaultBank()
	if err != nil {
		t.Fatalf("default bank: %v", err)
	}

	for _, themeID := range []string{"numbers", "shapes", "letters", "words", "puzzles"} {
		for level := 1; level <= 4; level++ {
			if len(bank.ForThemeLevel(themeID, level)) == 0 {
				t.Errorf("theme %q has no exercises at level %d", themeID, level)
			}
		}
	}
}

func TestParse_Valid(t *testing.T) {
	raw := []byte(`{"exercises": [
		{"id": "mc-t-1", "area_id": "math", "theme_id": "numbers", "level": 1,
		 "format": "multiple_choice", "prompt": "Pick one", "choices": ["a", "b"],
		 "answer": "a", "max_score": 3}
	]}`)

	bank, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(bank.Exercises) != 1 || bank.Exercises[0].ID != "mc-t-1" {
		t.Errorf("bank = %+v", bank)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			"not JSON",
			`{`,
			"invalid JSON",
		},
		{
			"missing required field",
			`{"exercises": [{"id": "mc-t-1"}]}`,
			"schema validation failed",
		},
		{
			"level out of range",
			`{"exercises": [{"id": "mc-t-1", "area_id": "math", "theme_id": "numbers",
			 "level": 5, "format": "multiple_choice", "prompt": "x",
			 "choices": ["a", "b"], "answer": "a", "max_score": 3}]}`,
			"schema validation failed",
		},
		{
			"uppercase ID rejected by pattern",
			`{"exercises": [{"id": "MC-t-1", "area_id": "math", "theme_id": "numbers",
			 "level": 1, "format": "multiple_choice", "prompt": "x",
			 "choices": ["a", "b"], "answer": "a", "max_score": 3}]}`,
			"schema validation failed",
		},
		{
			"unknown theme",
			`{"exercises": [{"id": "mc-t-1", "area_id": "math", "theme_id": "nope",
			 "level": 1, "format": "multiple_choice", "prompt": "x",
			 "choices": ["a", "b"], "answer": "a", "max_score": 3}]}`,
			"unknown theme",
		},
		{
			"answer not among choices",
			`{"exercises": [{"id": "mc-t-1", "area_id": "math", "theme_id": "numbers",
			 "level": 1, "format": "multiple_choice", "prompt": "x",
			 "choices": ["a", "b"], "answer": "c", "max_score": 3}]}`,
			"not among the choices",
		},
		{
			"duplicate IDs",
			`{"exercises": [
			 {"id": "ti-t-1", "area_id": "math", "theme_id": "numbers", "level": 1,
			  "format": "text_input", "prompt": "x", "answer": "1", "max_score": 3},
			 {"id": "ti-t-1", "area_id": "math", "theme_id": "numbers", "level": 1,
			  "format": "text_input", "prompt": "y", "answer": "2", "max_score": 3}
			]}`,
			"duplicate exercise ID",
		},
		{
			"text input with choices",
			`{"exercises": [{"id": "ti-t-1", "area_id": "math", "theme_id": "numbers",
			 "level": 1, "format": "text_input", "prompt": "x",
			 "choices": ["a", "b"], "answer": "a", "max_score": 3}]}`,
			"must not have choices",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestTypePrefix(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"mc-add-07", "mc"},
		{"cloze-word-03", "cloze"},
		{"memory", "memory"}, // no separator: whole ID
	}

	for _, tt := range tests {
		e := Exercise{ID: tt.id}
		if got := e.TypePrefix(); got != tt.want {
			t.Errorf("TypePrefix(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

package exercises

// Format describes how the learner answers an exercise.
type Format string

const (
	// FormatMultipleChoice means the learner picks from the choices.
	FormatMultipleChoice Format = "multiple_choice"

	// FormatTextInput means the learner types the answer.
	FormatTextInput Format = "text_input"
)

// Exercise is one item from the content bank, ready for display.
type Exercise struct {
	// ID is the exercise identifier. Its prefix before the first "-"
	// names the exercise type and doubles as the statistics grouping
	// key, e.g. "mc-add-07" is a multiple-choice exercise.
	ID string `json:"id"`

	// AreaID and ThemeID place the exercise in the catalog.
	AreaID  string `json:"area_id"`
	ThemeID string `json:"theme_id"`

	// Level is the theme level (1-4) the exercise belongs to.
	Level int `json:"level"`

	// Format indicates how the learner answers.
	Format Format `json:"format"`

	// Prompt is the text shown to the learner.
	Prompt string `json:"prompt"`

	// Choices is populated only for multiple-choice exercises.
	Choices []string `json:"choices,omitempty"`

	// Answer is the canonical correct answer. For multiple choice it
	// matches one of the choices exactly.
	Answer string `json:"answer"`

	// MaxScore is the points awarded for a first-try solve.
	MaxScore int `json:"max_score"`
}

// TypePrefix returns the exercise type prefix of the ID, or the whole ID
// when no separator is present.
func (e *Exercise) TypePrefix() string {
	for i := 0; i < len(e.ID); i++ {
		if e.ID[i] == '-' {
			return e.ID[:i]
		}
	}
	return e.ID
}

// Bank is a loaded and validated set of exercises.
type Bank struct {
	Exercises []Exercise `json:"exercises"`
}

// ForThemeLevel returns all exercises of the given theme and level, in
// bank order.
func (b *Bank) ForThemeLevel(themeID string, level int) []Exercise {
	var out []Exercise
	for _, e := range b.Exercises {
		if e.ThemeID == themeID && e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

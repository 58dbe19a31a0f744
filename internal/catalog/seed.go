package catalog

func init() {
	c = &Catalog{
		Areas: []Area{
			{ID: "math", Name: "Math"},
			{ID: "reading", Name: "Reading"},
			{ID: "logic", Name: "Logic"},
		},
		Themes: []Theme{
			{ID: "numbers", Name: "Numbers", AreaID: "math", Icon: "🔢"},
			{ID: "shapes", Name: "Shapes", AreaID: "math", Icon: "🔷"},
			{ID: "letters", Name: "Letters", AreaID: "reading", Icon: "🔤"},
			{ID: "words", Name: "Words", AreaID: "reading", Icon: "📖"},
			{ID: "puzzles", Name: "Puzzles", AreaID: "logic", Icon: "🧩"},
		},
		ExerciseTypes: []ExerciseType{
			{Prefix: "mc", Name: "Multiple Choice"},
			{Prefix: "ti", Name: "Type the Answer"},
			{Prefix: "sort", Name: "Sorting"},
			{Prefix: "cloze", Name: "Fill the Gap"},
		},
	}

	if err := Validate(); err != nil {
		panic(err)
	}
}

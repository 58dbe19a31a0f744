package exercises

// bankSchema defines the JSON schema an exercise bank file must satisfy.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"exercises": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
						"pattern":   "^[a-z]+(-[a-z0-9]+)*$",
					},
					"area_id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"theme_id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"level": map[string]any{
						"type":    "integer",
						"minimum": 1,
						"maximum": 4,
					},
					"format": map[string]any{
						"type": "string",
						"enum": []any{"multiple_choice", "text_input"},
					},
					"prompt": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"choices": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": 2,
						"maxItems": 4,
					},
					"answer": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"max_score": map[string]any{
						"type":    "integer",
						"minimum": 1,
					},
				},
				"required":             []any{"id", "area_id", "theme_id", "level", "format", "prompt", "answer", "max_score"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"exercises"},
	"additionalProperties": false,
}

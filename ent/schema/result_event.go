package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResultEvent records one finished exercise attempt. Records are
// append-only: retrying an exercise appends a new event, nothing is ever
// updated in place.
type ResultEvent struct {
	ent.Schema
}

func (ResultEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResultEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("result_id").
			Unique().
			NotEmpty().
			Comment("UUID of this result record"),
		field.String("profile_id").
			NotEmpty().
			Comment("Profile that produced the result"),
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("exercise_id").
			NotEmpty().
			Comment("Exercise identifier, type prefix before the first dash"),
		field.String("area_id").
			NotEmpty().
			Comment("Area the exercise belongs to"),
		field.String("theme_id").
			NotEmpty().
			Comment("Theme the exercise belongs to"),
		field.Int("level").
			Min(1).
			Comment("Theme level of the exercise"),
		field.Bool("correct").
			Comment("Whether the exercise was solved"),
		field.Int("score").
			Min(0).
			Comment("Points earned"),
		field.Int("attempts").
			Min(1).
			Comment("Tries until solved or given up"),
		field.Int("time_spent_secs").
			Min(0).
			Comment("Seconds spent on the exercise"),
	}
}

func (ResultEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id"),
		index.Fields("session_id"),
		index.Fields("theme_id"),
		index.Fields("correct"),
	}
}

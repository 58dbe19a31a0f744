package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records the start or end of a practice session.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the session"),
		field.String("profile_id").
			NotEmpty().
			Comment("Profile that ran the session"),
		field.String("action").
			NotEmpty().
			Comment("started, completed, or abandoned"),
		field.String("theme_id").
			NotEmpty().
			Comment("Theme practiced in this session"),
		field.Int("level").
			Min(1).
			Comment("Level practiced"),
		field.Int("exercises_served").
			Min(0),
		field.Int("correct_answers").
			Min(0),
		field.Int("stars_earned").
			Min(0),
		field.Int("duration_secs").
			Min(0),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("profile_id"),
	}
}

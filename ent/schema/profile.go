package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile is one learner on this machine.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile_id").
			Unique().
			NotEmpty().
			Comment("UUID of the profile"),
		field.String("name").
			NotEmpty(),
		field.String("avatar").
			Default("🦊").
			Comment("Emoji shown next to the name"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_active_at").
			Default(time.Now),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}

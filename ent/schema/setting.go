package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Setting is one key/value settings entry. Profile-scoped entries carry
// the profile ID; app-wide entries (like the teacher PIN hash) use an
// empty profile ID.
type Setting struct {
	ent.Schema
}

func (Setting) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile_id").
			Default("").
			Comment("Empty for app-wide settings"),
		field.String("key").
			NotEmpty(),
		field.String("value"),
	}
}

func (Setting) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "key").
			Unique(),
	}
}

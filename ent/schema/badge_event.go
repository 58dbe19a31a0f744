package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BadgeEvent records a badge award. A badge key is awarded to a profile
// at most once; the service checks before appending.
type BadgeEvent struct {
	ent.Schema
}

func (BadgeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (BadgeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile_id").
			NotEmpty(),
		field.String("badge_key").
			NotEmpty().
			Comment("Stable badge identifier, e.g. stars_50"),
		field.String("badge_type").
			NotEmpty().
			Comment("stars, streak, theme, or perfect"),
		field.String("rarity").
			NotEmpty(),
		field.String("session_id").
			Optional().
			Comment("Session during which the badge was earned"),
		field.String("reason").
			NotEmpty().
			Comment("Human-readable award reason"),
	}
}

func (BadgeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id"),
		index.Fields("profile_id", "badge_key"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StatsSnapshot caches the aggregate statistics and theme levels of one
// profile at a point in the event sequence. The cache is valid only while
// no newer result event exists; appending a result invalidates it.
type StatsSnapshot struct {
	ent.Schema
}

func (StatsSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile_id").
			NotEmpty(),
		field.Int64("sequence").
			Comment("Event sequence number the cache was computed at"),
		field.Time("timestamp").
			Default(time.Now),
		field.JSON("data", map[string]any{}).
			Comment("Cached summary and theme levels as JSON"),
	}
}

func (StatsSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id"),
		index.Fields("sequence"),
	}
}

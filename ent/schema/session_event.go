package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end/clear).
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
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start, end, or clear"),
		field.String("problem_id").
			Default("").
			Comment("Problem the session opened with (on start only)"),
		field.Int("turns_taken").
			Default(0).
			Comment("Diagnosed turns (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
		field.Bool("completed").
			Default(false).
			Comment("Whether the tutor marked the exercise complete (on end only)"),
		field.JSON("stage_counts", map[string]int{}).
			Optional().
			Comment("Turns per recommended stage (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}

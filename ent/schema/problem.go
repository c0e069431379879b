package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Problem is a reading passage paired with a comprehension question.
// Problems are the material a tutoring session works through; they are
// mutable bank entries, not events.
type Problem struct {
	ent.Schema
}

func (Problem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("UUID assigned at creation"),
		field.String("title").
			NotEmpty().
			Comment("Short display title for the passage"),
		field.Text("passage").
			NotEmpty().
			Comment("Full passage text"),
		field.Text("question").
			NotEmpty().
			Comment("Comprehension question posed about the passage"),
		field.Int("grade_level").
			Default(0).
			Comment("Target grade level, 0 when unspecified"),
		field.String("source").
			Default("manual").
			Comment("manual, imported, or generated"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Problem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source"),
		index.Fields("created_at"),
	}
}

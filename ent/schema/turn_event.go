package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TurnEvent records one diagnosed chat turn: the student's response and
// the full diagnostic the model produced for it.
type TurnEvent struct {
	ent.Schema
}

func (TurnEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TurnEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("problem_id").
			NotEmpty().
			Comment("Problem the session is working through"),
		field.Text("student_text").
			NotEmpty().
			Comment("What the student typed this turn"),
		field.String("survey_gist").
			NotEmpty().
			Comment("low, medium, or high"),
		field.String("question_focus").
			NotEmpty(),
		field.String("reading_depth").
			NotEmpty(),
		field.String("recite_articulation").
			NotEmpty(),
		field.String("review_accuracy").
			NotEmpty(),
		field.String("confidence_level").
			NotEmpty(),
		field.String("recommended_stage").
			NotEmpty().
			Comment("survey, question, read, recite, or review"),
		field.Text("stage_reason").
			Default(""),
		field.Text("next_question").
			Default("").
			Comment("The follow-up question shown to the student"),
		field.Bool("feedback_completed").
			Comment("Whether the tutor judged the exercise complete"),
	}
}

func (TurnEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("problem_id"),
		index.Fields("recommended_stage"),
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jaemin/readcoach/ent/turnevent"
)

// TurnEvent is the model entity for the TurnEvent schema.
type TurnEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to SessionEvent
	SessionID string `json:"session_id,omitempty"`
	// Problem the session is working through
	ProblemID string `json:"problem_id,omitempty"`
	// What the student typed this turn
	StudentText string `json:"student_text,omitempty"`
	// low, medium, or high
	SurveyGist string `json:"survey_gist,omitempty"`
	// QuestionFocus holds the value of the "question_focus" field.
	QuestionFocus string `json:"question_focus,omitempty"`
	// ReadingDepth holds the value of the "reading_depth" field.
	ReadingDepth string `json:"reading_depth,omitempty"`
	// ReciteArticulation holds the value of the "recite_articulation" field.
	ReciteArticulation string `json:"recite_articulation,omitempty"`
	// ReviewAccuracy holds the value of the "review_accuracy" field.
	ReviewAccuracy string `json:"review_accuracy,omitempty"`
	// ConfidenceLevel holds the value of the "confidence_level" field.
	ConfidenceLevel string `json:"confidence_level,omitempty"`
	// survey, question, read, recite, or review
	RecommendedStage string `json:"recommended_stage,omitempty"`
	// StageReason holds the value of the "stage_reason" field.
	StageReason string `json:"stage_reason,omitempty"`
	// The follow-up question shown to the student
	NextQuestion string `json:"next_question,omitempty"`
	// Whether the tutor judged the exercise complete
	FeedbackCompleted bool `json:"feedback_completed,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TurnEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case turnevent.FieldFeedbackCompleted:
			values[i] = new(sql.NullBool)
		case turnevent.FieldID, turnevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case turnevent.FieldSessionID, turnevent.FieldProblemID, turnevent.FieldStudentText, turnevent.FieldSurveyGist, turnevent.FieldQuestionFocus, turnevent.FieldReadingDepth, turnevent.FieldReciteArticulation, turnevent.FieldReviewAccuracy, turnevent.FieldConfidenceLevel, turnevent.FieldRecommendedStage, turnevent.FieldStageReason, turnevent.FieldNextQuestion:
			values[i] = new(sql.NullString)
		case turnevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TurnEvent fields.
func (_m *TurnEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case turnevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case turnevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case turnevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case turnevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case turnevent.FieldProblemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field problem_id", values[i])
			} else if value.Valid {
				_m.ProblemID = value.String
			}
		case turnevent.FieldStudentText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_text", values[i])
			} else if value.Valid {
				_m.StudentText = value.String
			}
		case turnevent.FieldSurveyGist:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field survey_gist", values[i])
			} else if value.Valid {
				_m.SurveyGist = value.String
			}
		case turnevent.FieldQuestionFocus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_focus", values[i])
			} else if value.Valid {
				_m.QuestionFocus = value.String
			}
		case turnevent.FieldReadingDepth:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reading_depth", values[i])
			} else if value.Valid {
				_m.ReadingDepth = value.String
			}
		case turnevent.FieldReciteArticulation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recite_articulation", values[i])
			} else if value.Valid {
				_m.ReciteArticulation = value.String
			}
		case turnevent.FieldReviewAccuracy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_accuracy", values[i])
			} else if value.Valid {
				_m.ReviewAccuracy = value.String
			}
		case turnevent.FieldConfidenceLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_level", values[i])
			} else if value.Valid {
				_m.ConfidenceLevel = value.String
			}
		case turnevent.FieldRecommendedStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recommended_stage", values[i])
			} else if value.Valid {
				_m.RecommendedStage = value.String
			}
		case turnevent.FieldStageReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_reason", values[i])
			} else if value.Valid {
				_m.StageReason = value.String
			}
		case turnevent.FieldNextQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field next_question", values[i])
			} else if value.Valid {
				_m.NextQuestion = value.String
			}
		case turnevent.FieldFeedbackCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field feedback_completed", values[i])
			} else if value.Valid {
				_m.FeedbackCompleted = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TurnEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TurnEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TurnEvent.
// Note that you need to call TurnEvent.Unwrap() before calling this method if this TurnEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TurnEvent) Update() *TurnEventUpdateOne {
	return NewTurnEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TurnEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TurnEvent) Unwrap() *TurnEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TurnEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TurnEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TurnEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("problem_id=")
	builder.WriteString(_m.ProblemID)
	builder.WriteString(", ")
	builder.WriteString("student_text=")
	builder.WriteString(_m.StudentText)
	builder.WriteString(", ")
	builder.WriteString("survey_gist=")
	builder.WriteString(_m.SurveyGist)
	builder.WriteString(", ")
	builder.WriteString("question_focus=")
	builder.WriteString(_m.QuestionFocus)
	builder.WriteString(", ")
	builder.WriteString("reading_depth=")
	builder.WriteString(_m.ReadingDepth)
	builder.WriteString(", ")
	builder.WriteString("recite_articulation=")
	builder.WriteString(_m.ReciteArticulation)
	builder.WriteString(", ")
	builder.WriteString("review_accuracy=")
	builder.WriteString(_m.ReviewAccuracy)
	builder.WriteString(", ")
	builder.WriteString("confidence_level=")
	builder.WriteString(_m.ConfidenceLevel)
	builder.WriteString(", ")
	builder.WriteString("recommended_stage=")
	builder.WriteString(_m.RecommendedStage)
	builder.WriteString(", ")
	builder.WriteString("stage_reason=")
	builder.WriteString(_m.StageReason)
	builder.WriteString(", ")
	builder.WriteString("next_question=")
	builder.WriteString(_m.NextQuestion)
	builder.WriteString(", ")
	builder.WriteString("feedback_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeedbackCompleted))
	builder.WriteByte(')')
	return builder.String()
}

// TurnEvents is a parsable slice of TurnEvent.
type TurnEvents []*TurnEvent

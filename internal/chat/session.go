// Package chat holds the state and turn semantics of one tutoring
// session: a student working through a single reading problem with the
// SQ3R diagnoser.
package chat

import (
	"time"

	"github.com/google/uuid"

	"github.com/jaemin/readcoach/internal/diagnosis"
	"github.com/jaemin/readcoach/internal/store"
)

// Turn is one completed exchange: what the student typed and the
// diagnostic the model produced for it.
type Turn struct {
	StudentText string
	Record      diagnosis.DiagnosticRecord
	At          time.Time
}

// Session is the in-memory state of one tutoring session. The turn
// history is append-only; Clear starts the conversation over on the
// same problem under the same session ID.
type Session struct {
	ID        string
	Problem   *store.Problem
	StartedAt time.Time

	turns []Turn
}

// NewSession starts a session over the given problem.
func NewSession(problem *store.Problem) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Problem:   problem,
		StartedAt: time.Now(),
	}
}

// Append records a completed turn.
func (s *Session) Append(studentText string, rec diagnosis.DiagnosticRecord) {
	s.turns = append(s.turns, Turn{
		StudentText: studentText,
		Record:      rec,
		At:          time.Now(),
	})
}

// Turns returns a copy of the turn history.
func (s *Session) Turns() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len returns the number of completed turns.
func (s *Session) Len() int {
	return len(s.turns)
}

// Current returns the latest diagnostic record, or nil before the
// first turn completes.
func (s *Session) Current() *diagnosis.DiagnosticRecord {
	if len(s.turns) == 0 {
		return nil
	}
	rec := s.turns[len(s.turns)-1].Record
	return &rec
}

// Completed reports whether the tutor has marked the exercise done.
func (s *Session) Completed() bool {
	cur := s.Current()
	return cur != nil && cur.FeedbackCompleted
}

// Clear drops the turn history, restarting the conversation.
func (s *Session) Clear() {
	s.turns = nil
}

// History converts the turn log into prompt exchanges. The tutor's
// question for each turn is the previous turn's follow-up; the first
// turn answers the problem's own question.
func (s *Session) History() []diagnosis.Exchange {
	out := make([]diagnosis.Exchange, 0, len(s.turns))
	question := s.Problem.Question
	for _, t := range s.turns {
		out = append(out, diagnosis.Exchange{
			TutorQuestion:   question,
			StudentResponse: t.StudentText,
		})
		question = t.Record.NextQuestion
	}
	return out
}

// NextQuestion returns the question the student should answer next.
func (s *Session) NextQuestion() string {
	cur := s.Current()
	if cur == nil {
		return s.Problem.Question
	}
	return cur.NextQuestion
}

// StageCounts tallies turns per recommended stage, for the session
// end event.
func (s *Session) StageCounts() map[string]int {
	counts := make(map[string]int, len(s.turns))
	for _, t := range s.turns {
		counts[string(t.Record.RecommendedStage)]++
	}
	return counts
}

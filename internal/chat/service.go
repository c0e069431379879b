package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/jaemin/readcoach/internal/store"
)

// Service ties a session's lifecycle to the event log: every start,
// diagnosed turn, clear, and end lands in the store.
type Service struct {
	runner *TurnRunner
	events store.EventRepo
}

// NewService creates a Service over the given runner and event repo.
func NewService(runner *TurnRunner, events store.EventRepo) *Service {
	return &Service{runner: runner, events: events}
}

// Start opens a session over a problem and records the start event.
func (s *Service) Start(ctx context.Context, problem *store.Problem) (*Session, error) {
	sess := NewSession(problem)
	err := s.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: sess.ID,
		Action:    "start",
		ProblemID: problem.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("record session start: %w", err)
	}
	return sess, nil
}

// RunTurn diagnoses one student response, appends it to the session,
// and persists the turn event. A turn superseded by a newer one returns
// the context error and leaves the session untouched.
func (s *Service) RunTurn(ctx context.Context, sess *Session, studentText string) (*Turn, error) {
	rec, err := s.runner.Run(ctx, sess, studentText)
	if err != nil {
		return nil, err
	}

	sess.Append(studentText, *rec)

	data := store.TurnEventData{
		SessionID:          sess.ID,
		ProblemID:          sess.Problem.ID,
		StudentText:        studentText,
		SurveyGist:         string(rec.Diagnosis.SurveyGist),
		QuestionFocus:      string(rec.Diagnosis.QuestionFocus),
		ReadingDepth:       string(rec.Diagnosis.ReadingDepth),
		ReciteArticulation: string(rec.Diagnosis.ReciteArticulation),
		ReviewAccuracy:     string(rec.Diagnosis.ReviewAccuracy),
		ConfidenceLevel:    string(rec.Diagnosis.ConfidenceLevel),
		RecommendedStage:   string(rec.RecommendedStage),
		StageReason:        rec.StageReason,
		NextQuestion:       rec.NextQuestion,
		FeedbackCompleted:  rec.FeedbackCompleted,
	}
	if err := s.events.AppendTurn(ctx, data); err != nil {
		return nil, fmt.Errorf("record turn: %w", err)
	}

	turns := sess.Turns()
	return &turns[len(turns)-1], nil
}

// Clear restarts the conversation and records a clear event.
func (s *Service) Clear(ctx context.Context, sess *Session) error {
	sess.Clear()
	err := s.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: sess.ID,
		Action:    "clear",
		ProblemID: sess.Problem.ID,
	})
	if err != nil {
		return fmt.Errorf("record session clear: %w", err)
	}
	return nil
}

// End closes the session and records the end event with turn totals.
func (s *Service) End(ctx context.Context, sess *Session) error {
	err := s.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:    sess.ID,
		Action:       "end",
		ProblemID:    sess.Problem.ID,
		TurnsTaken:   sess.Len(),
		DurationSecs: int(time.Since(sess.StartedAt).Seconds()),
		Completed:    sess.Completed(),
		StageCounts:  sess.StageCounts(),
	})
	if err != nil {
		return fmt.Errorf("record session end: %w", err)
	}
	return nil
}

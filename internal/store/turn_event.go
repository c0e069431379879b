package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jaemin/readcoach/ent"
	"github.com/jaemin/readcoach/ent/turnevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter. The raw db handle is only used for aggregate queries that ent's
// builder can't express cleanly.
type eventRepo struct {
	client *ent.Client
	db     *sql.DB
	seq    *sequenceCounter
}

func (r *eventRepo) AppendTurn(ctx context.Context, data TurnEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TurnEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetProblemID(data.ProblemID).
		SetStudentText(data.StudentText).
		SetSurveyGist(data.SurveyGist).
		SetQuestionFocus(data.QuestionFocus).
		SetReadingDepth(data.ReadingDepth).
		SetReciteArticulation(data.ReciteArticulation).
		SetReviewAccuracy(data.ReviewAccuracy).
		SetConfidenceLevel(data.ConfidenceLevel).
		SetRecommendedStage(data.RecommendedStage).
		SetStageReason(data.StageReason).
		SetNextQuestion(data.NextQuestion).
		SetFeedbackCompleted(data.FeedbackCompleted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save turn event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListTurns(ctx context.Context, sessionID string) ([]*TurnRecord, error) {
	rows, err := r.client.TurnEvent.Query().
		Where(turnevent.SessionID(sessionID)).
		Order(ent.Asc(turnevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list turns: %w", err)
	}

	out := make([]*TurnRecord, 0, len(rows))
	for _, e := range rows {
		out = append(out, &TurnRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			TurnEventData: TurnEventData{
				SessionID:          e.SessionID,
				ProblemID:          e.ProblemID,
				StudentText:        e.StudentText,
				SurveyGist:         e.SurveyGist,
				QuestionFocus:      e.QuestionFocus,
				ReadingDepth:       e.ReadingDepth,
				ReciteArticulation: e.ReciteArticulation,
				ReviewAccuracy:     e.ReviewAccuracy,
				ConfidenceLevel:    e.ConfidenceLevel,
				RecommendedStage:   e.RecommendedStage,
				StageReason:        e.StageReason,
				NextQuestion:       e.NextQuestion,
				FeedbackCompleted:  e.FeedbackCompleted,
			},
		})
	}
	return out, nil
}

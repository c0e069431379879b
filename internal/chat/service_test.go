package chat

import (
	"context"
	"testing"

	"github.com/jaemin/readcoach/internal/diagnosis"
	"github.com/jaemin/readcoach/internal/store"
)

// fakeEvents records appended events in memory.
type fakeEvents struct {
	sessions []store.SessionEventData
	turns    []store.TurnEventData
	llm      []store.LLMRequestEventData
}

func (f *fakeEvents) AppendLLMRequest(_ context.Context, d store.LLMRequestEventData) error {
	f.llm = append(f.llm, d)
	return nil
}

func (f *fakeEvents) AppendTurn(_ context.Context, d store.TurnEventData) error {
	f.turns = append(f.turns, d)
	return nil
}

func (f *fakeEvents) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	f.sessions = append(f.sessions, d)
	return nil
}

func (f *fakeEvents) QueryLLMEvents(context.Context, store.QueryOpts) ([]*store.LLMEvent, error) {
	return nil, nil
}

func (f *fakeEvents) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func (f *fakeEvents) LLMUsageByPurpose(context.Context) ([]store.UsageStat, error) {
	return nil, nil
}

func (f *fakeEvents) LLMUsageByModel(context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func (f *fakeEvents) ListTurns(context.Context, string) ([]*store.TurnRecord, error) {
	return nil, nil
}

func (f *fakeEvents) ListSessions(context.Context, store.QueryOpts) ([]*store.SessionRecord, error) {
	return nil, nil
}

func newTestService(rec diagnosis.DiagnosticRecord) (*Service, *fakeEvents) {
	d := diagnoserFunc(func(context.Context, diagnosis.TurnContext) (*diagnosis.DiagnosticRecord, error) {
		r := rec
		return &r, nil
	})
	events := &fakeEvents{}
	return NewService(NewTurnRunner(d), events), events
}

func TestService_StartRecordsEvent(t *testing.T) {
	svc, events := newTestService(testRecord(diagnosis.StageRead, "q", false))
	ctx := context.Background()

	sess, err := svc.Start(ctx, testProblem())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(events.sessions) != 1 {
		t.Fatalf("session events = %d, want 1", len(events.sessions))
	}
	ev := events.sessions[0]
	if ev.Action != "start" || ev.SessionID != sess.ID || ev.ProblemID != "prob-1" {
		t.Errorf("start event = %+v", ev)
	}
}

func TestService_RunTurnAppendsAndPersists(t *testing.T) {
	svc, events := newTestService(testRecord(diagnosis.StageRecite, "Own words?", false))
	ctx := context.Background()

	sess, err := svc.Start(ctx, testProblem())
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	turn, err := svc.RunTurn(ctx, sess, "rocks and soil")
	if err != nil {
		t.Fatalf("run turn: %v", err)
	}
	if turn.Record.RecommendedStage != diagnosis.StageRecite {
		t.Errorf("stage = %q", turn.Record.RecommendedStage)
	}
	if sess.Len() != 1 {
		t.Errorf("session len = %d, want 1", sess.Len())
	}

	if len(events.turns) != 1 {
		t.Fatalf("turn events = %d, want 1", len(events.turns))
	}
	td := events.turns[0]
	if td.SessionID != sess.ID || td.StudentText != "rocks and soil" {
		t.Errorf("turn event = %+v", td)
	}
	if td.RecommendedStage != "recite" || td.ReciteArticulation != "low" {
		t.Errorf("diagnosis fields = %+v", td)
	}
}

func TestService_ClearRecordsEventAndResets(t *testing.T) {
	svc, events := newTestService(testRecord(diagnosis.StageRead, "q", false))
	ctx := context.Background()

	sess, _ := svc.Start(ctx, testProblem())
	if _, err := svc.RunTurn(ctx, sess, "a"); err != nil {
		t.Fatalf("run turn: %v", err)
	}

	if err := svc.Clear(ctx, sess); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if sess.Len() != 0 {
		t.Error("expected empty session after clear")
	}
	last := events.sessions[len(events.sessions)-1]
	if last.Action != "clear" {
		t.Errorf("last action = %q, want 'clear'", last.Action)
	}
}

func TestService_EndRecordsTotals(t *testing.T) {
	svc, events := newTestService(testRecord(diagnosis.StageReview, "", true))
	ctx := context.Background()

	sess, _ := svc.Start(ctx, testProblem())
	if _, err := svc.RunTurn(ctx, sess, "a"); err != nil {
		t.Fatalf("run turn: %v", err)
	}

	if err := svc.End(ctx, sess); err != nil {
		t.Fatalf("end: %v", err)
	}
	last := events.sessions[len(events.sessions)-1]
	if last.Action != "end" {
		t.Fatalf("last action = %q, want 'end'", last.Action)
	}
	if last.TurnsTaken != 1 || !last.Completed {
		t.Errorf("end event = %+v", last)
	}
	if last.StageCounts["review"] != 1 {
		t.Errorf("stage counts = %v", last.StageCounts)
	}
}

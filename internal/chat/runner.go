package chat

import (
	"context"
	"sync"

	"github.com/jaemin/readcoach/internal/diagnosis"
)

// Diagnoser is the slice of the diagnosis service the runner needs.
type Diagnoser interface {
	Diagnose(ctx context.Context, tc diagnosis.TurnContext) (*diagnosis.DiagnosticRecord, error)
}

// TurnRunner enforces the at-most-one-in-flight turn policy. Starting a
// new turn cancels the context of any turn still in flight, so a student
// who sends again before the model answers never gets two competing
// diagnoses.
type TurnRunner struct {
	mu        sync.Mutex
	diagnoser Diagnoser
	cancel    context.CancelFunc
	gen       uint64
}

// NewTurnRunner creates a runner over the given diagnoser.
func NewTurnRunner(d Diagnoser) *TurnRunner {
	return &TurnRunner{diagnoser: d}
}

// Run diagnoses one student response. Any prior in-flight turn is
// cancelled first; its Run call returns the context error. The session
// is read, not mutated; callers append the turn after persisting it.
func (r *TurnRunner) Run(ctx context.Context, s *Session, studentText string) (*diagnosis.DiagnosticRecord, error) {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	turnCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.gen++
	myGen := r.gen
	r.mu.Unlock()

	defer func() {
		cancel()
		r.mu.Lock()
		// A newer turn may have replaced the cancel func already.
		if r.gen == myGen {
			r.cancel = nil
		}
		r.mu.Unlock()
	}()

	tc := diagnosis.TurnContext{
		ProblemTitle:    s.Problem.Title,
		Passage:         s.Problem.Passage,
		ProblemQuestion: s.Problem.Question,
		History:         s.History(),
		StudentResponse: studentText,
	}

	rec, err := r.diagnoser.Diagnose(turnCtx, tc)
	if err != nil {
		return nil, err
	}
	if turnCtx.Err() != nil {
		// A newer turn superseded this one while the response was in
		// flight; discard the stale result.
		return nil, turnCtx.Err()
	}
	return rec, nil
}

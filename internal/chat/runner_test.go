package chat

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jaemin/readcoach/internal/diagnosis"
)

// blockingDiagnoser waits for release (or context cancellation) before
// answering, so tests can hold a turn in flight.
type blockingDiagnoser struct {
	mu      sync.Mutex
	release chan struct{}
	calls   int
	rec     diagnosis.DiagnosticRecord
}

func (d *blockingDiagnoser) Diagnose(ctx context.Context, _ diagnosis.TurnContext) (*diagnosis.DiagnosticRecord, error) {
	d.mu.Lock()
	d.calls++
	release := d.release
	d.mu.Unlock()

	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	rec := d.rec
	return &rec, nil
}

func TestRunner_SingleTurn(t *testing.T) {
	d := &blockingDiagnoser{rec: testRecord(diagnosis.StageRead, "next?", false)}
	r := NewTurnRunner(d)
	s := NewSession(testProblem())

	rec, err := r.Run(context.Background(), s, "rocks and soil")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if rec.RecommendedStage != diagnosis.StageRead {
		t.Errorf("stage = %q", rec.RecommendedStage)
	}
}

func TestRunner_NewTurnCancelsInFlight(t *testing.T) {
	d := &blockingDiagnoser{
		release: make(chan struct{}),
		rec:     testRecord(diagnosis.StageRead, "next?", false),
	}
	r := NewTurnRunner(d)
	s := NewSession(testProblem())

	firstErr := make(chan error, 1)
	go func() {
		_, err := r.Run(context.Background(), s, "first attempt")
		firstErr <- err
	}()

	// Wait for the first turn to be in flight.
	for {
		d.mu.Lock()
		calls := d.calls
		d.mu.Unlock()
		if calls == 1 {
			break
		}
		time.Sleep(time.Millisecond)
	}

	// The second turn must cancel the first. Release it so the second
	// call can complete.
	d.mu.Lock()
	d.release = nil
	d.mu.Unlock()

	rec, err := r.Run(context.Background(), s, "second attempt")
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if rec == nil {
		t.Fatal("expected record from second run")
	}

	select {
	case err := <-firstErr:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("first run err = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("first run never returned")
	}
}

func TestRunner_CallerContextPropagates(t *testing.T) {
	d := &blockingDiagnoser{release: make(chan struct{})}
	r := NewTurnRunner(d)
	s := NewSession(testProblem())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := r.Run(ctx, s, "attempt")
		done <- err
	}()

	for {
		d.mu.Lock()
		calls := d.calls
		d.mu.Unlock()
		if calls == 1 {
			break
		}
		time.Sleep(time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("run never returned after cancel")
	}
}

func TestRunner_BuildsTurnContext(t *testing.T) {
	var captured diagnosis.TurnContext
	d := diagnoserFunc(func(_ context.Context, tc diagnosis.TurnContext) (*diagnosis.DiagnosticRecord, error) {
		captured = tc
		rec := testRecord(diagnosis.StageRead, "next?", false)
		return &rec, nil
	})
	r := NewTurnRunner(d)
	s := NewSession(testProblem())
	s.Append("earlier answer", testRecord(diagnosis.StageRead, "follow-up?", false))

	if _, err := r.Run(context.Background(), s, "latest answer"); err != nil {
		t.Fatalf("run: %v", err)
	}

	if captured.Passage != testProblem().Passage {
		t.Error("missing passage")
	}
	if captured.StudentResponse != "latest answer" {
		t.Errorf("student response = %q", captured.StudentResponse)
	}
	if len(captured.History) != 1 || captured.History[0].StudentResponse != "earlier answer" {
		t.Errorf("history = %+v", captured.History)
	}
}

// diagnoserFunc adapts a function to the Diagnoser interface.
type diagnoserFunc func(ctx context.Context, tc diagnosis.TurnContext) (*diagnosis.DiagnosticRecord, error)

func (f diagnoserFunc) Diagnose(ctx context.Context, tc diagnosis.TurnContext) (*diagnosis.DiagnosticRecord, error) {
	return f(ctx, tc)
}

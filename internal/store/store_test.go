package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestProblemCRUD(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProblemRepo()
	ctx := context.Background()

	p := &Problem{
		Title:      "The River",
		Passage:    "A river carves its valley over centuries.",
		Question:   "What does the river do to the valley?",
		GradeLevel: 4,
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == "" {
		t.Fatal("expected generated UUID")
	}
	if p.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	got, err := repo.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected problem, got nil")
	}
	if got.Title != "The River" {
		t.Errorf("title = %q, want 'The River'", got.Title)
	}
	if got.Source != "manual" {
		t.Errorf("source = %q, want 'manual'", got.Source)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err = repo.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil after delete")
	}

	// Deleting an absent ID is not an error.
	if err := repo.Delete(ctx, "no-such-id"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

func TestProblemListOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProblemRepo()
	ctx := context.Background()

	for _, title := range []string{"First", "Second", "Third"} {
		err := repo.Create(ctx, &Problem{
			Title:    title,
			Passage:  "p",
			Question: "q",
		})
		if err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
}

func testTurn(sessionID string) TurnEventData {
	return TurnEventData{
		SessionID:          sessionID,
		ProblemID:          "prob-1",
		StudentText:        "It's about rivers shaping land",
		SurveyGist:         "high",
		QuestionFocus:      "medium",
		ReadingDepth:       "medium",
		ReciteArticulation: "low",
		ReviewAccuracy:     "medium",
		ConfidenceLevel:    "medium",
		RecommendedStage:   "recite",
		StageReason:        "Summary lacks the key term",
		NextQuestion:       "Can you restate the main idea in your own words?",
		FeedbackCompleted:  false,
	}
}

func TestTurnAppendAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendTurn(ctx, testTurn("sess-1")); err != nil {
		t.Fatalf("append turn 1: %v", err)
	}
	second := testTurn("sess-1")
	second.RecommendedStage = "review"
	second.FeedbackCompleted = true
	if err := repo.AppendTurn(ctx, second); err != nil {
		t.Fatalf("append turn 2: %v", err)
	}
	// A turn in an unrelated session must not show up.
	if err := repo.AppendTurn(ctx, testTurn("sess-2")); err != nil {
		t.Fatalf("append turn 3: %v", err)
	}

	turns, err := repo.ListTurns(ctx, "sess-1")
	if err != nil {
		t.Fatalf("list turns: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("len = %d, want 2", len(turns))
	}
	if turns[0].Sequence >= turns[1].Sequence {
		t.Error("expected ascending sequence order")
	}
	if turns[0].RecommendedStage != "recite" {
		t.Errorf("first stage = %q, want 'recite'", turns[0].RecommendedStage)
	}
	if !turns[1].FeedbackCompleted {
		t.Error("expected second turn marked completed")
	}
}

func TestSessionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "sess-1",
		Action:    "start",
		ProblemID: "prob-1",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:    "sess-1",
		Action:       "end",
		TurnsTaken:   4,
		DurationSecs: 300,
		Completed:    true,
		StageCounts:  map[string]int{"read": 2, "recite": 1, "review": 1},
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	sessions, err := repo.ListSessions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("len = %d, want 2", len(sessions))
	}
	// Most recent first.
	if sessions[0].Action != "end" {
		t.Errorf("first action = %q, want 'end'", sessions[0].Action)
	}
	if sessions[0].StageCounts["read"] != 2 {
		t.Errorf("stage_counts[read] = %d, want 2", sessions[0].StageCounts["read"])
	}
}

func TestLLMEventsQueryAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "sq3r-diagnosis", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true, RequestBody: "[user]\nhi", ResponseBody: `{"ok":true}`},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "sq3r-diagnosis", InputTokens: 120, OutputTokens: 60, LatencyMs: 400, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "problem-gen", InputTokens: 300, OutputTokens: 400, LatencyMs: 900, Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Most recent first.
	if got[0].Purpose != "problem-gen" {
		t.Errorf("first purpose = %q, want 'problem-gen'", got[0].Purpose)
	}

	one, err := repo.GetLLMEvent(ctx, got[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if one == nil || one.ID != got[1].ID {
		t.Fatal("expected matching event")
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("stats len = %d, want 2", len(stats))
	}
	for _, st := range stats {
		switch st.Purpose {
		case "sq3r-diagnosis":
			if st.Calls != 2 || st.InputTokens != 220 || st.OutputTokens != 110 {
				t.Errorf("sq3r-diagnosis stats = %+v", st)
			}
			if st.AvgLatencyMs != 300 {
				t.Errorf("avg latency = %d, want 300", st.AvgLatencyMs)
			}
		case "problem-gen":
			if st.Calls != 1 || st.InputTokens != 300 {
				t.Errorf("problem-gen stats = %+v", st)
			}
		default:
			t.Errorf("unexpected purpose %q", st.Purpose)
		}
	}

	models, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("models len = %d, want 2", len(models))
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"problems", "turn_events", "session_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

package chat

import (
	"testing"

	"github.com/jaemin/readcoach/internal/diagnosis"
	"github.com/jaemin/readcoach/internal/store"
)

func testProblem() *store.Problem {
	return &store.Problem{
		ID:       "prob-1",
		Title:    "How Rivers Shape Valleys",
		Passage:  "A river carries tiny pieces of rock and soil downstream.",
		Question: "What does the river carry downstream?",
	}
}

func testRecord(stage diagnosis.Stage, next string, done bool) diagnosis.DiagnosticRecord {
	return diagnosis.DiagnosticRecord{
		Diagnosis: diagnosis.StageLevels{
			SurveyGist:         diagnosis.LevelMedium,
			QuestionFocus:      diagnosis.LevelMedium,
			ReadingDepth:       diagnosis.LevelLow,
			ReciteArticulation: diagnosis.LevelLow,
			ReviewAccuracy:     diagnosis.LevelMedium,
			ConfidenceLevel:    diagnosis.LevelHigh,
		},
		RecommendedStage:  stage,
		StageReason:       "reason",
		NextQuestion:      next,
		FeedbackCompleted: done,
	}
}

func TestSession_FreshState(t *testing.T) {
	s := NewSession(testProblem())
	if s.ID == "" {
		t.Fatal("expected session ID")
	}
	if s.Len() != 0 {
		t.Fatalf("len = %d, want 0", s.Len())
	}
	if s.Current() != nil {
		t.Fatal("expected nil current record")
	}
	if s.Completed() {
		t.Fatal("fresh session must not be completed")
	}
	if got := s.NextQuestion(); got != testProblem().Question {
		t.Errorf("next question = %q, want the problem question", got)
	}
}

func TestSession_AppendAndCurrent(t *testing.T) {
	s := NewSession(testProblem())

	s.Append("rocks and soil", testRecord(diagnosis.StageRead, "What happens over time?", false))
	s.Append("the valley gets deeper", testRecord(diagnosis.StageReview, "", true))

	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	cur := s.Current()
	if cur == nil || cur.RecommendedStage != diagnosis.StageReview {
		t.Fatalf("current = %+v", cur)
	}
	if !s.Completed() {
		t.Error("expected completed after final record")
	}
}

func TestSession_HistoryThreadsQuestions(t *testing.T) {
	s := NewSession(testProblem())
	s.Append("rocks and soil", testRecord(diagnosis.StageRead, "What happens over time?", false))
	s.Append("the valley gets deeper", testRecord(diagnosis.StageReview, "", true))

	h := s.History()
	if len(h) != 2 {
		t.Fatalf("history len = %d, want 2", len(h))
	}
	if h[0].TutorQuestion != testProblem().Question {
		t.Errorf("first tutor question = %q", h[0].TutorQuestion)
	}
	if h[1].TutorQuestion != "What happens over time?" {
		t.Errorf("second tutor question = %q", h[1].TutorQuestion)
	}
	if h[1].StudentResponse != "the valley gets deeper" {
		t.Errorf("second response = %q", h[1].StudentResponse)
	}
}

func TestSession_NextQuestionFollowsRecord(t *testing.T) {
	s := NewSession(testProblem())
	s.Append("rocks", testRecord(diagnosis.StageRecite, "Say it in your own words?", false))
	if got := s.NextQuestion(); got != "Say it in your own words?" {
		t.Errorf("next question = %q", got)
	}
}

func TestSession_Clear(t *testing.T) {
	s := NewSession(testProblem())
	s.Append("rocks", testRecord(diagnosis.StageRead, "next?", false))
	id := s.ID

	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("len = %d after clear, want 0", s.Len())
	}
	if s.ID != id {
		t.Error("clear must keep the session ID")
	}
	if s.NextQuestion() != testProblem().Question {
		t.Error("clear must reset to the problem question")
	}
}

func TestSession_StageCounts(t *testing.T) {
	s := NewSession(testProblem())
	s.Append("a", testRecord(diagnosis.StageRead, "q", false))
	s.Append("b", testRecord(diagnosis.StageRead, "q", false))
	s.Append("c", testRecord(diagnosis.StageReview, "", true))

	counts := s.StageCounts()
	if counts["read"] != 2 || counts["review"] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestSession_TurnsIsACopy(t *testing.T) {
	s := NewSession(testProblem())
	s.Append("a", testRecord(diagnosis.StageRead, "q", false))

	turns := s.Turns()
	turns[0].StudentText = "mutated"

	if s.Turns()[0].StudentText != "a" {
		t.Error("Turns must return a copy")
	}
}

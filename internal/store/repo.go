package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Problem is a reading passage with its comprehension question.
type Problem struct {
	ID         string
	Title      string
	Passage    string
	Question   string
	GradeLevel int
	Source     string
	CreatedAt  time.Time
}

// ProblemRepo manages the problem bank.
type ProblemRepo interface {
	// Create stores a new problem. A missing ID is assigned a fresh UUID.
	Create(ctx context.Context, p *Problem) error

	// Get returns the problem with the given ID, or nil if absent.
	Get(ctx context.Context, id string) (*Problem, error)

	// List returns all problems, most recent first.
	List(ctx context.Context) ([]*Problem, error)

	// Delete removes a problem. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id string) error

	// Count returns the number of problems in the bank.
	Count(ctx context.Context) (int, error)
}

// TurnEventData captures one diagnosed chat turn for persistence.
type TurnEventData struct {
	SessionID          string
	ProblemID          string
	StudentText        string
	SurveyGist         string
	QuestionFocus      string
	ReadingDepth       string
	ReciteArticulation string
	ReviewAccuracy     string
	ConfidenceLevel    string
	RecommendedStage   string
	StageReason        string
	NextQuestion       string
	FeedbackCompleted  bool
}

// TurnRecord is a persisted turn event.
type TurnRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	TurnEventData
}

// SessionEventData captures a session lifecycle event for persistence.
type SessionEventData struct {
	SessionID    string
	Action       string // start, end, or clear
	ProblemID    string
	TurnsTaken   int
	DurationSecs int
	Completed    bool
	StageCounts  map[string]int
}

// SessionRecord is a persisted session event.
type SessionRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a persisted LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// UsageStat aggregates LLM usage for one purpose label.
type UsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model ID.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendTurn records a diagnosed chat turn.
	AppendTurn(ctx context.Context, data TurnEventData) error

	// AppendSessionEvent records a session lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QueryLLMEvents returns LLM events, most recent first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMEvent returns one LLM event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]UsageStat, error)

	// LLMUsageByModel aggregates token usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// ListTurns returns the turns of one session in event order.
	ListTurns(ctx context.Context, sessionID string) ([]*TurnRecord, error)

	// ListSessions returns session events, most recent first.
	ListSessions(ctx context.Context, opts QueryOpts) ([]*SessionRecord, error)
}

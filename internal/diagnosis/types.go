package diagnosis

// Level is an ordinal proficiency level for a single SQ3R axis.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Stage is one of the five SQ3R pedagogical stages.
type Stage string

const (
	StageSurvey   Stage = "survey"
	StageQuestion Stage = "question"
	StageRead     Stage = "read"
	StageRecite   Stage = "recite"
	StageReview   Stage = "review"
)

// StageLevels holds the per-axis proficiency assessment for one turn.
type StageLevels struct {
	// SurveyGist is how well the student grasped the overall gist.
	SurveyGist Level `json:"survey_gist"`

	// QuestionFocus is how well the student identified what is being asked.
	QuestionFocus Level `json:"question_focus"`

	// ReadingDepth is how carefully the student read the passage.
	ReadingDepth Level `json:"reading_depth"`

	// ReciteArticulation is how clearly the student restated the content.
	ReciteArticulation Level `json:"recite_articulation"`

	// ReviewAccuracy is how accurately the student checked their answer.
	ReviewAccuracy Level `json:"review_accuracy"`

	// ConfidenceLevel is the student's apparent confidence.
	ConfidenceLevel Level `json:"confidence_level"`
}

// DiagnosticRecord is the validated result of one diagnosis turn. A record
// is only ever constructed by ValidateRecord; a value that fails any schema
// check never becomes a DiagnosticRecord. Records are immutable once built
// and are appended to the session's turn history.
type DiagnosticRecord struct {
	// Diagnosis holds the six per-axis levels.
	Diagnosis StageLevels `json:"diagnosis"`

	// RecommendedStage is the SQ3R stage the tutor should steer toward next.
	RecommendedStage Stage `json:"recommended_stage"`

	// StageReason explains why that stage was recommended.
	StageReason string `json:"stage_reason"`

	// NextQuestion is the follow-up prompt to show the student.
	NextQuestion string `json:"next_question"`

	// FeedbackCompleted reports whether the tutoring goal for this
	// exchange is met.
	FeedbackCompleted bool `json:"feedback_completed"`
}

// axisNames lists the six diagnosis axes in validation order.
var axisNames = []string{
	"survey_gist",
	"question_focus",
	"reading_depth",
	"recite_articulation",
	"review_accuracy",
	"confidence_level",
}

// ValidLevel reports whether s is one of the three allowed levels.
func ValidLevel(s string) bool {
	switch Level(s) {
	case LevelLow, LevelMedium, LevelHigh:
		return true
	}
	return false
}

// ValidStage reports whether s is one of the five allowed stages.
func ValidStage(s string) bool {
	switch Stage(s) {
	case StageSurvey, StageQuestion, StageRead, StageRecite, StageReview:
		return true
	}
	return false
}

package problemgen

// Problem represents a generated reading problem ready for the bank.
type Problem struct {
	// Title is a short display title for the passage.
	Title string

	// Passage is the full reading passage text. Plain prose, a few
	// paragraphs at most.
	Passage string

	// Question is the comprehension question posed about the passage.
	Question string

	// GradeLevel is the target grade (1-9).
	GradeLevel int

	// Difficulty is the LLM's self-assessed difficulty (1-5).
	// Used for analytics, not for gating.
	Difficulty int

	// Topic is the subject area the passage was generated for.
	Topic string
}

// GenerateInput holds all context needed to generate a reading problem.
type GenerateInput struct {
	// Topic is the requested subject area, e.g. "rivers", "honeybees".
	// Empty means the model picks freely.
	Topic string

	// GradeLevel is the target grade for vocabulary and passage length.
	GradeLevel int

	// PriorTitles contains titles already in the bank. Used for
	// deduplication in the prompt.
	PriorTitles []string
}

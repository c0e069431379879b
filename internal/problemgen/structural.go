package problemgen

import "strings"

// Passage word-count bounds. Short enough for one chat session, long
// enough that the SQ3R stages have something to work with.
const (
	minPassageWords = 40
	maxPassageWords = 400
)

// StructuralValidator checks that required fields are present, within
// length limits, and have sane values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Problem, _ GenerateInput) *ValidationError {
	if p.Title == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "title is empty",
			Retryable: true,
		}
	}
	if len(p.Title) > 120 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "title exceeds 120 characters",
			Retryable: true,
		}
	}
	words := len(strings.Fields(p.Passage))
	if words < minPassageWords {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "passage is shorter than 40 words",
			Retryable: true,
		}
	}
	if words > maxPassageWords {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "passage exceeds 400 words",
			Retryable: true,
		}
	}
	if strings.TrimSpace(p.Question) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question is empty",
			Retryable: true,
		}
	}
	if len(p.Question) > 300 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question exceeds 300 characters",
			Retryable: true,
		}
	}
	if p.GradeLevel < 1 || p.GradeLevel > 9 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "grade_level must be between 1 and 9",
			Retryable: true,
		}
	}
	if p.Difficulty < 1 || p.Difficulty > 5 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "difficulty must be between 1 and 5",
			Retryable: true,
		}
	}
	return nil
}

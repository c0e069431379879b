package problemgen

import (
	"strings"
	"testing"
)

func validProblem() *Problem {
	return &Problem{
		Title: "How Rivers Shape Valleys",
		Passage: strings.TrimSpace(strings.Repeat(
			"A river carries tiny pieces of rock and soil downstream every day. ", 8)),
		Question:   "What does the passage say a river carries downstream, and what happens over time?",
		GradeLevel: 4,
		Difficulty: 3,
		Topic:      "rivers",
	}
}

func TestStructural_ValidProblem(t *testing.T) {
	v := &StructuralValidator{}
	err := v.Validate(validProblem(), GenerateInput{})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_EmptyTitle(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.Title = ""
	err := v.Validate(p, GenerateInput{})
	if err == nil {
		t.Fatal("expected error for empty title")
	}
	if err.Validator != "structural" {
		t.Errorf("expected validator %q, got %q", "structural", err.Validator)
	}
	if !err.Retryable {
		t.Error("expected retryable")
	}
}

func TestStructural_PassageTooShort(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.Passage = "A river flows."
	err := v.Validate(p, GenerateInput{})
	if err == nil {
		t.Fatal("expected error for short passage")
	}
}

func TestStructural_PassageTooLong(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.Passage = strings.TrimSpace(strings.Repeat("word ", 401))
	err := v.Validate(p, GenerateInput{})
	if err == nil {
		t.Fatal("expected error for long passage")
	}
}

func TestStructural_EmptyQuestion(t *testing.T) {
	v := &StructuralValidator{}
	p := validProblem()
	p.Question = "   "
	err := v.Validate(p, GenerateInput{})
	if err == nil {
		t.Fatal("expected error for blank question")
	}
}

func TestStructural_GradeOutOfRange(t *testing.T) {
	v := &StructuralValidator{}
	for _, grade := range []int{0, 10, -1} {
		p := validProblem()
		p.GradeLevel = grade
		if err := v.Validate(p, GenerateInput{}); err == nil {
			t.Errorf("expected error for grade %d", grade)
		}
	}
}

func TestStructural_DifficultyOutOfRange(t *testing.T) {
	v := &StructuralValidator{}
	for _, d := range []int{0, 6} {
		p := validProblem()
		p.Difficulty = d
		if err := v.Validate(p, GenerateInput{}); err == nil {
			t.Errorf("expected error for difficulty %d", d)
		}
	}
}

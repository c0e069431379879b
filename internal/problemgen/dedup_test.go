package problemgen

import (
	"strings"
	"testing"
)

func TestDedup_UniqueTitle(t *testing.T) {
	v := &DedupValidator{}
	p := validProblem()
	input := GenerateInput{PriorTitles: []string{"Honeybees at Work", "The Moon's Phases"}}
	if err := v.Validate(p, input); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestDedup_DuplicateTitle(t *testing.T) {
	v := &DedupValidator{}
	p := validProblem()
	input := GenerateInput{PriorTitles: []string{"  how rivers shape valleys "}}
	err := v.Validate(p, input)
	if err == nil {
		t.Fatal("expected error for duplicate title")
	}
	if err.Validator != "dedup" {
		t.Errorf("expected validator %q, got %q", "dedup", err.Validator)
	}
	if !err.Retryable {
		t.Error("expected retryable")
	}
}

func TestBuildDedup_Empty(t *testing.T) {
	if got := buildDedup(nil, 8); got != "None" {
		t.Errorf("expected 'None', got %q", got)
	}
}

func TestBuildDedup_RespectsLimit(t *testing.T) {
	titles := []string{"One", "Two", "Three", "Four", "Five"}
	got := buildDedup(titles, 3)

	if strings.Contains(got, "One") || strings.Contains(got, "Two") {
		t.Errorf("expected oldest titles dropped, got %q", got)
	}
	for _, want := range []string{"Three", "Four", "Five"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

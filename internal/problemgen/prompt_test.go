package problemgen

import (
	"strings"
	"testing"
)

func TestBuildUserMessage_MinimalContext(t *testing.T) {
	input := GenerateInput{
		Topic:      "honeybees",
		GradeLevel: 3,
	}
	cfg := DefaultConfig()
	msg := buildUserMessage(input, cfg)

	if !strings.Contains(msg, "Topic: honeybees") {
		t.Error("missing topic")
	}
	if !strings.Contains(msg, "Grade: 3") {
		t.Error("missing grade")
	}
	if !strings.Contains(msg, "Already in the bank:\nNone") {
		t.Error("expected 'None' for prior titles")
	}
}

func TestBuildUserMessage_EmptyTopic(t *testing.T) {
	msg := buildUserMessage(GenerateInput{GradeLevel: 5}, DefaultConfig())
	if !strings.Contains(msg, "your choice") {
		t.Error("expected free-choice topic line")
	}
}

func TestBuildUserMessage_PriorTitles(t *testing.T) {
	input := GenerateInput{
		GradeLevel:  4,
		PriorTitles: []string{"The Moon's Phases", "Honeybees at Work"},
	}
	msg := buildUserMessage(input, DefaultConfig())

	if !strings.Contains(msg, "1. The Moon's Phases") {
		t.Error("missing first prior title")
	}
	if !strings.Contains(msg, "2. Honeybees at Work") {
		t.Error("missing second prior title")
	}
}

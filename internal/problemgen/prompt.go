package problemgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a reading teacher writing short comprehension exercises.

Rules:
- Write a single self-contained passage on the given topic, 1-3 paragraphs, 40-400 words.
- Match vocabulary and sentence complexity to the given grade level.
- The passage must be factual in tone and free of dialogue-heavy filler.
- Pose exactly one open comprehension question about the passage. The question must require actually reading the passage; it must not be answerable from the title alone.
- Do not ask yes/no questions or questions with a one-word answer.
- Do not reuse any title from the "already in the bank" list, and avoid covering the same angle on a topic twice.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	topic := input.Topic
	if topic == "" {
		topic = "your choice (vary the subject area)"
	}
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Grade: %d\n", input.GradeLevel)

	b.WriteString("\nAlready in the bank:\n")
	b.WriteString(buildDedup(input.PriorTitles, cfg.MaxPriorTitles))

	return b.String()
}

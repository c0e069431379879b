package problemgen

import "github.com/jaemin/readcoach/internal/llm"

// ProblemSchema defines the JSON schema for LLM problem generation responses.
var ProblemSchema = &llm.Schema{
	Name:        "reading-problem",
	Description: "A reading passage with one comprehension question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A short, evocative title for the passage",
			},
			"passage": map[string]any{
				"type":        "string",
				"description": "The full passage: 40-400 words of plain prose, 1-3 paragraphs",
			},
			"question": map[string]any{
				"type":        "string",
				"description": "One open comprehension question that requires reading the passage to answer",
			},
			"grade_level": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     9,
				"description": "Target grade for vocabulary and sentence complexity",
			},
			"difficulty": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     5,
				"description": "Self-assessed difficulty from 1 (easy) to 5 (hard)",
			},
		},
		"required":             []any{"title", "passage", "question", "grade_level", "difficulty"},
		"additionalProperties": false,
	},
}

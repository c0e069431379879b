package problembank

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jaemin/readcoach/internal/store"
)

// importFile is the parsed shape of an import document.
type importFile struct {
	Problems []importProblem `json:"problems"`
}

type importProblem struct {
	Title      string `json:"title"`
	Passage    string `json:"passage"`
	Question   string `json:"question"`
	GradeLevel int    `json:"grade_level"`
}

// ImportFile reads a JSON document of problems, validates the whole file
// against the import schema, and inserts every entry with source
// "imported". A single schema violation rejects the entire file; nothing
// is inserted. Returns the number of problems added.
func ImportFile(ctx context.Context, svc *Service, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read import file: %w", err)
	}
	return Import(ctx, svc, raw)
}

// Import validates and inserts problems from raw JSON bytes.
func Import(ctx context.Context, svc *Service, raw []byte) (int, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return 0, fmt.Errorf("import file is not valid JSON: %w", err)
	}

	schema, err := compiledImportSchema()
	if err != nil {
		return 0, err
	}
	if err := schema.Validate(parsed); err != nil {
		return 0, fmt.Errorf("import file failed schema validation: %w", err)
	}

	var doc importFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return 0, fmt.Errorf("decode import file: %w", err)
	}

	for i, ip := range doc.Problems {
		p := &store.Problem{
			Title:      ip.Title,
			Passage:    ip.Passage,
			Question:   ip.Question,
			GradeLevel: ip.GradeLevel,
			Source:     "imported",
		}
		if err := svc.Add(ctx, p); err != nil {
			return i, fmt.Errorf("import problem %d (%q): %w", i+1, ip.Title, err)
		}
	}
	return len(doc.Problems), nil
}

package problembank

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const validImportJSON = `{
	"problems": [
		{
			"title": "How Rivers Shape Valleys",
			"passage": "A river carries tiny pieces of rock and soil downstream.",
			"question": "What does the river carry downstream?",
			"grade_level": 4
		},
		{
			"title": "Honeybees at Work",
			"passage": "Honeybees visit hundreds of flowers in a single trip.",
			"question": "Why do honeybees visit so many flowers?"
		}
	]
}`

func TestImport_Valid(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	n, err := Import(ctx, svc, []byte(validImportJSON))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 2 {
		t.Fatalf("imported = %d, want 2", n)
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, p := range all {
		if p.Source != "imported" {
			t.Errorf("source = %q, want 'imported'", p.Source)
		}
	}
	// grade_level is optional and defaults to 0.
	if all[1].GradeLevel != 0 {
		t.Errorf("grade = %d, want 0", all[1].GradeLevel)
	}
}

func TestImport_RejectsWholeFileOnViolation(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	// Second entry is missing its question; nothing must be inserted.
	bad := `{
		"problems": [
			{"title": "Ok", "passage": "Long enough passage.", "question": "Fine?"},
			{"title": "Broken", "passage": "Another passage."}
		]
	}`
	if _, err := Import(ctx, svc, []byte(bad)); err == nil {
		t.Fatal("expected schema validation error")
	}

	count, _ := svc.Count(ctx)
	if count != 0 {
		t.Errorf("count = %d, want 0 after rejected import", count)
	}
}

func TestImport_RejectsUnknownFields(t *testing.T) {
	svc := NewService(&fakeRepo{})
	bad := `{
		"problems": [
			{"title": "Ok", "passage": "P.", "question": "Q?", "answer": "not a field"}
		]
	}`
	if _, err := Import(context.Background(), svc, []byte(bad)); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestImport_RejectsMalformedJSON(t *testing.T) {
	svc := NewService(&fakeRepo{})
	if _, err := Import(context.Background(), svc, []byte(`{"problems": [`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestImport_RejectsEmptyList(t *testing.T) {
	svc := NewService(&fakeRepo{})
	if _, err := Import(context.Background(), svc, []byte(`{"problems": []}`)); err == nil {
		t.Fatal("expected error for empty problems array")
	}
}

func TestImportFile(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "problems.json")
	if err := os.WriteFile(path, []byte(validImportJSON), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	n, err := ImportFile(ctx, svc, path)
	if err != nil {
		t.Fatalf("import file: %v", err)
	}
	if n != 2 {
		t.Fatalf("imported = %d, want 2", n)
	}

	if _, err := ImportFile(ctx, svc, filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

package problembank

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/jaemin/readcoach/internal/store"
)

// fakeRepo is an in-memory ProblemRepo for tests.
type fakeRepo struct {
	problems []*store.Problem
}

func (f *fakeRepo) Create(_ context.Context, p *store.Problem) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Source == "" {
		p.Source = "manual"
	}
	cp := *p
	f.problems = append(f.problems, &cp)
	return nil
}

func (f *fakeRepo) Get(_ context.Context, id string) (*store.Problem, error) {
	for _, p := range f.problems {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) List(_ context.Context) ([]*store.Problem, error) {
	out := make([]*store.Problem, len(f.problems))
	copy(out, f.problems)
	return out, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	for i, p := range f.problems {
		if p.ID == id {
			f.problems = append(f.problems[:i], f.problems[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeRepo) Count(_ context.Context) (int, error) {
	return len(f.problems), nil
}

func testProblem() *store.Problem {
	return &store.Problem{
		Title:      "How Rivers Shape Valleys",
		Passage:    "A river carries tiny pieces of rock and soil downstream.",
		Question:   "What does the river carry downstream?",
		GradeLevel: 4,
	}
}

func TestAdd_Valid(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	p := testProblem()
	if err := svc.Add(ctx, p); err != nil {
		t.Fatalf("add: %v", err)
	}
	if p.ID == "" {
		t.Fatal("expected assigned ID")
	}

	got, err := svc.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Title != p.Title {
		t.Fatalf("got %+v", got)
	}
}

func TestAdd_RejectsIncomplete(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*store.Problem)
	}{
		{"empty title", func(p *store.Problem) { p.Title = " " }},
		{"empty passage", func(p *store.Problem) { p.Passage = "" }},
		{"empty question", func(p *store.Problem) { p.Question = "\t" }},
		{"grade too high", func(p *store.Problem) { p.GradeLevel = 10 }},
		{"negative grade", func(p *store.Problem) { p.GradeLevel = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProblem()
			tt.mutate(p)
			if err := svc.Add(ctx, p); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	count, _ := svc.Count(ctx)
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestTitles(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	for _, title := range []string{"One", "Two"} {
		p := testProblem()
		p.Title = title
		if err := svc.Add(ctx, p); err != nil {
			t.Fatalf("add %s: %v", title, err)
		}
	}

	titles, err := svc.Titles(ctx)
	if err != nil {
		t.Fatalf("titles: %v", err)
	}
	if len(titles) != 2 {
		t.Fatalf("len = %d, want 2", len(titles))
	}
}

func TestDelete(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	p := testProblem()
	if err := svc.Add(ctx, p); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err := svc.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil after delete")
	}
}

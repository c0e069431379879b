package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jaemin/readcoach/ent"
	entproblem "github.com/jaemin/readcoach/ent/problem"
)

// problemRepo implements ProblemRepo using the ent client.
type problemRepo struct {
	client *ent.Client
}

func (r *problemRepo) Create(ctx context.Context, p *Problem) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Source == "" {
		p.Source = "manual"
	}

	created, err := r.client.Problem.Create().
		SetID(p.ID).
		SetTitle(p.Title).
		SetPassage(p.Passage).
		SetQuestion(p.Question).
		SetGradeLevel(p.GradeLevel).
		SetSource(p.Source).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save problem: %w", err)
	}
	p.CreatedAt = created.CreatedAt
	return nil
}

func (r *problemRepo) Get(ctx context.Context, id string) (*Problem, error) {
	p, err := r.client.Problem.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get problem: %w", err)
	}
	return entProblemToProblem(p), nil
}

func (r *problemRepo) List(ctx context.Context) ([]*Problem, error) {
	rows, err := r.client.Problem.Query().
		Order(ent.Desc(entproblem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}

	out := make([]*Problem, 0, len(rows))
	for _, p := range rows {
		out = append(out, entProblemToProblem(p))
	}
	return out, nil
}

func (r *problemRepo) Delete(ctx context.Context, id string) error {
	err := r.client.Problem.DeleteOneID(id).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("delete problem: %w", err)
	}
	return nil
}

func (r *problemRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Problem.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count problems: %w", err)
	}
	return n, nil
}

func entProblemToProblem(p *ent.Problem) *Problem {
	return &Problem{
		ID:         p.ID,
		Title:      p.Title,
		Passage:    p.Passage,
		Question:   p.Question,
		GradeLevel: p.GradeLevel,
		Source:     p.Source,
		CreatedAt:  p.CreatedAt,
	}
}

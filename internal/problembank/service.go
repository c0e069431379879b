// Package problembank manages the bank of reading problems: manual
// entry, JSON import, and LLM generation all land here.
package problembank

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaemin/readcoach/internal/store"
)

// Service provides validated access to the problem bank.
type Service struct {
	problems store.ProblemRepo
}

// NewService creates a Service backed by the given repository.
func NewService(problems store.ProblemRepo) *Service {
	return &Service{problems: problems}
}

// Add validates and stores a new problem. The ID is assigned by the store.
func (s *Service) Add(ctx context.Context, p *store.Problem) error {
	if err := validateProblem(p); err != nil {
		return err
	}
	if err := s.problems.Create(ctx, p); err != nil {
		return fmt.Errorf("add problem: %w", err)
	}
	return nil
}

// Get returns the problem with the given ID, or nil if absent.
func (s *Service) Get(ctx context.Context, id string) (*store.Problem, error) {
	return s.problems.Get(ctx, id)
}

// List returns all problems, most recent first.
func (s *Service) List(ctx context.Context) ([]*store.Problem, error) {
	return s.problems.List(ctx)
}

// Delete removes a problem from the bank.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.problems.Delete(ctx, id)
}

// Count returns the number of problems in the bank.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.problems.Count(ctx)
}

// Titles returns the titles of all problems, for prompt deduplication.
func (s *Service) Titles(ctx context.Context) ([]string, error) {
	all, err := s.problems.List(ctx)
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(all))
	for _, p := range all {
		titles = append(titles, p.Title)
	}
	return titles, nil
}

func validateProblem(p *store.Problem) error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("problem title is required")
	}
	if strings.TrimSpace(p.Passage) == "" {
		return fmt.Errorf("problem passage is required")
	}
	if strings.TrimSpace(p.Question) == "" {
		return fmt.Errorf("problem question is required")
	}
	if p.GradeLevel < 0 || p.GradeLevel > 9 {
		return fmt.Errorf("grade level must be between 0 and 9")
	}
	return nil
}

package job

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase encapsulates job posting scenarios.
type UseCase interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	Search(ctx context.Context, keywords []string, limit, offset int) ([]Job, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, j Job) (Job, error) {
	j.Title = strings.TrimSpace(j.Title)
	j.Company = strings.TrimSpace(j.Company)
	if j.Title == "" {
		return Job{}, ErrValidation("title is required")
	}
	if j.Company == "" {
		return Job{}, ErrValidation("company is required")
	}
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.PostedAt.IsZero() {
		j.PostedAt = time.Now().UTC()
	}
	if j.Skills == nil {
		j.Skills = []string{}
	}
	if err := s.repo.Create(ctx, j); err != nil {
		return Job{}, err
	}
	return j, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (Job, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Search(ctx context.Context, keywords []string, limit, offset int) ([]Job, error) {
	cleaned := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			cleaned = append(cleaned, k)
		}
	}
	return s.repo.Search(ctx, cleaned, limit, offset)
}

// ErrValidation is a simple validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

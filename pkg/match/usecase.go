package match

import (
	"context"

	"github.com/google/uuid"

	"github.com/jobmatch/backend/pkg/job"
	"github.com/jobmatch/backend/pkg/resume"
)

// UseCase computes the match score between an owned resume and a job posting.
type UseCase interface {
	Get(ctx context.Context, ownerID, resumeID, jobID uuid.UUID) (Score, error)
}

type service struct {
	resumes resume.Repository
	jobs    job.Repository
	cache   *ScoreCache
}

func NewService(resumes resume.Repository, jobs job.Repository, cache *ScoreCache) UseCase {
	return &service{resumes: resumes, jobs: jobs, cache: cache}
}

// Get is the composed read path: ownership check, cache lookup, compute on
// miss, best-effort write-back. Concurrent misses for the same pair may each
// recompute; the calculator is pure and cheap, so last write wins harmlessly.
func (s *service) Get(ctx context.Context, ownerID, resumeID, jobID uuid.UUID) (Score, error) {
	r, err := s.resumes.GetForOwner(ctx, ownerID, resumeID)
	if err != nil {
		return Score{}, err
	}
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return Score{}, err
	}

	if score, ok := s.cache.Get(ctx, resumeID, jobID); ok {
		return score, nil
	}

	score := ComputeScore(r.Keywords, j.Skills)
	s.cache.Put(ctx, resumeID, jobID, score)
	return score, nil
}

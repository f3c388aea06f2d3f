package match

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobmatch/backend/pkg/job"
	"github.com/jobmatch/backend/pkg/resume"
)

type fakeResumeRepo struct {
	resumes map[uuid.UUID]resume.Resume
}

func (f *fakeResumeRepo) Create(ctx context.Context, r resume.Resume) error { return nil }
func (f *fakeResumeRepo) UpdateParsed(ctx context.Context, id uuid.UUID, keywords []string, status resume.Status) error {
	return nil
}
func (f *fakeResumeRepo) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (resume.Resume, error) {
	r, ok := f.resumes[id]
	if !ok || r.OwnerID != ownerID {
		return resume.Resume{}, resume.ErrNotFound
	}
	return r, nil
}
func (f *fakeResumeRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]resume.Resume, error) {
	return nil, nil
}
func (f *fakeResumeRepo) ListIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}

type fakeJobRepo struct {
	jobs map[uuid.UUID]job.Job
}

func (f *fakeJobRepo) Create(ctx context.Context, j job.Job) error { return nil }
func (f *fakeJobRepo) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}
func (f *fakeJobRepo) Search(ctx context.Context, keywords []string, limit, offset int) ([]job.Job, error) {
	return nil, nil
}

func newMatchFixture(store *memStore) (UseCase, uuid.UUID, uuid.UUID, uuid.UUID, *ScoreCache) {
	owner := uuid.New()
	r := resume.Resume{
		ID:       uuid.New(),
		OwnerID:  owner,
		Keywords: []string{"react", "node"},
		Status:   resume.StatusProcessed,
	}
	j := job.Job{
		ID:     uuid.New(),
		Title:  "Frontend Engineer",
		Skills: []string{"React Developer", "Backend", "Node.js"},
	}
	var sc *ScoreCache
	if store != nil {
		sc = NewScoreCache(store, time.Hour, nil)
	} else {
		sc = NewScoreCache(brokenStore{}, time.Hour, nil)
	}
	uc := NewService(
		&fakeResumeRepo{resumes: map[uuid.UUID]resume.Resume{r.ID: r}},
		&fakeJobRepo{jobs: map[uuid.UUID]job.Job{j.ID: j}},
		sc,
	)
	return uc, owner, r.ID, j.ID, sc
}

func TestMatchUseCaseComputesAndCaches(t *testing.T) {
	store := newMemStore()
	uc, owner, resumeID, jobID, sc := newMatchFixture(store)
	ctx := context.Background()

	got, err := uc.Get(ctx, owner, resumeID, jobID)
	require.NoError(t, err)
	assert.Equal(t, 66.67, got.TotalScore)
	assert.Equal(t, 66.67, got.SkillsScore)

	// The result was written back under the composite key.
	cached, ok := sc.Get(ctx, resumeID, jobID)
	require.True(t, ok)
	assert.Equal(t, got, cached)
}

func TestMatchUseCasePrefersCachedScore(t *testing.T) {
	store := newMemStore()
	uc, owner, resumeID, jobID, sc := newMatchFixture(store)
	ctx := context.Background()

	// Pre-seed a value that fresh computation would not produce.
	seeded := Score{TotalScore: 42, SkillsScore: 42}
	sc.Put(ctx, resumeID, jobID, seeded)

	got, err := uc.Get(ctx, owner, resumeID, jobID)
	require.NoError(t, err)
	assert.Equal(t, seeded, got)
}

func TestMatchUseCaseBrokenCacheStillScores(t *testing.T) {
	uc, owner, resumeID, jobID, _ := newMatchFixture(nil)

	got, err := uc.Get(context.Background(), owner, resumeID, jobID)
	require.NoError(t, err)
	assert.Equal(t, 66.67, got.TotalScore)
}

func TestMatchUseCaseOwnershipAndAbsence(t *testing.T) {
	store := newMemStore()
	uc, owner, resumeID, jobID, _ := newMatchFixture(store)
	ctx := context.Background()

	// A foreign caller sees "resume not found", not a permission error.
	_, err := uc.Get(ctx, uuid.New(), resumeID, jobID)
	assert.ErrorIs(t, err, resume.ErrNotFound)

	_, err = uc.Get(ctx, owner, uuid.New(), jobID)
	assert.ErrorIs(t, err, resume.ErrNotFound)

	_, err = uc.Get(ctx, owner, resumeID, uuid.New())
	assert.ErrorIs(t, err, job.ErrNotFound)
}

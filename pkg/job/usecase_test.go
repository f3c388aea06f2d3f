package job

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memJobRepo struct {
	jobs map[uuid.UUID]Job
}

func (m *memJobRepo) Create(ctx context.Context, j Job) error {
	m.jobs[j.ID] = j
	return nil
}

func (m *memJobRepo) GetByID(ctx context.Context, id uuid.UUID) (Job, error) {
	j, ok := m.jobs[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	return j, nil
}

func (m *memJobRepo) Search(ctx context.Context, keywords []string, limit, offset int) ([]Job, error) {
	return nil, nil
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(&memJobRepo{jobs: map[uuid.UUID]Job{}})
	ctx := context.Background()

	_, err := svc.Create(ctx, Job{Company: "Acme"})
	assert.EqualError(t, err, "title is required")

	_, err = svc.Create(ctx, Job{Title: "  Engineer  "})
	assert.EqualError(t, err, "company is required")

	created, err := svc.Create(ctx, Job{Title: "  Engineer  ", Company: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "Engineer", created.Title)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.PostedAt.IsZero())
	assert.NotNil(t, created.Skills)
}

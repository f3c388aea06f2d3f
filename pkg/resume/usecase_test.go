package resume

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	resumes map[uuid.UUID]Resume
}

func newMemRepo() *memRepo { return &memRepo{resumes: map[uuid.UUID]Resume{}} }

func (m *memRepo) Create(ctx context.Context, r Resume) error {
	m.resumes[r.ID] = r
	return nil
}

func (m *memRepo) UpdateParsed(ctx context.Context, id uuid.UUID, keywords []string, status Status) error {
	r, ok := m.resumes[id]
	if !ok {
		return ErrNotFound
	}
	r.Keywords = keywords
	r.Status = status
	m.resumes[id] = r
	return nil
}

func (m *memRepo) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Resume, error) {
	r, ok := m.resumes[id]
	if !ok || r.OwnerID != ownerID {
		return Resume{}, ErrNotFound
	}
	return r, nil
}

func (m *memRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Resume, error) {
	out := []Resume{}
	for _, r := range m.resumes {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRepo) ListIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	out := []uuid.UUID{}
	for _, r := range m.resumes {
		if r.OwnerID == ownerID {
			out = append(out, r.ID)
		}
	}
	return out, nil
}

func TestUploadExtractsKeywords(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, nil)
	owner := uuid.New()

	res, err := svc.Upload(context.Background(), owner, "cv.txt", "text/plain",
		[]byte("Senior React developer, Node.js and PostgreSQL"))
	require.NoError(t, err)

	assert.Equal(t, StatusProcessed, res.Status)
	assert.Equal(t, []string{"senior", "react", "developer", "node.js", "postgresql"}, res.Keywords)

	stored, err := svc.Get(context.Background(), owner, res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.Keywords, stored.Keywords)
	assert.Equal(t, StatusProcessed, stored.Status)
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	svc := NewService(newMemRepo(), nil)
	_, err := svc.Upload(context.Background(), uuid.New(), "x.png", "image/png", []byte{1})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestUploadKeepsResumeWhenParsingFails(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, nil)
	owner := uuid.New()

	// Valid content type but not a real PDF: extraction fails, upload survives.
	res, err := svc.Upload(context.Background(), owner, "cv.pdf", "application/pdf",
		[]byte("definitely not a pdf"))
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, res.Status)
	assert.NotNil(t, res.Keywords)
	assert.Empty(t, res.Keywords)

	stored, err := svc.Get(context.Background(), owner, res.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, stored.Status)
}

func TestUploadOwnershipScoping(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, nil)
	owner := uuid.New()

	res, err := svc.Upload(context.Background(), owner, "cv.txt", "text/plain", []byte("Go developer"))
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), uuid.New(), res.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

package resume

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UseCase covers upload-and-parse plus owner-scoped reads.
type UseCase interface {
	// Upload stores the document, extracts keywords and returns the resume
	// in its terminal status. Extraction failure is not an upload failure:
	// the resume is kept with StatusFailed and an empty keyword set.
	Upload(ctx context.Context, ownerID uuid.UUID, filename, contentType string, data []byte) (Resume, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (Resume, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Resume, error)
}

type service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{repo: repo, log: log}
}

func (s *service) Upload(ctx context.Context, ownerID uuid.UUID, filename, contentType string, data []byte) (Resume, error) {
	if !AllowedContentType(contentType) {
		return Resume{}, ErrUnsupportedType
	}
	if len(data) == 0 {
		return Resume{}, fmt.Errorf("empty file")
	}

	r := Resume{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Filename:    filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		StorageKey:  fmt.Sprintf("resumes/%s/%s", ownerID, filename),
		Keywords:    []string{},
		Status:      StatusUnprocessed,
		UploadedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return Resume{}, err
	}

	text, err := ExtractText(contentType, data)
	if err != nil || text == "" {
		s.log.Warn("resume text extraction failed",
			zap.String("resumeId", r.ID.String()), zap.Error(err))
		r.Status = StatusFailed
		if uerr := s.repo.UpdateParsed(ctx, r.ID, r.Keywords, r.Status); uerr != nil {
			return Resume{}, uerr
		}
		return r, nil
	}

	r.Keywords = ExtractKeywords(text)
	r.Status = StatusProcessed
	if err := s.repo.UpdateParsed(ctx, r.ID, r.Keywords, r.Status); err != nil {
		return Resume{}, err
	}
	return r, nil
}

func (s *service) Get(ctx context.Context, ownerID, id uuid.UUID) (Resume, error) {
	return s.repo.GetForOwner(ctx, ownerID, id)
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Resume, error) {
	return s.repo.ListByOwner(ctx, ownerID, limit, offset)
}

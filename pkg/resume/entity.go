package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status of the keyword-extraction step. A resume starts Unprocessed and
// moves to exactly one terminal state once a parse attempt completes.
type Status string

const (
	StatusUnprocessed Status = "unprocessed"
	StatusProcessed   Status = "processed"
	StatusFailed      Status = "failed"
)

// Resume stores the uploaded file metadata plus the extracted keyword set.
// Keywords is non-nil even when empty.
type Resume struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId,omitempty"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	StorageKey  string    `json:"storageKey,omitempty"`
	Keywords    []string  `json:"keywords"`
	Status      Status    `json:"status"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// ErrNotFound covers both absence and foreign ownership, so callers cannot
// distinguish "not yours" from "does not exist".
var ErrNotFound = errors.New("resume not found")

// Repository is the persistence port for resumes.
type Repository interface {
	Create(ctx context.Context, r Resume) error
	// UpdateParsed fills the keyword set and flips the status after a parse
	// attempt. Called once per resume.
	UpdateParsed(ctx context.Context, id uuid.UUID, keywords []string, status Status) error
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Resume, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Resume, error)
	ListIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
}

package job

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Job describes an open position. Skills may be empty; scoring against an
// empty skill list yields a defined zero.
type Job struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location,omitempty"`
	Type        string    `json:"type,omitempty"`
	Description string    `json:"description,omitempty"`
	Skills      []string  `json:"skills"`
	Salary      string    `json:"salary,omitempty"`
	PostedAt    time.Time `json:"postedAt"`
}

var ErrNotFound = errors.New("job not found")

// Repository is the persistence port for job postings.
type Repository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	// Search matches any keyword against title, description and skills.
	Search(ctx context.Context, keywords []string, limit, offset int) ([]Job, error)
}

package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobmatch/backend/pkg/resume"
)

// ResumeRepository implements resume.Repository backed by PostgreSQL (pgx).
type ResumeRepository struct {
	pool *pgxpool.Pool
}

func NewResumeRepository(pool *pgxpool.Pool) (*ResumeRepository, error) {
	r := &ResumeRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ResumeRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS resumes (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	filename TEXT NOT NULL,
	content_type TEXT NOT NULL,
	size BIGINT NOT NULL,
	storage_key TEXT NOT NULL DEFAULT '',
	keywords TEXT[] NOT NULL DEFAULT '{}',
	status TEXT NOT NULL,
	uploaded_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS resumes_owner_idx ON resumes(owner_id);
`)
	return err
}

func (r *ResumeRepository) Create(ctx context.Context, res resume.Resume) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO resumes (id, owner_id, filename, content_type, size, storage_key, keywords, status, uploaded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, res.ID, res.OwnerID, res.Filename, res.ContentType, res.Size, res.StorageKey, res.Keywords, string(res.Status), res.UploadedAt)
	return err
}

func (r *ResumeRepository) UpdateParsed(ctx context.Context, id uuid.UUID, keywords []string, status resume.Status) error {
	if keywords == nil {
		keywords = []string{}
	}
	tag, err := r.pool.Exec(ctx, `
UPDATE resumes SET keywords = $2, status = $3 WHERE id = $1
`, id, keywords, string(status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}

func (r *ResumeRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (resume.Resume, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, filename, content_type, size, storage_key, keywords, status, uploaded_at
FROM resumes WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	return scanResume(row)
}

func (r *ResumeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]resume.Resume, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, filename, content_type, size, storage_key, keywords, status, uploaded_at
FROM resumes WHERE owner_id = $1
ORDER BY uploaded_at DESC
LIMIT $2 OFFSET $3
`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []resume.Resume{}
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, res)
	}
	return items, rows.Err()
}

func (r *ResumeRepository) ListIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id FROM resumes WHERE owner_id = $1 ORDER BY uploaded_at DESC
`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanResume(row pgx.Row) (resume.Resume, error) {
	var res resume.Resume
	var status string
	var uploaded time.Time
	if err := row.Scan(&res.ID, &res.OwnerID, &res.Filename, &res.ContentType, &res.Size, &res.StorageKey, &res.Keywords, &status, &uploaded); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Resume{}, resume.ErrNotFound
		}
		return resume.Resume{}, err
	}
	if res.Keywords == nil {
		res.Keywords = []string{}
	}
	res.Status = resume.Status(status)
	res.UploadedAt = uploaded.UTC()
	return res, nil
}

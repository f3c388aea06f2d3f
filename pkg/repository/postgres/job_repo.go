package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobmatch/backend/pkg/job"
)

// JobRepository implements job.Repository backed by PostgreSQL (pgx).
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) (*JobRepository, error) {
	r := &JobRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JobRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS jobs (
	id UUID PRIMARY KEY,
	title TEXT NOT NULL,
	company TEXT NOT NULL,
	location TEXT NOT NULL DEFAULT '',
	type TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	skills TEXT[] NOT NULL DEFAULT '{}',
	salary TEXT NOT NULL DEFAULT '',
	posted_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS jobs_posted_idx ON jobs(posted_at DESC);
`)
	return err
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO jobs (id, title, company, location, type, description, skills, salary, posted_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, j.ID, j.Title, j.Company, j.Location, j.Type, j.Description, j.Skills, j.Salary, j.PostedAt)
	return err
}

func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, title, company, location, type, description, skills, salary, posted_at
FROM jobs WHERE id = $1
`, id)
	return scanJob(row)
}

// Search matches any keyword case-insensitively against title, description
// and the skills array.
func (r *JobRepository) Search(ctx context.Context, keywords []string, limit, offset int) ([]job.Job, error) {
	query := `
SELECT id, title, company, location, type, description, skills, salary, posted_at
FROM jobs
`
	args := []any{}
	if len(keywords) > 0 {
		query += `
WHERE EXISTS (
	SELECT 1 FROM unnest($1::text[]) AS kw
	WHERE title ILIKE '%' || kw || '%'
	   OR description ILIKE '%' || kw || '%'
	   OR EXISTS (SELECT 1 FROM unnest(skills) AS s WHERE s ILIKE '%' || kw || '%')
)
ORDER BY posted_at DESC
LIMIT $2 OFFSET $3
`
		args = append(args, keywords, limit, offset)
	} else {
		query += `
ORDER BY posted_at DESC
LIMIT $1 OFFSET $2
`
		args = append(args, limit, offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []job.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, j)
	}
	return items, rows.Err()
}

func scanJob(row pgx.Row) (job.Job, error) {
	var j job.Job
	var posted time.Time
	if err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Type, &j.Description, &j.Skills, &j.Salary, &posted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	if j.Skills == nil {
		j.Skills = []string{}
	}
	j.PostedAt = posted.UTC()
	return j, nil
}

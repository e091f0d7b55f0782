package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/merlinjoyv/GlowUpAI/internal/models"
)

type SubmissionRepo struct {
	pool *pgxpool.Pool
}

func NewSubmissionRepo(pool *pgxpool.Pool) *SubmissionRepo {
	return &SubmissionRepo{pool: pool}
}

func (r *SubmissionRepo) Save(ctx context.Context, s *models.Submission) error {
	query := `INSERT INTO submissions (id, name, email, phone, client_timestamp, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query, s.ID, s.Name, s.Email, s.Phone, s.Timestamp, s.CreatedAt)
	return err
}

func (r *SubmissionRepo) List(ctx context.Context, limit int) ([]models.Submission, error) {
	query := `SELECT id, name, email, phone, client_timestamp, created_at
		FROM submissions ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []models.Submission
	for rows.Next() {
		var s models.Submission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Timestamp, &s.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

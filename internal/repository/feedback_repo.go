package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"vocational-api/internal/domain"
)

// FeedbackRepository persiste la valoracion del usuario. El upsert con
// clave en assessment_id implementa last-write-wins: feedback concurrente
// para el mismo assessment lo resuelve la base, no el engine.
type FeedbackRepository interface {
	Upsert(ctx context.Context, feedback domain.Feedback) error
	GetByAssessmentID(ctx context.Context, assessmentID string) (domain.Feedback, error)
}

type PgFeedbackRepository struct {
	pool *pgxpool.Pool
}

func NewPgFeedbackRepository(pool *pgxpool.Pool) *PgFeedbackRepository {
	return &PgFeedbackRepository{pool: pool}
}

func (r *PgFeedbackRepository) Upsert(ctx context.Context, feedback domain.Feedback) error {
	const query = `
		INSERT INTO feedback (assessment_id, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (assessment_id)
		DO UPDATE SET
			rating = EXCLUDED.rating,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query,
		feedback.AssessmentID,
		feedback.Rating,
		feedback.CreatedAt,
		feedback.UpdatedAt,
	)
	return err
}

func (r *PgFeedbackRepository) GetByAssessmentID(ctx context.Context, assessmentID string) (domain.Feedback, error) {
	const query = `
		SELECT assessment_id, rating, created_at, updated_at
		FROM feedback
		WHERE assessment_id = $1
	`

	var f domain.Feedback
	err := r.pool.QueryRow(ctx, query, assessmentID).Scan(
		&f.AssessmentID,
		&f.Rating,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return domain.Feedback{}, err
	}
	return f, nil
}

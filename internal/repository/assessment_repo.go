package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"vocational-api/internal/domain"
)

// AssessmentRepository es el Result Store: asigna identidad al persistir y
// permite recuperar un resultado por id. Devuelve pgx.ErrNoRows cuando el
// id no existe, igual que el resto de los repositorios.
type AssessmentRepository interface {
	Save(ctx context.Context, assessment domain.Assessment) (string, error)
	GetByID(ctx context.Context, id string) (domain.Assessment, error)
}

type PgAssessmentRepository struct {
	pool *pgxpool.Pool
}

func NewPgAssessmentRepository(pool *pgxpool.Pool) *PgAssessmentRepository {
	return &PgAssessmentRepository{pool: pool}
}

// Save persiste el assessment completo en una sola fila (all-or-nothing) y
// devuelve el id asignado. Las respuestas crudas y el ranking van como
// JSONB para recalibraciones futuras.
func (r *PgAssessmentRepository) Save(ctx context.Context, assessment domain.Assessment) (string, error) {
	const query = `
		INSERT INTO assessments
			(id, created_at, score_r, score_i, score_a, score_s, score_e, score_c,
			 dominant_profile, answers, top_courses)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	answersJSON, err := json.Marshal(assessment.Answers)
	if err != nil {
		return "", err
	}
	coursesJSON, err := json.Marshal(assessment.TopCourses)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	createdAt := assessment.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = r.pool.Exec(ctx, query,
		id,
		createdAt,
		assessment.UserScores.R,
		assessment.UserScores.I,
		assessment.UserScores.A,
		assessment.UserScores.S,
		assessment.UserScores.E,
		assessment.UserScores.C,
		assessment.DominantProfile,
		answersJSON,
		coursesJSON,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *PgAssessmentRepository) GetByID(ctx context.Context, id string) (domain.Assessment, error) {
	const query = `
		SELECT id, created_at, score_r, score_i, score_a, score_s, score_e, score_c,
		       dominant_profile, answers, top_courses
		FROM assessments
		WHERE id = $1
	`

	var a domain.Assessment
	var answersJSON, coursesJSON []byte

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.CreatedAt,
		&a.UserScores.R,
		&a.UserScores.I,
		&a.UserScores.A,
		&a.UserScores.S,
		&a.UserScores.E,
		&a.UserScores.C,
		&a.DominantProfile,
		&answersJSON,
		&coursesJSON,
	)
	if err != nil {
		return domain.Assessment{}, err
	}

	if err := json.Unmarshal(answersJSON, &a.Answers); err != nil {
		return domain.Assessment{}, err
	}
	if err := json.Unmarshal(coursesJSON, &a.TopCourses); err != nil {
		return domain.Assessment{}, err
	}
	return a, nil
}

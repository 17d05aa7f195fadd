package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"vocational-api/internal/domain"
)

// QuestionRepository expone el catalogo de preguntas en modo solo-lectura
// para el engine; Upsert existe para la herramienta de seed.
type QuestionRepository interface {
	FindAll(ctx context.Context) ([]domain.Question, error)
	Upsert(ctx context.Context, question domain.Question) error
}

type PgQuestionRepository struct {
	pool *pgxpool.Pool
}

func NewPgQuestionRepository(pool *pgxpool.Pool) *PgQuestionRepository {
	return &PgQuestionRepository{pool: pool}
}

func (r *PgQuestionRepository) FindAll(ctx context.Context) ([]domain.Question, error) {
	const query = `
		SELECT id, text, dimension
		FROM questions
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var q domain.Question
		var dim string

		if err := rows.Scan(&q.ID, &q.Text, &dim); err != nil {
			return nil, err
		}
		d, err := domain.ParseDimension(dim)
		if err != nil {
			return nil, err
		}
		q.Dimension = d
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return questions, nil
}

func (r *PgQuestionRepository) Upsert(ctx context.Context, question domain.Question) error {
	const query = `
		INSERT INTO questions (id, text, dimension)
		VALUES ($1, $2, $3)
		ON CONFLICT (id)
		DO UPDATE SET
			text = EXCLUDED.text,
			dimension = EXCLUDED.dimension
	`

	_, err := r.pool.Exec(ctx, query, question.ID, question.Text, string(question.Dimension))
	return err
}

package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"vocational-api/internal/domain"
)

// CourseRepository expone el catalogo de cursos con sus perfiles ideales.
// El engine lo consume solo para enumerar; Upsert existe para el seed.
type CourseRepository interface {
	FindAll(ctx context.Context) ([]domain.Course, error)
	Upsert(ctx context.Context, course domain.Course) error
}

type PgCourseRepository struct {
	pool *pgxpool.Pool
}

func NewPgCourseRepository(pool *pgxpool.Pool) *PgCourseRepository {
	return &PgCourseRepository{pool: pool}
}

func (r *PgCourseRepository) FindAll(ctx context.Context) ([]domain.Course, error) {
	const query = `
		SELECT id, title, description, area, riasec
		FROM courses
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var c domain.Course
		var vec pgvector.Vector

		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Area, &vec); err != nil {
			return nil, err
		}
		scores, err := vectorToScores(vec)
		if err != nil {
			return nil, fmt.Errorf("course %s: %w", c.ID, err)
		}
		c.Scores = scores
		courses = append(courses, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

func (r *PgCourseRepository) Upsert(ctx context.Context, course domain.Course) error {
	const query = `
		INSERT INTO courses (id, title, description, area, riasec)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id)
		DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			area = EXCLUDED.area,
			riasec = EXCLUDED.riasec
	`

	_, err := r.pool.Exec(ctx, query,
		course.ID,
		course.Title,
		course.Description,
		course.Area,
		scoresToVector(course.Scores),
	)
	return err
}

// La columna riasec es un vector(6) pgvector con componentes en orden
// canonico R, I, A, S, E, C. pgvector almacena float32: un score como
// 4.2 vuelve del store como ~4.1999998. El ranking no cambia porque
// todos los cursos pasan por el mismo redondeo de precision.
func scoresToVector(scores domain.TraitVector) pgvector.Vector {
	components := make([]float32, len(domain.Dimensions))
	for i, d := range domain.Dimensions {
		components[i] = float32(scores.Value(d))
	}
	return pgvector.NewVector(components)
}

func vectorToScores(vec pgvector.Vector) (domain.TraitVector, error) {
	components := vec.Slice()
	if len(components) != len(domain.Dimensions) {
		return domain.TraitVector{}, fmt.Errorf("expected %d vector components, got %d", len(domain.Dimensions), len(components))
	}
	var scores domain.TraitVector
	for i, d := range domain.Dimensions {
		scores.Set(d, float64(components[i]))
	}
	return scores, nil
}

package main

import (
	"context"
	"flag"
	"log"

	"vocational-api/internal/catalog"
	"vocational-api/internal/config"
	"vocational-api/internal/db"
	"vocational-api/internal/repository"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// schemaStatements crea las tablas del servicio, de a una sentencia por
// Exec (pgx en protocolo extendido no acepta multi-statement). La columna
// riasec usa pgvector, componentes en orden canonico R,I,A,S,E,C.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS vector`,
	`CREATE TABLE IF NOT EXISTS questions (
		id        TEXT PRIMARY KEY,
		text      TEXT NOT NULL,
		dimension TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		area        TEXT NOT NULL DEFAULT '',
		riasec      vector(6) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS assessments (
		id               UUID PRIMARY KEY,
		created_at       TIMESTAMPTZ NOT NULL,
		score_r          DOUBLE PRECISION NOT NULL,
		score_i          DOUBLE PRECISION NOT NULL,
		score_a          DOUBLE PRECISION NOT NULL,
		score_s          DOUBLE PRECISION NOT NULL,
		score_e          DOUBLE PRECISION NOT NULL,
		score_c          DOUBLE PRECISION NOT NULL,
		dominant_profile TEXT NOT NULL,
		answers          JSONB NOT NULL,
		top_courses      JSONB NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS feedback (
		assessment_id UUID PRIMARY KEY REFERENCES assessments (id),
		rating        INTEGER NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
}

func main() {
	catalogPath := flag.String("file", "data/catalog.yaml", "catalog YAML file")
	flag.Parse()

	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	questions, courses, err := catalog.Load(*catalogPath)
	if err != nil {
		logger.Fatal("load catalog", zap.String("file", *catalogPath), zap.Error(err))
	}

	if missing := catalog.MissingDimensions(questions); len(missing) > 0 {
		// Un cuestionario asi nunca puede producir un vector completo.
		logger.Warn("questionnaire does not cover all dimensions",
			zap.Any("missing", missing))
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			logger.Fatal("apply schema", zap.Error(err))
		}
	}

	questionRepo := repository.NewPgQuestionRepository(pool)
	for _, q := range questions {
		if err := questionRepo.Upsert(ctx, q); err != nil {
			logger.Fatal("upsert question", zap.String("id", q.ID), zap.Error(err))
		}
	}

	courseRepo := repository.NewPgCourseRepository(pool)
	for _, c := range courses {
		if err := courseRepo.Upsert(ctx, c); err != nil {
			logger.Fatal("upsert course", zap.String("id", c.ID), zap.Error(err))
		}
	}

	logger.Info("catalog seeded",
		zap.Int("questions", len(questions)),
		zap.Int("courses", len(courses)),
	)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"vocational-api/internal/domain"
	"vocational-api/internal/repository"
)

// FeedbackService registra la valoracion del usuario sobre un assessment
// ya persistido. Un envio posterior para el mismo id reemplaza al anterior.
type FeedbackService struct {
	logger      *zap.Logger
	assessments repository.AssessmentRepository
	feedback    repository.FeedbackRepository
	retry       retryPolicy
}

func NewFeedbackService(
	logger *zap.Logger,
	assessments repository.AssessmentRepository,
	feedback repository.FeedbackRepository,
	storeAttempts int,
	storeBackoff time.Duration,
) *FeedbackService {
	return &FeedbackService{
		logger:      logger,
		assessments: assessments,
		feedback:    feedback,
		retry:       newRetryPolicy(storeAttempts, storeBackoff),
	}
}

// Record valida el rating, verifica que el assessment exista y hace upsert
// del feedback. Solo el upsert se reintenta.
func (s *FeedbackService) Record(ctx context.Context, assessmentID string, rating int) error {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return domain.NewValidationError("assessment_id", "assessment id is required")
	}
	if rating < domain.MinScore || rating > domain.MaxScore {
		return domain.NewValidationError("rating",
			fmt.Sprintf("rating %d outside [%d,%d]", rating, domain.MinScore, domain.MaxScore))
	}

	// Un id que ni siquiera es un UUID no puede existir en el store; sin
	// este guard, Postgres falla con 22P02 sobre la columna uuid y un
	// error permanente del caller saldria como storage reintentable.
	if _, err := uuid.Parse(assessmentID); err != nil {
		return domain.NewNotFoundError(fmt.Sprintf("assessment %s not found", assessmentID))
	}

	if _, err := s.assessments.GetByID(ctx, assessmentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewNotFoundError(fmt.Sprintf("assessment %s not found", assessmentID))
		}
		s.logger.Error("assessment lookup failed", zap.Error(err))
		return domain.NewStorageError(err)
	}

	now := time.Now().UTC()
	record := domain.Feedback{
		AssessmentID: assessmentID,
		Rating:       rating,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := s.retry.run(ctx, func(ctx context.Context) error {
		return s.feedback.Upsert(ctx, record)
	})
	if err != nil {
		s.logger.Error("feedback upsert failed",
			zap.String("assessment_id", assessmentID), zap.Error(err))
		return domain.NewStorageError(err)
	}

	s.logger.Info("feedback recorded",
		zap.String("assessment_id", assessmentID), zap.Int("rating", rating))
	return nil
}

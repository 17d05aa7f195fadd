package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"vocational-api/internal/domain"
	"vocational-api/internal/repository"
)

// AssessmentService orquesta una evaluacion completa: agrega respuestas,
// clasifica el perfil, rankea cursos y persiste el resultado. Es el unico
// componente que habla con el Result Store, y hace exactamente una
// escritura por evaluacion exitosa: si cualquier etapa de computo falla,
// no se persiste nada.
type AssessmentService struct {
	logger      *zap.Logger
	questions   repository.QuestionRepository
	courses     repository.CourseRepository
	assessments repository.AssessmentRepository
	scorer      TraitScorer
	matcher     CourseMatcher
	topCourses  int
	retry       retryPolicy
}

const defaultTopCourses = 5

func NewAssessmentService(
	logger *zap.Logger,
	questions repository.QuestionRepository,
	courses repository.CourseRepository,
	assessments repository.AssessmentRepository,
	topCourses int,
	storeAttempts int,
	storeBackoff time.Duration,
) *AssessmentService {
	if topCourses <= 0 {
		topCourses = defaultTopCourses
	}
	return &AssessmentService{
		logger:      logger,
		questions:   questions,
		courses:     courses,
		assessments: assessments,
		scorer:      DefaultTraitScorer,
		matcher:     DefaultCourseMatcher,
		topCourses:  topCourses,
		retry:       newRetryPolicy(storeAttempts, storeBackoff),
	}
}

// Submit procesa el set de respuestas de un cuestionario completo y
// devuelve el Assessment ya persistido, con el id asignado por el store.
// Los errores de computo son terminales (reintentar un calculo puro no
// cambia nada); solo la escritura final se reintenta, acotada.
func (s *AssessmentService) Submit(ctx context.Context, answers []domain.Answer) (domain.Assessment, error) {
	catalog, err := s.questions.FindAll(ctx)
	if err != nil {
		s.logger.Error("question catalog read failed", zap.Error(err))
		return domain.Assessment{}, domain.NewStorageError(err)
	}
	if len(catalog) == 0 {
		s.logger.Error("question catalog is empty")
		return domain.Assessment{}, domain.NewConfigurationError("question catalog is empty")
	}

	dimensions := make(map[string]domain.Dimension, len(catalog))
	for _, q := range catalog {
		dimensions[q.ID] = q.Dimension
	}

	vector, err := s.scorer.BuildVector(answers, dimensions)
	if err != nil {
		return domain.Assessment{}, err
	}

	profile, err := s.scorer.DominantProfile(vector)
	if err != nil {
		// Catalogo que omite dimensiones: falla de configuracion del
		// lado servidor, no del caller.
		s.logger.Error("cannot classify partial vector", zap.Error(err))
		return domain.Assessment{}, err
	}

	courseCatalog, err := s.courses.FindAll(ctx)
	if err != nil {
		s.logger.Error("course catalog read failed", zap.Error(err))
		return domain.Assessment{}, domain.NewStorageError(err)
	}

	matched, err := s.matcher.Match(vector, courseCatalog, s.topCourses)
	if err != nil {
		s.logger.Error("course matching failed", zap.Error(err))
		return domain.Assessment{}, err
	}

	assessment := domain.Assessment{
		UserScores:      vector,
		DominantProfile: profile,
		TopCourses:      matched,
		Answers:         answers,
		CreatedAt:       time.Now().UTC(),
	}

	var id string
	err = s.retry.run(ctx, func(ctx context.Context) error {
		var saveErr error
		id, saveErr = s.assessments.Save(ctx, assessment)
		return saveErr
	})
	if err != nil {
		s.logger.Error("assessment save failed", zap.Error(err))
		return domain.Assessment{}, domain.NewStorageError(err)
	}
	assessment.ID = id

	s.logger.Info("assessment persisted",
		zap.String("assessment_id", id),
		zap.String("dominant_profile", profile),
		zap.Int("top_courses", len(matched)),
	)
	return assessment, nil
}

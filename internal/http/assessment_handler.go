package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vocational-api/internal/domain"
	"vocational-api/internal/repository"
	"vocational-api/internal/service"
)

// AssessmentHandler mantiene dependencias para el cuestionario y el submit.
type AssessmentHandler struct {
	logger      *zap.Logger
	questions   repository.QuestionRepository
	assessments *service.AssessmentService
}

func NewAssessmentHandler(
	logger *zap.Logger,
	questions repository.QuestionRepository,
	assessments *service.AssessmentService,
) *AssessmentHandler {
	return &AssessmentHandler{
		logger:      logger,
		questions:   questions,
		assessments: assessments,
	}
}

// GetQuestions maneja GET /questions: pass-through al catalogo, sin logica.
func (h *AssessmentHandler) GetQuestions(c *gin.Context) {
	questions, err := h.questions.FindAll(c.Request.Context())
	if err != nil {
		h.logger.Error("list questions failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch questions"})
		return
	}
	if questions == nil {
		questions = []domain.Question{}
	}
	c.JSON(http.StatusOK, questions)
}

// SubmitAssessment maneja POST /submit. Sin binding de required: el rango,
// los duplicados y el set vacio los valida el engine, que reporta el kind
// y el campo ofensor en vez de un "invalid request" generico.
func (h *AssessmentHandler) SubmitAssessment(c *gin.Context) {
	var req struct {
		Answers []struct {
			QuestionID string `json:"question_id"`
			Score      int    `json:"score"`
		} `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid submit request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	answers := make([]domain.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, domain.Answer{QuestionID: a.QuestionID, Score: a.Score})
	}

	result, err := h.assessments.Submit(c.Request.Context(), answers)
	if err != nil {
		if domain.KindOf(err) == domain.KindValidation {
			h.logger.Warn("submit rejected", zap.Error(err))
		}
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

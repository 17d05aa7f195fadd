package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vocational-api/internal/domain"
	"vocational-api/internal/service"
)

// FeedbackHandler mantiene dependencias para el endpoint de feedback.
type FeedbackHandler struct {
	logger   *zap.Logger
	feedback *service.FeedbackService
}

func NewFeedbackHandler(logger *zap.Logger, feedback *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{logger: logger, feedback: feedback}
}

// SubmitFeedback maneja POST /feedback/:id. El rating no se valida en el
// binding: el rango lo chequea el service para que un 0 o un 6 salgan con
// el kind y el campo ofensor, no como "invalid request" generico.
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req struct {
		Rating int `json:"rating"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid feedback request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.feedback.Record(c.Request.Context(), c.Param("id"), req.Rating); err != nil {
		if domain.KindOf(err) == domain.KindValidation {
			h.logger.Warn("feedback rejected", zap.Error(err))
		}
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "feedback received"})
}

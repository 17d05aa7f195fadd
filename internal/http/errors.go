package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vocational-api/internal/domain"
)

// respondEngineError mapea el kind del error a un status HTTP. Las fallas
// de computo del lado servidor (vector incompleto, catalogo inutilizable)
// ya quedaron logueadas en el service y salen como falla generica; solo
// storage amerita un "try again" al caller.
func respondEngineError(c *gin.Context, err error) {
	var engineErr *domain.Error
	if !errors.As(err, &engineErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	switch engineErr.Kind {
	case domain.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{
			"kind":  engineErr.Kind,
			"field": engineErr.Field,
			"error": engineErr.Message,
		})
	case domain.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{
			"kind":  engineErr.Kind,
			"error": engineErr.Message,
		})
	case domain.KindStorage:
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"kind":  engineErr.Kind,
			"error": "temporary failure, try again",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"kind":  engineErr.Kind,
			"error": "assessment engine unavailable",
		})
	}
}

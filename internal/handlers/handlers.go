package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oleksiiv/warehouse-golang/internal/services"
	"github.com/oleksiiv/warehouse-golang/internal/store"
	"go.uber.org/zap"
)

// Handlers holds all dependencies for the HTTP handlers.
type Handlers struct {
	Services *services.Services
	Log      *zap.Logger
}

// respondError maps the store's error taxonomy onto HTTP status codes.
// Absence is not handled here; services signal it with a nil record and
// handlers answer 404 directly.
func (h *Handlers) respondError(c *gin.Context, err error) {
	var ve *store.ValidationError
	var ie *store.IntegrityError
	var se *store.StoreUnavailableError

	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Msg})
	case errors.As(err, &ie):
		c.JSON(http.StatusConflict, gin.H{"error": ie.Msg})
	case errors.As(err, &se):
		h.Log.Error("store unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
	default:
		h.Log.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func respondNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
}

func respondDeleted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

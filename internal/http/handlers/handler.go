package handlers

import (
	"errors"
	"net/http"

	"rps_game/internal/domain"
	"rps_game/internal/game"
	"rps_game/internal/http/middleware"
	"rps_game/internal/service"
	"rps_game/internal/ws"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Sessions *service.SessionService
	Hub      *ws.Hub
}

func NewHandler(sessions *service.SessionService, hub *ws.Hub) *Handler {
	return &Handler{
		Sessions: sessions,
		Hub:      hub,
	}
}

// getSessionID извлекает session_id из контекста Gin
func getSessionID(c *gin.Context) (string, bool) {
	id := c.GetString(middleware.SessionIDKey)
	return id, id != ""
}

// writeError maps service errors to HTTP responses.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, domain.ErrInvalidMove),
		errors.Is(err, game.ErrUnknownStrategy),
		errors.Is(err, service.ErrInvalidOutcome):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

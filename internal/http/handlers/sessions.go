package handlers

import (
	"net/http"

	"rps_game/internal/game"
	"rps_game/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateSessionRequest selects the opponent strategy; empty means random.
type CreateSessionRequest struct {
	Strategy string `json:"strategy"`
}

type CreateSessionResponse struct {
	SessionID string        `json:"session_id"`
	Token     string        `json:"token"`
	Strategy  string        `json:"strategy"`
	Score     service.Score `json:"score"`
}

// CreateSession starts a new match and returns a bearer token bound to it.
func (h *Handler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
			return
		}
	}
	if req.Strategy == "" {
		req.Strategy = string(game.KindRandom)
	}

	kind, err := game.ParseKind(req.Strategy)
	if err != nil {
		writeError(c, err)
		return
	}

	sess, err := h.Sessions.Create(kind)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := service.GenerateJWT(sess.ID)
	if err != nil {
		_ = h.Sessions.Delete(sess.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token error"})
		return
	}

	score, _ := h.Sessions.Score(sess.ID)
	c.JSON(http.StatusCreated, CreateSessionResponse{
		SessionID: sess.ID,
		Token:     token,
		Strategy:  string(sess.Strategy()),
		Score:     score,
	})
}

// DeleteSession ends the caller's session and drops its websocket connections.
func (h *Handler) DeleteSession(c *gin.Context) {
	id, ok := getSessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session not found"})
		return
	}

	if err := h.Sessions.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	if h.Hub != nil {
		h.Hub.CloseSession(id)
	}
	c.Status(http.StatusNoContent)
}

// Strategies lists the selectable opponent strategies.
func (h *Handler) Strategies(c *gin.Context) {
	kinds := make([]string, 0, len(game.Kinds))
	for _, k := range game.Kinds {
		kinds = append(kinds, string(k))
	}
	c.JSON(http.StatusOK, gin.H{
		"strategies": kinds,
		"default":    game.KindRandom,
	})
}

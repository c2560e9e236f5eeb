package handlers

import (
	"net/http"

	"rps_game/internal/domain"

	"github.com/gin-gonic/gin"
)

type PlayRoundRequest struct {
	Move string `json:"move" binding:"required"`
}

// PlayRound: one round against the session's opponent
func (h *Handler) PlayRound(c *gin.Context) {
	id, ok := getSessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session not found"})
		return
	}

	var req PlayRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	move, err := domain.ParseMove(req.Move)
	if err != nil {
		writeError(c, err)
		return
	}

	res, err := h.Sessions.Play(id, move)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// Score returns the current tally for the session.
func (h *Handler) Score(c *gin.Context) {
	id, ok := getSessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session not found"})
		return
	}

	sc, err := h.Sessions.Score(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sc)
}

// ResetScore zeroes the session's tally.
func (h *Handler) ResetScore(c *gin.Context) {
	id, ok := getSessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session not found"})
		return
	}

	sc, err := h.Sessions.Reset(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sc)
}

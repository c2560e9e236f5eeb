package http

import (
	"time"

	"rps_game/internal/config"
	"rps_game/internal/http/handlers"
	"rps_game/internal/http/middleware"
	"rps_game/internal/service"
	"rps_game/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes wires the HTTP API, websocket and probes onto r.
func RegisterRoutes(r *gin.Engine, sessions *service.SessionService, hub *ws.Hub, cfg *config.Config, version string) {
	h := handlers.NewHandler(sessions, hub)
	healthHandler := handlers.NewHealthHandler(sessions, version)

	// CORS for a browser client on another origin
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && (cfg.AllowedOrigin == "" || origin == cfg.AllowedOrigin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit("rl", cfg.APIRateLimit, cfg.APIRateWindow, middleware.ByIP))

	v1.GET("/strategies", h.Strategies)
	v1.POST("/sessions", h.CreateSession)

	// Session-bound endpoints, rounds additionally limited per session
	authed := v1.Group("")
	authed.Use(middleware.SessionAuth())
	{
		roundRL := middleware.RateLimit("round_rl", cfg.RoundRateLimit, time.Minute, middleware.BySession)
		authed.POST("/rounds", roundRL, h.PlayRound)
		authed.GET("/score", h.Score)
		authed.POST("/score/reset", h.ResetScore)
		authed.DELETE("/sessions", h.DeleteSession)
	}

	r.GET("/ws", ws.HandleWS(hub, sessions, cfg.AllowedOrigin))
}

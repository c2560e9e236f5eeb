package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rps_game/internal/config"
	"rps_game/internal/game"
	httpServer "rps_game/internal/http"
	"rps_game/internal/http/middleware"
	"rps_game/internal/logger"
	"rps_game/internal/service"
	"rps_game/internal/ws"

	"github.com/gin-gonic/gin"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogJSON, os.Stdout)

	if err := service.InitJWT(cfg.JWTSecret, cfg.SessionTTL); err != nil {
		logger.Fatal("jwt init failed", "error", err)
	}

	middleware.InitRedisRateLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer middleware.CloseRedis()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessions := service.NewSessionService(game.NewFactory(cfg.Seed, cfg.FixedMove))
	hub := ws.NewHub()
	sessions.OnEvict(hub.CloseSession)
	sessions.StartCleanup(ctx, time.Minute, cfg.SessionTTL)

	r := gin.New()
	r.Use(gin.Recovery())
	httpServer.RegisterRoutes(r, sessions, hub, cfg, version)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

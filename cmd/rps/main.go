package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"rps_game/internal/config"
	"rps_game/internal/console"
	"rps_game/internal/game"
	"rps_game/internal/logger"
	"rps_game/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogJSON, os.Stderr)

	factory := game.NewFactory(cfg.Seed, cfg.FixedMove)
	strategy, err := factory.CreateStrategy(cfg.Strategy)
	if err != nil {
		logger.Fatal("cannot create strategy", "error", err)
	}
	logger.Info("starting game", "strategy", cfg.Strategy, "max_rounds", cfg.MaxRounds)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	match := service.NewMatch(service.NewRoundService(), strategy)
	g := console.NewGame(match, os.Stdin, os.Stdout, console.Options{
		Delay:     cfg.RoundDelay,
		MaxRounds: cfg.MaxRounds,
	})
	if err := g.Run(ctx); err != nil {
		logger.Fatal("game failed", "error", err)
	}
}

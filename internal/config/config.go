package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"rps_game/internal/domain"
	"rps_game/internal/game"

	"github.com/joho/godotenv"
)

type Config struct {
	// Game
	Strategy   game.StrategyKind
	FixedMove  domain.Move
	Seed       int64
	RoundDelay time.Duration
	MaxRounds  int

	// Logging
	LogLevel string
	LogJSON  bool

	// Server
	AppPort       string
	JWTSecret     string
	SessionTTL    time.Duration
	AllowedOrigin string

	// Rate limiting (Redis, fail-open when RedisAddr is empty)
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	APIRateLimit   int
	APIRateWindow  time.Duration
	RoundRateLimit int
}

// Загрузка конфига из env
func Load() (*Config, error) {
	_ = godotenv.Load()

	strategy, err := game.ParseKind(getEnv("RPS_STRATEGY", string(game.KindRandom)))
	if err != nil {
		return nil, fmt.Errorf("RPS_STRATEGY: %w", err)
	}

	fixedMove, err := domain.ParseMove(getEnv("RPS_FIXED_MOVE", string(domain.MoveRock)))
	if err != nil {
		return nil, fmt.Errorf("RPS_FIXED_MOVE: %w", err)
	}

	var seed int64
	if v := os.Getenv("RPS_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("RPS_SEED: %w", err)
		}
		seed = n
	}

	return &Config{
		Strategy:   strategy,
		FixedMove:  fixedMove,
		Seed:       seed,
		RoundDelay: time.Duration(getInt("RPS_ROUND_DELAY_MS", 0)) * time.Millisecond,
		MaxRounds:  getInt("RPS_MAX_ROUNDS", 0),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogJSON:  os.Getenv("LOG_JSON") == "true",

		AppPort:       getEnv("APP_PORT", "8080"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		SessionTTL:    time.Duration(getPositiveInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
		AllowedOrigin: os.Getenv("ALLOWED_ORIGIN"),

		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getInt("REDIS_DB", 0),
		APIRateLimit:   getPositiveInt("API_RATE_LIMIT", 60),
		APIRateWindow:  time.Duration(getPositiveInt("API_RATE_WINDOW_SECONDS", 60)) * time.Second,
		RoundRateLimit: getPositiveInt("ROUND_RATE_LIMIT", 120),
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getInt falls back to def on missing or malformed values; negatives become 0.
func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	if n < 0 {
		return 0
	}
	return n
}

func getPositiveInt(key string, def int) int {
	if n := getInt(key, def); n > 0 {
		return n
	}
	return def
}

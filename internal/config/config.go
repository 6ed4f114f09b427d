package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/Sugatraj/password-generator/internal/crypto"
)

const devSessionSecret = "dev-secret-change-in-production"

var ErrProductionSecret = errors.New("SESSION_SECRET must be set in production environment")

type Config struct {
	Port           string
	Env            string
	RandomSource   string
	SessionSecret  string
	SessionTTL     time.Duration
	TokenExpiry    time.Duration
	ProfileUser    string
	ProfileAPIURL  string
	ProfileTimeout time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads the configuration from the environment. Malformed numeric or
// duration values fall back to their defaults with a warning.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		RandomSource:   getEnv("RANDOM_SOURCE", crypto.SourceMath),
		SessionSecret:  getEnv("SESSION_SECRET", devSessionSecret),
		SessionTTL:     getDuration("SESSION_TTL", 30*time.Minute),
		TokenExpiry:    getDuration("TOKEN_EXPIRY", 24*time.Hour),
		ProfileUser:    getEnv("PROFILE_USERNAME", "Sugatraj"),
		ProfileAPIURL:  getEnv("PROFILE_API_URL", "https://api.github.com"),
		ProfileTimeout: getDuration("PROFILE_TIMEOUT", 5*time.Second),
		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 10),
	}

	if cfg.Env == "production" && cfg.SessionSecret == devSessionSecret {
		return Config{}, ErrProductionSecret
	}

	if _, err := crypto.NewSource(cfg.RandomSource); err != nil {
		return Config{}, fmt.Errorf("RANDOM_SOURCE: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid integer, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		slog.Warn("invalid number, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

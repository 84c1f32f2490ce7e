package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings, loaded from the environment.
type Config struct {
	Port           string
	GitHubOwner    string
	GitHubRepo     string
	GitHubBranch   string
	GitHubToken    string
	TracksRoot     string
	HTTPTimeout    time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads configuration from a .env file (when present) and the
// environment, applying defaults for anything unset.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found, using environment variables only")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		GitHubOwner:    getEnv("GITHUB_OWNER", ""),
		GitHubRepo:     getEnv("GITHUB_REPO", ""),
		GitHubBranch:   getEnv("GITHUB_BRANCH", "main"),
		GitHubToken:    getEnv("GITHUB_TOKEN", ""),
		TracksRoot:     getEnv("TRACKS_ROOT", "tracks"),
		HTTPTimeout:    getEnvDuration("HTTP_TIMEOUT_SECONDS", 30*time.Second),
		RateLimitRPS:   getEnvFloat64("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat64(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if seconds, err := strconv.ParseFloat(val, 64); err == nil {
			return time.Duration(seconds * float64(time.Second))
		}
	}
	return fallback
}

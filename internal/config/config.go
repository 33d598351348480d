package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                 string
	YouTubeAPIKey        string
	GeminiAPIKey         string
	GeminiModel          string
	RedisURL             string
	LogLevel             string
	Environment          string
	CORSOrigins          string
	DefaultAnalyticsDays int
	MaxAnalyticsDays     int
}

// Load reads configuration from the environment, consulting a .env file if
// one is present. Missing API keys are not fatal; they switch the metadata
// client to mock data and the AI services to their fallback algorithms.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:                 getEnv("PORT", "8080"),
		YouTubeAPIKey:        getEnv("YOUTUBE_API_KEY", ""),
		GeminiAPIKey:         getEnv("GEMINI_API_KEY", ""),
		GeminiModel:          getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		RedisURL:             getEnv("REDIS_URL", ""),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		Environment:          getEnv("ENVIRONMENT", "development"),
		CORSOrigins:          getEnv("CORS_ORIGINS", "*"),
		DefaultAnalyticsDays: getEnvInt("DEFAULT_ANALYTICS_DAYS", 7),
		MaxAnalyticsDays:     getEnvInt("MAX_ANALYTICS_DAYS", 90),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         string
	GitHubToken  string
	GeminiAPIKey string
	GeminiModel  string
	DBPath       string
	CacheTTL     time.Duration
	HTTPTimeout  time.Duration
}

func Load() (*Config, error) {
	port := getEnv("PORT", "8080")
	githubToken := getEnv("GITHUB_TOKEN", "")
	geminiKey := getEnv("GEMINI_API_KEY", "")
	geminiModel := getEnv("GEMINI_MODEL", "gemini-1.5-flash")
	dbPath := getEnv("DB_PATH", "gitly.db")

	cacheTTL, err := strconv.Atoi(getEnv("CACHE_TTL_SECONDS", "300"))
	if err != nil {
		return nil, err
	}

	httpTimeout, err := strconv.Atoi(getEnv("HTTP_TIMEOUT_SECONDS", "30"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:         port,
		GitHubToken:  githubToken,
		GeminiAPIKey: geminiKey,
		GeminiModel:  geminiModel,
		DBPath:       dbPath,
		CacheTTL:     time.Duration(cacheTTL) * time.Second,
		HTTPTimeout:  time.Duration(httpTimeout) * time.Second,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	JWTSecret   string
	TokenExpiry time.Duration

	// Azure OpenAI settings for the live generation backend.
	AzureOpenAIEndpoint   string
	AzureOpenAIKey        string
	AzureOpenAIDeployment string

	// TestingMode selects the deterministic mock backend instead of Azure.
	TestingMode bool
}

func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/astroguide?parseTime=true"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		TokenExpiry: 7 * 24 * time.Hour,

		AzureOpenAIEndpoint:   getEnv("AZURE_OPENAI_ENDPOINT", ""),
		AzureOpenAIKey:        getEnv("AZURE_OPENAI_API_KEY", ""),
		AzureOpenAIDeployment: getEnv("AZURE_OPENAI_DEPLOYMENT", "gpt-4o"),

		TestingMode: getEnv("TESTING_MODE", "false") == "true",
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

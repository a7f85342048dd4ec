package config

import (
	"os"
	"strconv"
)

type Config struct {
	ServerPort    string
	DatabaseURL   string
	MediaDir      string
	MediaBaseURL  string
	OpenAIBaseURL string
	OpenAIModel   string
	OpenAIAPIKey  string
	AgentMaxSteps int
}

func Load() *Config {
	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", "./ledgerbot.db"),
		MediaDir:      getEnv("MEDIA_DIR", "./media"),
		MediaBaseURL:  getEnv("MEDIA_BASE_URL", "http://localhost:8080/media"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		AgentMaxSteps: getEnvInt("AGENT_MAX_STEPS", 8),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

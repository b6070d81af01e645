package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Storage backend: "sqlite", "postgres" or "memory"
	DBDriver string
	DBPath   string // sqlite file path

	// Postgres
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Language-model provider: "ollama" or "openai"
	AIProvider string

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	OllamaBaseURL string
	OllamaModel   string

	// Optional upper bound on completion calls. Zero means no timeout.
	AIRequestTimeout time.Duration

	// Demo user seeded at startup
	SeedUserName string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		DBDriver: strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBPath:   getEnv("DB_PATH", "aurum.db"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "aurum"),
		DBPassword: getEnv("DB_PASSWORD", "aurum"),
		DBName:     getEnv("DB_NAME", "aurum"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		AIProvider: strings.ToLower(getEnv("AI_PROVIDER", defaultProvider())),

		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com"),

		OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:   getEnv("OLLAMA_MODEL", "llama3.2:3b"),

		SeedUserName: getEnv("SEED_USER_NAME", "Parag"),
	}

	switch config.DBDriver {
	case "sqlite", "postgres", "memory":
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER %q: must be sqlite, postgres, or memory", config.DBDriver)
	}

	switch config.AIProvider {
	case "ollama", "openai":
	default:
		return nil, fmt.Errorf("invalid AI_PROVIDER %q: must be ollama or openai", config.AIProvider)
	}
	if config.AIProvider == "openai" && config.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required when AI_PROVIDER is openai")
	}

	timeout, err := parseTimeout(os.Getenv("AI_REQUEST_TIMEOUT"))
	if err != nil {
		return nil, err
	}
	config.AIRequestTimeout = timeout

	return config, nil
}

// defaultProvider prefers the hosted API when a key is present and falls
// back to a locally served model otherwise.
func defaultProvider() string {
	if os.Getenv("OPENAI_API_KEY") != "" {
		return "openai"
	}
	return "ollama"
}

func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid AI_REQUEST_TIMEOUT %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("AI_REQUEST_TIMEOUT must not be negative, got %v", d)
	}
	return d, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

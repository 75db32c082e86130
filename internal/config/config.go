package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// GenerationConfig holds the model sampling parameters. Fixed at
// startup; never renegotiated per turn.
type GenerationConfig struct {
	Temperature     float32
	TopP            float32
	TopK            float32
	MaxOutputTokens int32
}

// Config is the static startup configuration.
type Config struct {
	ServerAddr string

	GeminiAPIKey string
	GeminiModel  string
	Generation   GenerationConfig

	MapsAPIKey         string
	MapsBaseURL        string
	SafetyRadiusMeters int
	SafetyAPIBaseURL   string

	JWTSecret     string
	AdminUsername string
	AdminPassword string

	TelegramBotToken string

	LogLevel  string
	LogFormat string
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	// Missing .env is fine in containerized deployments.
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddr: getEnv("SERVER_ADDR", "0.0.0.0:8080"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-pro-002"),
		Generation: GenerationConfig{
			Temperature:     getEnvFloat32("GEMINI_TEMPERATURE", 0.7),
			TopP:            getEnvFloat32("GEMINI_TOP_P", 0.8),
			TopK:            getEnvFloat32("GEMINI_TOP_K", 40),
			MaxOutputTokens: int32(getEnvInt("GEMINI_MAX_OUTPUT_TOKENS", 2048)),
		},

		MapsAPIKey:         os.Getenv("GOOGLE_MAPS_API_KEY"),
		MapsBaseURL:        getEnv("GOOGLE_MAPS_BASE_URL", "https://maps.googleapis.com/maps/api"),
		SafetyRadiusMeters: getEnvInt("SAFETY_SEARCH_RADIUS", 1500),
		SafetyAPIBaseURL:   getEnv("SAFETY_API_BASE_URL", "http://localhost:8080"),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminUsername: getEnv("ADMIN_USERNAME", "root"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat32(key string, fallback float32) float32 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			return float32(f)
		}
	}
	return fallback
}

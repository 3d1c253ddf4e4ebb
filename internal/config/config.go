package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the serving-process settings, read from the environment with
// an optional .env file.
type Config struct {
	Port         string
	ModelPath    string
	MetadataPath string
	DBPath       string
	LogLevel     string

	// Per-client rate limit on /predict.
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads the configuration. A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:           getenv("PORT", "8000"),
		ModelPath:      getenv("MODEL_PATH", "models/celiac_risk_model.json"),
		MetadataPath:   getenv("METADATA_PATH", "models/model_metadata.json"),
		DBPath:         getenv("DB_PATH", "celiguard.db"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		RateLimitRPS:   getenvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getenvInt("RATE_LIMIT_BURST", 20),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

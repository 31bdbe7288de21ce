package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv       string
	Port         string
	DatabasePath string
	// AdminPin seeds the stored credential on first start; afterwards the
	// database row is authoritative.
	AdminPin string
}

func Load() *Config {
	// .env is optional; environment variables win
	_ = godotenv.Load()

	return &Config{
		AppEnv:       getEnv("APP_ENV", "development"),
		Port:         getEnv("PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "./planner.db"),
		AdminPin:     getEnv("ADMIN_PIN", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Timezone string
	DBPath   string
	LogLevel string // debug|info|warn|error
	DevLogin bool   // mint a uid when the request carries none
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:     get("PORT", "8080"),
		Timezone: get("TZ", "Asia/Kolkata"),
		DBPath:   get("DB_PATH", "farmstock.db"),
		LogLevel: get("LOG_LEVEL", "info"),
		DevLogin: get("DEV_LOGIN", "true") == "true",
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}

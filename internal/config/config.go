package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string // optional remote analytics store
	DataDir         string // local sqlite and json files
	SessionDuration int    // seconds
	ReseedInterval  int    // seconds
	ProfilesPath    string // optional age profile overrides (yaml)
}

func Load() Config {
	// A missing .env is fine; real env vars win either way.
	godotenv.Load()

	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DataDir:         getEnv("DATA_DIR", "~/.babysensory"),
		SessionDuration: getEnvInt("SESSION_DURATION", 1200),
		ReseedInterval:  getEnvInt("RESEED_INTERVAL", 30),
		ProfilesPath:    os.Getenv("AGE_PROFILES_PATH"),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

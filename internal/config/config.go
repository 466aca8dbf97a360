package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	AllowedOrigins []string
}

// Load reads configuration from the environment, pulling in .env
// outside production. Missing values fall back to local defaults.
func Load() Config {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := Config{
		Port:           os.Getenv("PORT"),
		AllowedOrigins: splitOrigins(os.Getenv("ALLOWED_ORIGINS")),
	}

	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	return cfg
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}

	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

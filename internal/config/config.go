package config

import (
	"os"
	"strings"
)

// Default allowed origins for development
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

type Config struct {
	Port           string
	DatabaseURL    string
	StaticDir      string
	AllowedOrigins []string
}

// Load reads configuration from the environment. Callers load .env first
// (godotenv in main); nothing here is required except DATABASE_URL.
func Load() Config {
	cfg := Config{
		Port:           os.Getenv("PORT"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		StaticDir:      os.Getenv("STATIC_DIR"),
		AllowedOrigins: allowedOrigins(),
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "dist"
	}

	return cfg
}

func allowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowed := os.Getenv("ALLOWED_ORIGINS"); allowed != "" {
		for _, origin := range strings.Split(allowed, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}

package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	ExistClientID     string
	ExistClientSecret string
	ExistAPIKey       string
	RedirectURI       string
	DashboardOrigin   string
	AllowedOrigins    []string
	AuthURL           string
	TokenURL          string
	APIBaseURL        string
	HTTPTimeout       time.Duration
	StaticDir         string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	timeout := 10 * time.Second
	if t := os.Getenv("UPSTREAM_TIMEOUT"); t != "" {
		if parsed, err := time.ParseDuration(t); err == nil {
			timeout = parsed
		}
	}

	return &Config{
		Port:              getEnv("PORT", "3001"),
		ExistClientID:     getEnv("EXIST_CLIENT_ID", ""),
		ExistClientSecret: getEnv("EXIST_CLIENT_SECRET", ""),
		ExistAPIKey:       getEnv("EXIST_API_KEY", ""),
		RedirectURI:       getEnv("EXIST_REDIRECT_URI", "http://localhost:3001/auth/callback"),
		DashboardOrigin:   getEnv("DASHBOARD_ORIGIN", "http://localhost:3002"),
		AllowedOrigins:    splitEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001,http://localhost:3002,http://localhost:3003"),
		AuthURL:           getEnv("EXIST_AUTH_URL", "https://exist.io/oauth2/authorize"),
		TokenURL:          getEnv("EXIST_TOKEN_URL", "https://exist.io/oauth2/access_token"),
		APIBaseURL:        getEnv("EXIST_API_BASE_URL", "https://exist.io/api/2"),
		HTTPTimeout:       timeout,
		StaticDir:         getEnv("STATIC_DIR", "build"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitEnv(key, defaultValue string) []string {
	parts := strings.Split(getEnv(key, defaultValue), ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

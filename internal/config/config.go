package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the gateway.
type Config struct {
	AppAddr string
	GinMode string

	// Core booking backend. The origin is fixed at startup; every upstream
	// call goes to this base URL.
	BackendBaseURL  string
	UpstreamTimeout time.Duration

	SessionCookie string

	CORSOrigins []string
}

// Load reads configuration from environment variables, with a .env file as an
// optional source for local development.
func Load() Config {
	godotenv.Load()

	return Config{
		AppAddr:         getEnv("APP_ADDR", ":8080"),
		GinMode:         strings.TrimSpace(os.Getenv("GIN_MODE")),
		BackendBaseURL:  strings.TrimRight(getEnv("BACKEND_BASE_URL", "http://localhost:5000"), "/"),
		UpstreamTimeout: time.Duration(getEnvAsInt("UPSTREAM_TIMEOUT_SECONDS", 15)) * time.Second,
		SessionCookie:   getEnv("SESSION_COOKIE", "token"),
		CORSOrigins:     splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

const (
	BackendModeHTTP = "http"
	BackendModeMock = "mock"

	defaultBackendTimeout = 10 * time.Second
)

type Config struct {
	ServiceName string
	LoggerLevel string

	Port int

	BackendURL     string
	BackendTimeout time.Duration
	BackendMode    string

	CORSAllowedOrigins []string
}

// Load reads .env (when present) and the process environment.
func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "logistik-dashboard"))
	cfg.LoggerLevel = cast.ToString(getOrReturnDefault("LOGGER_LEVEL", "info"))
	cfg.Port = cast.ToInt(getOrReturnDefault("PORT", 3000))

	cfg.BackendURL = strings.TrimRight(cast.ToString(getOrReturnDefault("BACKEND_URL", "http://127.0.0.1:8000")), "/")
	cfg.BackendTimeout = toDurationOr(getOrReturnDefault("BACKEND_TIMEOUT", defaultBackendTimeout), defaultBackendTimeout)
	cfg.BackendMode = strings.ToLower(cast.ToString(getOrReturnDefault("BACKEND_MODE", BackendModeHTTP)))

	cfg.CORSAllowedOrigins = splitList(cast.ToString(getOrReturnDefault(
		"CORS_ALLOWED_ORIGINS",
		"http://localhost:3000,http://127.0.0.1:3000",
	)))

	return cfg
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

// An unparsable or negative duration falls back to def.
func toDurationOr(v interface{}, def time.Duration) time.Duration {
	d, err := cast.ToDurationE(v)
	if err != nil || d < 0 {
		return def
	}
	return d
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Settings holds everything read from the environment at startup
type Settings struct {
	Port              string
	AppEnv            string
	CORSOrigins       []string
	FetchLatency      time.Duration
	ChatThinkDelay    time.Duration
	DashboardRefresh  time.Duration
	SnapshotCacheTTL  time.Duration
	DBDriver          string // memory, sqlite or postgres
	DatabaseURL       string
	RedisURL          string
	RateLimitMax      int
	RateLimitWindow   time.Duration
	RabbitMQURL       string
	ReportEventsQueue string
}

func (s Settings) IsProduction() bool {
	return s.AppEnv == "production"
}

// Load reads settings from the environment, falling back to development defaults
func Load() Settings {
	s := Settings{
		Port:              getEnv("PORT", "8081"),
		AppEnv:            getEnv("APP_ENV", "development"),
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		FetchLatency:      getEnvMillis("FETCH_LATENCY_MS", 500),
		ChatThinkDelay:    getEnvMillis("CHAT_THINK_MS", 1000),
		DashboardRefresh:  getEnvMillis("DASHBOARD_REFRESH_MS", 800),
		SnapshotCacheTTL:  getEnvDuration("SNAPSHOT_CACHE_TTL", 5*time.Minute),
		DBDriver:          strings.ToLower(getEnv("DB_DRIVER", "memory")),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		RateLimitMax:      getEnvInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow:   time.Minute,
		RabbitMQURL:       os.Getenv("RABBITMQ_URL"),
		ReportEventsQueue: getEnv("REPORT_EVENTS_QUEUE", "report_events"),
	}
	return s
}

// WithTimeout returns a context with a 10s timeout
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		log.Printf("⚠️ invalid %s=%q, using %d", key, raw, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvMillis(key string, defaultMillis int) time.Duration {
	return time.Duration(getEnvInt(key, defaultMillis)) * time.Millisecond
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("⚠️ invalid %s=%q, using %s", key, raw, defaultValue)
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

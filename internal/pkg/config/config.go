// Package config resolves the process configuration once at startup.
// Missing required values are a fatal configuration error, never converted
// into a per-request response.
package config

import (
	"fmt"
	"os"
	"strings"

	// Load a local .env file if present.
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	// OrdersTable is the operational table identifier (point lookups).
	OrdersTable string
	// HistoryTable is the append-style history table identifier.
	HistoryTable string
	// NotifyTopic is the pub/sub channel for order notifications.
	NotifyTopic string

	RedisAddr    string
	HTTPAddr     string
	EventLogPath string // empty disables the order event log
	ServiceName  string
}

// Load reads the environment. ORDERS_TABLE, HISTORY_TABLE and NOTIFY_TOPIC
// are required; the returned error names every missing variable.
func Load() (*Config, error) {
	cfg := &Config{
		OrdersTable:  os.Getenv("ORDERS_TABLE"),
		HistoryTable: os.Getenv("HISTORY_TABLE"),
		NotifyTopic:  os.Getenv("NOTIFY_TOPIC"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPAddr:     ":" + getEnv("PORT", "8080"),
		EventLogPath: os.Getenv("EVENTLOG_PATH"),
		ServiceName:  getEnv("OTEL_SERVICE_NAME", "order-service"),
	}

	var missing []string
	for _, req := range []struct {
		name, value string
	}{
		{"ORDERS_TABLE", cfg.OrdersTable},
		{"HISTORY_TABLE", cfg.HistoryTable},
		{"NOTIFY_TOPIC", cfg.NotifyTopic},
	} {
		if req.value == "" {
			missing = append(missing, req.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

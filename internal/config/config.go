package config

import (
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	defaultPort            = "3000"
	defaultOnlineThreshold = 10 * time.Second
	defaultBroadcastEvery  = 2 * time.Second
	defaultStaticDir       = "./public"
	defaultTopic           = "lunar-match-finished"
)

// Load reads configuration from environment variables and .env file.
// Everything is optional: without a database, Slack or GCP project the
// corresponding integration is simply switched off.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	cfg := Config{
		Port:            getEnv("PORT", defaultPort),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		OnlineThreshold: getDuration("ONLINE_THRESHOLD", defaultOnlineThreshold),
		BroadcastEvery:  getDuration("BROADCAST_INTERVAL", defaultBroadcastEvery),
		StaticDir:       getEnv("STATIC_DIR", defaultStaticDir),
		AllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		DBName:          getEnv("DB_NAME", ""),
		Turso: TursoConfig{
			PrimaryURL: getEnv("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnv("TURSO_AUTH_TOKEN", ""),
		},
		Slack: SlackConfig{
			Token:     getEnv("SLACK_BOT_TOKEN", ""),
			ChannelID: getEnv("SLACK_CHANNEL_ID", ""),
		},
		ProjectID: getEnv("GCP_PROJECT", ""),
		Topic:     getEnv("PUBSUB_TOPIC", defaultTopic),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

// getDuration accepts Go durations ("15s") or a bare number of seconds.
func getDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if d, err := time.ParseDuration(raw + "s"); err == nil && d > 0 {
		return d
	}
	log.Warn("Invalid duration, using default", "key", key, "value", raw, "default", fallback)
	return fallback
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

package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	Port            string
	LogLevel        string
	OnlineThreshold time.Duration
	StaticDir       string
	AllowedOrigins  []string
	BroadcastEvery  time.Duration
	DBName          string
	Turso           TursoConfig
	Slack           SlackConfig
	ProjectID       string
	Topic           string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

// Enabled reports whether match results should be posted to Slack.
func (s SlackConfig) Enabled() bool {
	return s.Token != "" && s.ChannelID != ""
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// ArchiveEnabled reports whether finished LUNAR matches are persisted.
func (c Config) ArchiveEnabled() bool {
	return c.DBName != "" || c.Turso.PrimaryURL != ""
}

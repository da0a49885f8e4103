package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ONLINE_THRESHOLD", "STATIC_DIR", "CORS_ALLOWED_ORIGINS", "DB_NAME", "TURSO_PRIMARY_URL", "SLACK_BOT_TOKEN", "SLACK_CHANNEL_ID", "PUBSUB_TOPIC", "BROADCAST_INTERVAL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.OnlineThreshold)
	assert.Equal(t, 2*time.Second, cfg.BroadcastEvery)
	assert.Equal(t, "./public", cfg.StaticDir)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "lunar-match-finished", cfg.Topic)
	assert.False(t, cfg.ArchiveEnabled())
	assert.False(t, cfg.Slack.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ONLINE_THRESHOLD", "30")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DB_NAME", "padel.db")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_CHANNEL_ID", "C123")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.OnlineThreshold)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.True(t, cfg.ArchiveEnabled())
	assert.True(t, cfg.Slack.Enabled())
}

func TestGetDuration(t *testing.T) {
	t.Setenv("X_DURATION", "1500ms")
	assert.Equal(t, 1500*time.Millisecond, getDuration("X_DURATION", time.Second))

	t.Setenv("X_DURATION", "bogus")
	assert.Equal(t, time.Second, getDuration("X_DURATION", time.Second))

	t.Setenv("X_DURATION", "-5s")
	assert.Equal(t, time.Second, getDuration("X_DURATION", time.Second))
}

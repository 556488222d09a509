package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_OverridesAndDefaults(t *testing.T) {
	t.Setenv("PORT", "4100")
	t.Setenv("PING_INTERVAL", "250ms")
	t.Setenv("API_KEY", "s3cret")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4100, cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.PingInterval)
	assert.Equal(t, "s3cret", cfg.APIKey)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, 500, cfg.MaxHeartbeats)
	assert.Equal(t, 3, cfg.HealthResetAfter)
	assert.Equal(t, "cv-mcp:sessions:", cfg.SessionsKeyPrefix)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	t.Setenv("PING_INTERVAL", "0s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PING_INTERVAL")
}

func validConfig() Config {
	return Config{
		Port:              3001,
		PortRetries:       10,
		PingInterval:      15 * time.Second,
		MaxHeartbeats:     500,
		RequestTimeout:    30 * time.Second,
		HealthPath:        "/health",
		HealthInterval:    30 * time.Second,
		HealthMaxInterval: 5 * time.Minute,
		HealthResetAfter:  3,
		LogLevel:          "info",
	}
}

func TestValidate(t *testing.T) {
	base := validConfig()
	require.NoError(t, base.Validate())

	cases := map[string]func(c *Config){
		"PORT":                func(c *Config) { c.Port = 0 },
		"PORT_RETRIES":        func(c *Config) { c.PortRetries = -1 },
		"MAX_HEARTBEATS":      func(c *Config) { c.MaxHeartbeats = 0 },
		"REQUEST_TIMEOUT":     func(c *Config) { c.RequestTimeout = -time.Second },
		"ANNOUNCE_DELAY":      func(c *Config) { c.AnnounceDelay = -time.Second },
		"HEALTH_MAX_INTERVAL": func(c *Config) { c.HealthMaxInterval = time.Second },
		"HEALTH_PATH":         func(c *Config) { c.HealthPath = "health" },
		"LOG_LEVEL":           func(c *Config) { c.LogLevel = "loud" },
	}
	for field, mutate := range cases {
		c := validConfig()
		mutate(&c)
		err := c.Validate()
		require.Error(t, err, field)
		assert.True(t, strings.Contains(err.Error(), field), "error %q should name %s", err, field)
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	c := validConfig()
	c.Port = -1
	c.MaxHeartbeats = 0
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
	assert.Contains(t, err.Error(), "MAX_HEARTBEATS")
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{"DEBUG": slog.LevelDebug, "": slog.LevelInfo, "warning": slog.LevelWarn, "error": slog.LevelError} {
		got, err := ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}

func TestAuthEnabled(t *testing.T) {
	c := validConfig()
	assert.False(t, c.AuthEnabled())
	c.AuthHS256Secret = "x"
	assert.True(t, c.AuthEnabled())
}

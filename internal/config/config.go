// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
)

// Config is the full process configuration. Defaults are carried by the
// struct tags so an empty environment yields a working local server.
type Config struct {
	Port        int    `env:"PORT,default=3001"`
	PortRetries int    `env:"PORT_RETRIES,default=10"`
	Environment string `env:"ENVIRONMENT,default=production"`

	PingInterval  time.Duration `env:"PING_INTERVAL,default=15s"`
	MaxHeartbeats int           `env:"MAX_HEARTBEATS,default=500"`
	AnnounceDelay time.Duration `env:"ANNOUNCE_DELAY,default=0s"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT,default=30s"`
	APIKey         string        `env:"API_KEY"`

	HealthPath        string        `env:"HEALTH_PATH,default=/health"`
	HealthInterval    time.Duration `env:"HEALTH_INTERVAL,default=30s"`
	HealthMaxInterval time.Duration `env:"HEALTH_MAX_INTERVAL,default=5m"`
	HealthResetAfter  int           `env:"HEALTH_RESET_AFTER,default=3"`

	MediaDir string `env:"MEDIA_DIR,default=./media"`
	LogLevel string `env:"LOG_LEVEL,default=info"`

	RedisAddr         string `env:"REDIS_ADDR"`
	SessionsKeyPrefix string `env:"SESSIONS_KEY_PREFIX,default=cv-mcp:sessions:"`

	AuthIssuer      string `env:"AUTH_ISSUER"`
	AuthJWKSURL     string `env:"AUTH_JWKS_URL"`
	AuthAudience    string `env:"AUTH_AUDIENCE"`
	AuthHS256Secret string `env:"AUTH_HS256_SECRET"`
}

// Load decodes the environment into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects non-positive durations and counts and unknown log
// levels. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, ok bool) {
		if !ok {
			errs = append(errs, fmt.Errorf("%s must be positive", name))
		}
	}
	positive("PORT", c.Port > 0 && c.Port < 65536)
	positive("PING_INTERVAL", c.PingInterval > 0)
	positive("MAX_HEARTBEATS", c.MaxHeartbeats > 0)
	positive("REQUEST_TIMEOUT", c.RequestTimeout > 0)
	positive("HEALTH_INTERVAL", c.HealthInterval > 0)
	positive("HEALTH_MAX_INTERVAL", c.HealthMaxInterval > 0)
	positive("HEALTH_RESET_AFTER", c.HealthResetAfter > 0)
	if c.PortRetries < 0 {
		errs = append(errs, errors.New("PORT_RETRIES must not be negative"))
	}
	if c.AnnounceDelay < 0 {
		errs = append(errs, errors.New("ANNOUNCE_DELAY must not be negative"))
	}
	if c.HealthMaxInterval > 0 && c.HealthMaxInterval < c.HealthInterval {
		errs = append(errs, errors.New("HEALTH_MAX_INTERVAL must not be below HEALTH_INTERVAL"))
	}
	if c.HealthPath != "" && !strings.HasPrefix(c.HealthPath, "/") {
		errs = append(errs, fmt.Errorf("HEALTH_PATH %q must start with /", c.HealthPath))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level returns the configured slog level. Validate has already rejected
// unknown names, so this falls back to Info only on an unvalidated Config.
func (c *Config) Level() slog.Level {
	l, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// ParseLevel maps debug|info|warn|error (case-insensitive) to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", s)
	}
}

// AuthEnabled reports whether any bearer key source is configured.
func (c *Config) AuthEnabled() bool {
	return c.AuthIssuer != "" || c.AuthJWKSURL != "" || c.AuthHS256Secret != ""
}

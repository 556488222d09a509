package redishost

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/FrankGoortani/cv-mcp/sessions"
	"github.com/joeshaw/envdecode"
	"github.com/redis/go-redis/v9"
)

var _ sessions.Directory = (*Directory)(nil)

// DefaultKeyPrefix namespaces every key written by the directory.
const DefaultKeyPrefix = "cv-mcp:sessions:"

// Config for a Redis-backed Directory. Defaults can be loaded via envdecode.
type Config struct {
	// RedisAddr like "localhost:6379". ENV: REDIS_ADDR
	RedisAddr string `env:"REDIS_ADDR,default=localhost:6379"`
	// KeyPrefix for all keys. ENV: SESSIONS_KEY_PREFIX
	KeyPrefix string `env:"SESSIONS_KEY_PREFIX,default=cv-mcp:sessions:"`
}

// Option configures a Directory.
type Option func(*Directory)

// WithKeyPrefix overrides DefaultKeyPrefix.
func WithKeyPrefix(prefix string) Option {
	return func(d *Directory) {
		if prefix != "" {
			d.keyPrefix = prefix
		}
	}
}

// Directory is a sessions.Directory backed by Redis.
type Directory struct {
	client    *redis.Client
	keyPrefix string
}

// New connects to addr and verifies the connection with PING.
func New(ctx context.Context, addr string, opts ...Option) (*Directory, error) {
	if addr == "" {
		addr = "localhost:6379"
	}
	cl := redis.NewClient(&redis.Options{Addr: addr})
	if err := cl.Ping(ctx).Err(); err != nil {
		_ = cl.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	d := &Directory{client: cl, keyPrefix: DefaultKeyPrefix}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// NewFromEnv builds a Directory using envdecode to populate Config.
func NewFromEnv(ctx context.Context, opts ...Option) (*Directory, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode redis config: %w", err)
	}
	return New(ctx, cfg.RedisAddr, append([]Option{WithKeyPrefix(cfg.KeyPrefix)}, opts...)...)
}

// Close closes the Redis client.
func (d *Directory) Close() error { return d.client.Close() }

func (d *Directory) entryKey(id string) string { return d.keyPrefix + "entry:" + id }
func (d *Directory) indexKey() string          { return d.keyPrefix + "index" }

func expiryScore(ttl time.Duration) float64 {
	return float64(time.Now().Add(ttl).UnixMilli())
}

func (d *Directory) Register(ctx context.Context, e sessions.Entry, ttl time.Duration) error {
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal session entry: %w", err)
	}
	_, err = d.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, d.entryKey(e.ID), b, ttl)
		pipe.ZAdd(ctx, d.indexKey(), redis.Z{Score: expiryScore(ttl), Member: e.ID})
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis register %s: %w", e.ID, err)
	}
	return nil
}

func (d *Directory) Refresh(ctx context.Context, id string, ttl time.Duration) error {
	ok, err := d.client.PExpire(ctx, d.entryKey(id), ttl).Result()
	if err != nil {
		return fmt.Errorf("redis refresh %s: %w", id, err)
	}
	if !ok {
		_ = d.client.ZRem(ctx, d.indexKey(), id).Err()
		return sessions.ErrUnknownSession
	}
	if err := d.client.ZAdd(ctx, d.indexKey(), redis.Z{Score: expiryScore(ttl), Member: id}).Err(); err != nil {
		return fmt.Errorf("redis refresh index %s: %w", id, err)
	}
	return nil
}

func (d *Directory) Remove(ctx context.Context, id string) error {
	_, err := d.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, d.entryKey(id))
		pipe.ZRem(ctx, d.indexKey(), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis remove %s: %w", id, err)
	}
	return nil
}

func (d *Directory) Get(ctx context.Context, id string) (sessions.Entry, bool, error) {
	b, err := d.client.Get(ctx, d.entryKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return sessions.Entry{}, false, nil
	}
	if err != nil {
		return sessions.Entry{}, false, fmt.Errorf("redis get %s: %w", id, err)
	}
	var e sessions.Entry
	if err := json.Unmarshal(b, &e); err != nil {
		return sessions.Entry{}, false, fmt.Errorf("failed to decode session entry %s: %w", id, err)
	}
	return e, true, nil
}

func (d *Directory) Count(ctx context.Context) (int, error) {
	now := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if err := d.client.ZRemRangeByScore(ctx, d.indexKey(), "-inf", now).Err(); err != nil {
		return 0, fmt.Errorf("redis prune index: %w", err)
	}
	n, err := d.client.ZCard(ctx, d.indexKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("redis count: %w", err)
	}
	return int(n), nil
}

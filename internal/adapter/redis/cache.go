// Package redis implements the language-pair lookup cache. Cached entries
// are JSON-encoded style listings keyed by source→target direction. The
// cache is strictly an accelerator: every failure degrades to a miss, never
// to an error for the caller.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/styleforge/backend/internal/config"
	"github.com/styleforge/backend/internal/domain"
)

// Cache is a Redis-backed cache for language-pair style lookups.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
	log    *slog.Logger
}

// New creates a Cache from config, pinging Redis for fail-fast validation.
func New(ctx context.Context, cfg config.RedisConfig, log *slog.Logger) (*Cache, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewFromClient(client, cfg.TTL, cfg.KeyPrefix, log), nil
}

// NewFromClient creates a Cache from an existing client. Used by tests with
// a redismock client.
func NewFromClient(client *redis.Client, ttl time.Duration, prefix string, log *slog.Logger) *Cache {
	if prefix == "" {
		prefix = "styleforge:"
	}
	return &Cache{
		client: client,
		ttl:    ttl,
		prefix: prefix,
		log:    log.With("adapter", "redis"),
	}
}

// GetStylesByLanguagePair returns the cached listing for a direction.
// Any error (including a corrupt payload) is reported as a miss.
func (c *Cache) GetStylesByLanguagePair(ctx context.Context, sourceLang, targetLang string) ([]*domain.CustomTranslationStyle, bool) {
	key := c.key(sourceLang, targetLang)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WarnContext(ctx, "cache get failed", "key", key, "error", err)
		}
		return nil, false
	}

	var styles []*domain.CustomTranslationStyle
	if err := json.Unmarshal(payload, &styles); err != nil {
		c.log.WarnContext(ctx, "cache payload undecodable, treating as miss", "key", key, "error", err)
		return nil, false
	}

	return styles, true
}

// SetStylesByLanguagePair stores a listing for a direction. Failures are
// logged and swallowed.
func (c *Cache) SetStylesByLanguagePair(ctx context.Context, sourceLang, targetLang string, styles []*domain.CustomTranslationStyle) {
	key := c.key(sourceLang, targetLang)

	payload, err := json.Marshal(styles)
	if err != nil {
		c.log.WarnContext(ctx, "cache encode failed", "key", key, "error", err)
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "cache set failed", "key", key, "error", err)
	}
}

// InvalidateLanguagePair drops the cached listing for a direction. Called
// after every write that touches a style in that direction. Failures are
// logged and swallowed; a stale entry expires via TTL anyway.
func (c *Cache) InvalidateLanguagePair(ctx context.Context, sourceLang, targetLang string) {
	key := c.key(sourceLang, targetLang)

	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.WarnContext(ctx, "cache invalidate failed", "key", key, "error", err)
	}
}

// Ping tests the Redis connection. Used by the health endpoint.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}

func (c *Cache) key(sourceLang, targetLang string) string {
	return fmt.Sprintf("%sstyles:%s:%s", c.prefix, sourceLang, targetLang)
}

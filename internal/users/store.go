// Package users records per-user bot activity in redis. The store is
// optional: with no redis address configured every call is a cheap no-op,
// so the rest of the bot never has to care.
package users

import (
	"context"
	"fmt"
	"time"

	"arzbot/config"
	"arzbot/logger"

	"github.com/redis/go-redis/v9"
)

// Store tracks which users talk to the bot and how often.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Log
}

// NewStore connects to redis when an address is configured and returns a
// disabled store otherwise.
func NewStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	log := logger.GetLogger()

	if cfg.Redis.Addr == "" {
		log.WithComponent("user_store").Info("redis not configured, user tracking disabled")
		return &Store{log: log}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.WithComponent("user_store").WithFields(logger.Fields{
		"addr": cfg.Redis.Addr,
		"db":   cfg.Redis.DB,
	}).Info("user store connected")

	return &Store{client: client, ttl: cfg.Redis.TTL, log: log}, nil
}

// Enabled reports whether interactions are actually being recorded.
func (s *Store) Enabled() bool {
	return s != nil && s.client != nil
}

// LogInteraction bumps a user's counter and stamps their last activity.
// Failures are logged, never surfaced; tracking must not break handling.
func (s *Store) LogInteraction(ctx context.Context, userID int64, kind string) {
	if !s.Enabled() {
		return
	}

	key := fmt.Sprintf("arzbot:user:%d", userID)
	pipe := s.client.Pipeline()
	pipe.HIncrBy(ctx, key, "interactions", 1)
	pipe.HSet(ctx, key,
		"last_seen", time.Now().UTC().Format(time.RFC3339),
		"last_kind", kind,
	)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		s.log.WithComponent("user_store").WithError(err).Warn("failed to record interaction")
	}
}

// InteractionCount returns how many interactions a user has logged.
func (s *Store) InteractionCount(ctx context.Context, userID int64) (int64, error) {
	if !s.Enabled() {
		return 0, nil
	}
	key := fmt.Sprintf("arzbot:user:%d", userID)
	n, err := s.client.HGet(ctx, key, "interactions").Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read interactions: %w", err)
	}
	return n, nil
}

// Close releases the redis connection of an enabled store.
func (s *Store) Close() error {
	if !s.Enabled() {
		return nil
	}
	return s.client.Close()
}

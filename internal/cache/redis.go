// Package cache memoizes derived standings in Redis.
// Keys embed the match-list fingerprint, so a stale table can never be served for changed matches;
// Invalidate only frees memory early.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/maxviazov/tournament-standings-service/internal/config"
	"github.com/maxviazov/tournament-standings-service/internal/model"
)

const (
	keyPrefix  = "standings"
	scanBatch  = 100
	defaultTTL = 5 * time.Minute
)

// NewClient connects to Redis and verifies the connection before returning.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// StandingsCache stores ranked tables as JSON under standings:<tournament>:<fingerprint>.
type StandingsCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewStandingsCache(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *StandingsCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	l := logger.With().Str("module", "cache").Str("component", "standings").Logger()
	return &StandingsCache{client: client, ttl: ttl, log: l}
}

func key(tournamentID int64, fingerprint string) string {
	return fmt.Sprintf("%s:%d:%s", keyPrefix, tournamentID, fingerprint)
}

// Ping reports whether Redis is reachable; used by readiness checks.
func (c *StandingsCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Get returns the cached table, reporting false on a miss.
func (c *StandingsCache) Get(ctx context.Context, tournamentID int64, fingerprint string) ([]model.StandingRow, bool, error) {
	data, err := c.client.Get(ctx, key(tournamentID, fingerprint)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	var rows []model.StandingRow
	if err := json.Unmarshal(data, &rows); err != nil {
		// corrupt entry: treat as miss, the next Set overwrites it
		c.log.Warn().Err(err).Int64("tournament_id", tournamentID).Msg("dropping undecodable standings entry")
		return nil, false, nil
	}
	return rows, true, nil
}

func (c *StandingsCache) Set(ctx context.Context, tournamentID int64, fingerprint string, rows []model.StandingRow) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshaling standings: %w", err)
	}
	if err := c.client.Set(ctx, key(tournamentID, fingerprint), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Invalidate drops every cached table of a tournament.
func (c *StandingsCache) Invalidate(ctx context.Context, tournamentID int64) error {
	pattern := fmt.Sprintf("%s:%d:*", keyPrefix, tournamentID)
	var cursor uint64
	removed := 0
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return fmt.Errorf("redis scan: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del: %w", err)
			}
			removed += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	c.log.Debug().Int64("tournament_id", tournamentID).Int("removed", removed).Msg("standings cache invalidated")
	return nil
}

// Nop is used when Redis is disabled: every lookup misses.
type Nop struct{}

func (Nop) Get(context.Context, int64, string) ([]model.StandingRow, bool, error) {
	return nil, false, nil
}

func (Nop) Set(context.Context, int64, string, []model.StandingRow) error { return nil }

func (Nop) Invalidate(context.Context, int64) error { return nil }

package presence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "presence:account:"

// RedisTracker stores heartbeats as Redis keys with a TTL, so liveness
// expires without any cleanup job.
type RedisTracker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTracker creates a tracker backed by the given Redis connection.
// PRE: addr points at a reachable Redis instance
// POST: Returns a connected tracker or an error
func NewRedisTracker(addr, password string, db int, ttl time.Duration) (*RedisTracker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return NewRedisTrackerWithClient(client, ttl), nil
}

// NewRedisTrackerWithClient wraps an existing client (used in tests).
func NewRedisTrackerWithClient(client *redis.Client, ttl time.Duration) *RedisTracker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisTracker{client: client, ttl: ttl}
}

// Heartbeat marks the account online for the tracker's TTL.
// PRE: accountID is non-empty
// POST: The account's key exists with a fresh TTL
func (t *RedisTracker) Heartbeat(ctx context.Context, accountID string) error {
	return t.client.Set(ctx, keyPrefix+accountID, "1", t.ttl).Err()
}

// Online returns the IDs of accounts with a live heartbeat.
// POST: Returns account IDs in no particular order
func (t *RedisTracker) Online(ctx context.Context) ([]string, error) {
	var ids []string
	var cursor uint64
	for {
		keys, next, err := t.client.Scan(ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("scanning presence keys: %w", err)
		}
		for _, key := range keys {
			ids = append(ids, strings.TrimPrefix(key, keyPrefix))
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return ids, nil
}

// Offline drops an account's heartbeat immediately.
// POST: The account no longer appears in Online
func (t *RedisTracker) Offline(ctx context.Context, accountID string) error {
	return t.client.Del(ctx, keyPrefix+accountID).Err()
}

// Close closes the Redis connection.
func (t *RedisTracker) Close() error {
	return t.client.Close()
}

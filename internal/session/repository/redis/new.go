package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"smart-travel-planner/internal/session"
	"smart-travel-planner/pkg/log"
)

const (
	keyPrefix = "planner:session:"
	// maxTxRetries bounds optimistic-lock retries under contention.
	maxTxRetries = 16
)

type implStore struct {
	client       *goredis.Client
	ttl          time.Duration
	historyLimit int
	now          func() time.Time
	l            log.Logger
}

// Connect parses a redis:// URL and checks the server answers.
func Connect(ctx context.Context, redisURL string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := goredis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// New creates a Redis-backed session store. A zero ttl keeps sessions forever;
// otherwise every write pushes expiry ttl into the future.
func New(client *goredis.Client, ttl time.Duration, historyLimit int, l log.Logger) session.Store {
	if client == nil {
		panic("session/repository/redis: client is required")
	}
	if historyLimit <= 0 {
		historyLimit = session.DefaultHistoryLimit
	}
	return &implStore{
		client:       client,
		ttl:          ttl,
		historyLimit: historyLimit,
		now:          time.Now,
		l:            l,
	}
}

func key(userID string) string {
	return keyPrefix + userID
}

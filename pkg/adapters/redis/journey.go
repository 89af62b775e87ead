// Package redis provides a Redis-backed journey log, for walks whose
// artifact trail must outlive the test process (CI screenshot runs,
// cross-machine debugging).
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/scenic/pkg/domain"
)

const defaultPrefix = "scenic:journey:"

// Log implements ports.JourneyLog on Redis lists, one list per run.
type Log struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures the Log.
type Option func(*Log)

// WithPrefix overrides the key prefix (default "scenic:journey:").
func WithPrefix(prefix string) Option {
	return func(l *Log) {
		l.prefix = prefix
	}
}

// WithTTL expires a run's journey after the given duration. The TTL is
// refreshed on every Record.
func WithTTL(ttl time.Duration) Option {
	return func(l *Log) {
		l.ttl = ttl
	}
}

// NewFromClient creates a journey log on an existing Redis client.
func NewFromClient(client *backend.Client, opts ...Option) *Log {
	l := &Log{client: client, prefix: defaultPrefix}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Log) key(runID string) string {
	return l.prefix + runID
}

// Record appends one hop to the run's list.
func (l *Log) Record(ctx context.Context, hop domain.Hop) error {
	data, err := json.Marshal(hop)
	if err != nil {
		return fmt.Errorf("marshal hop: %w", err)
	}

	key := l.key(hop.RunID)
	if err := l.client.RPush(ctx, key, data).Err(); err != nil {
		return fmt.Errorf("redis rpush: %w", err)
	}
	if l.ttl > 0 {
		if err := l.client.Expire(ctx, key, l.ttl).Err(); err != nil {
			return fmt.Errorf("redis expire: %w", err)
		}
	}
	return nil
}

// History returns the hops recorded for a run, in insertion order.
func (l *Log) History(ctx context.Context, runID string) ([]domain.Hop, error) {
	raw, err := l.client.LRange(ctx, l.key(runID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange: %w", err)
	}
	if len(raw) == 0 {
		return nil, domain.ErrRunNotFound
	}

	hops := make([]domain.Hop, 0, len(raw))
	for _, item := range raw {
		var hop domain.Hop
		if err := json.Unmarshal([]byte(item), &hop); err != nil {
			return nil, fmt.Errorf("unmarshal hop: %w", err)
		}
		hops = append(hops, hop)
	}
	return hops, nil
}

// Clear removes the journey of a run.
func (l *Log) Clear(ctx context.Context, runID string) error {
	if err := l.client.Del(ctx, l.key(runID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

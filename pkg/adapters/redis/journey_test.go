package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/scenic/pkg/adapters/redis"
	"github.com/aretw0/scenic/pkg/domain"
	"github.com/aretw0/scenic/pkg/ports"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	return mr, backend.NewClient(&backend.Options{Addr: mr.Addr()})
}

func TestRedisLog_Contract(t *testing.T) {
	_, client := newTestClient(t)
	ports.RunJourneyLogContract(t, redis.NewFromClient(client))
}

func TestRedisLog_TTL_Expiration(t *testing.T) {
	mr, client := newTestClient(t)

	log := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	err := log.Record(ctx, domain.Hop{RunID: "run-ttl", From: "home", To: "about", At: time.Now().UTC()})
	require.NoError(t, err)

	hops, err := log.History(ctx, "run-ttl")
	require.NoError(t, err)
	assert.Len(t, hops, 1)

	// Fast forward past the TTL in miniredis.
	mr.FastForward(2 * time.Second)

	_, err = log.History(ctx, "run-ttl")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestRedisLog_Prefix(t *testing.T) {
	mr, client := newTestClient(t)

	log := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	err := log.Record(ctx, domain.Hop{RunID: "my-run", From: "a", To: "b", At: time.Now().UTC()})
	require.NoError(t, err)

	// Verify the key directly in Redis.
	assert.True(t, mr.Exists("custom:app:my-run"))
	assert.False(t, mr.Exists("scenic:journey:my-run"))
}

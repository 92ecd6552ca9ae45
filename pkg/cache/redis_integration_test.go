//go:build integration

package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/hijri/pkg/cache"
	"github.com/dmitrymomot/hijri/pkg/redis"
)

func newRedisClient(t *testing.T) goredis.UniversalClient {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379/0"
	}

	ctx := context.Background()
	client, err := redis.Open(ctx, url)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func TestRedis(t *testing.T) {
	t.Parallel()

	type converted struct {
		Hijri     string `json:"hijri"`
		Formatted string `json:"formatted"`
	}

	ctx := context.Background()
	c := cache.NewRedis[converted](newRedisClient(t), nil, cache.WithPrefix("hijri-test"))
	t.Cleanup(func() { _ = c.Clear(ctx) })

	_, err := c.Get(ctx, "missing")
	require.ErrorIs(t, err, cache.ErrNotFound)

	want := converted{Hijri: "1413-08-08", Formatted: "الاثنين 8 شَعبان 1413 19:00"}
	require.NoError(t, c.Set(ctx, "1993-02-01|-1|ar", want, time.Minute))

	got, err := c.Get(ctx, "1993-02-01|-1|ar")
	require.NoError(t, err)
	require.Equal(t, want, got)

	has, err := c.Has(ctx, "1993-02-01|-1|ar")
	require.NoError(t, err)
	require.True(t, has)

	require.NoError(t, c.Delete(ctx, "1993-02-01|-1|ar"))
	has, err = c.Has(ctx, "1993-02-01|-1|ar")
	require.NoError(t, err)
	require.False(t, has)

	v, err := cache.GetOrSet(ctx, c, "computed", func(context.Context) (converted, time.Duration, error) {
		return converted{Hijri: "1445-09-02"}, time.Minute, nil
	})
	require.NoError(t, err)
	require.Equal(t, "1445-09-02", v.Hijri)

	require.NoError(t, c.Clear(ctx))
	has, err = c.Has(ctx, "computed")
	require.NoError(t, err)
	require.False(t, has)
}

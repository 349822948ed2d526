package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/freight-manager/backend/internal/application/adapter"
)

type cachedRow struct {
	Name   string
	Amount string
}

func newTestCache(t *testing.T) (adapter.Cache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCache(client, time.Minute), server
}

func TestRedisCache_GetSet(t *testing.T) {
	ctx := context.Background()

	t.Run("miss on empty cache", func(t *testing.T) {
		c, _ := newTestCache(t)

		var dest []cachedRow
		err := c.Get(ctx, "incomes:freight:1", &dest)
		if !errors.Is(err, adapter.ErrCacheMiss) {
			t.Fatalf("expected ErrCacheMiss, got %v", err)
		}
	})

	t.Run("round trips a stored value", func(t *testing.T) {
		c, _ := newTestCache(t)

		rows := []cachedRow{{Name: "Adiantamento", Amount: "500"}}
		if err := c.Set(ctx, "incomes:freight:1", rows, "freight:1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var dest []cachedRow
		if err := c.Get(ctx, "incomes:freight:1", &dest); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dest) != 1 || dest[0].Name != "Adiantamento" {
			t.Errorf("unexpected cached value: %+v", dest)
		}
	})

	t.Run("entries expire after ttl", func(t *testing.T) {
		c, server := newTestCache(t)

		if err := c.Set(ctx, "k", cachedRow{Name: "x"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		server.FastForward(2 * time.Minute)

		var dest cachedRow
		if err := c.Get(ctx, "k", &dest); !errors.Is(err, adapter.ErrCacheMiss) {
			t.Errorf("expected ErrCacheMiss after ttl, got %v", err)
		}
	})
}

func TestRedisCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	_ = c.Set(ctx, "incomes:freight:1", cachedRow{Name: "a"}, "freight:1")
	_ = c.Set(ctx, "expenses:freight:1", cachedRow{Name: "b"}, "freight:1")
	_ = c.Set(ctx, "incomes:freight:2", cachedRow{Name: "c"}, "freight:2")

	if err := c.Invalidate(ctx, "freight:1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var dest cachedRow
	if err := c.Get(ctx, "incomes:freight:1", &dest); !errors.Is(err, adapter.ErrCacheMiss) {
		t.Errorf("expected incomes:freight:1 to be invalidated, got %v", err)
	}
	if err := c.Get(ctx, "expenses:freight:1", &dest); !errors.Is(err, adapter.ErrCacheMiss) {
		t.Errorf("expected expenses:freight:1 to be invalidated, got %v", err)
	}
	if err := c.Get(ctx, "incomes:freight:2", &dest); err != nil {
		t.Errorf("expected incomes:freight:2 to survive, got %v", err)
	}

	t.Run("unknown tag is a no-op", func(t *testing.T) {
		if err := c.Invalidate(ctx, "freight:unknown"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	c := NewNoopCache()

	if err := c.Set(ctx, "k", cachedRow{Name: "x"}, "t"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var dest cachedRow
	if err := c.Get(ctx, "k", &dest); !errors.Is(err, adapter.ErrCacheMiss) {
		t.Errorf("expected ErrCacheMiss, got %v", err)
	}
	if err := c.Invalidate(ctx, "t"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

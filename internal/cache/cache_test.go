package cache

import (
	"context"
	"testing"
	"time"
)

// TestMemoryCacheSetGet проверяет запись и чтение значения.
func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	c.Set(ctx, "count", "42", time.Minute)

	value, ok := c.Get(ctx, "count")
	if !ok || value != "42" {
		t.Fatalf("expected cached 42, got %q (ok=%v)", value, ok)
	}
}

// TestMemoryCacheMiss проверяет промах по отсутствующему ключу.
func TestMemoryCacheMiss(t *testing.T) {
	c := NewMemoryCache()

	if _, ok := c.Get(context.Background(), "missing"); ok {
		t.Fatal("expected cache miss")
	}
}

// TestMemoryCacheExpiry проверяет протухание записи по TTL.
func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	c.Set(ctx, "count", "42", time.Nanosecond)
	time.Sleep(5 * time.Millisecond)

	if _, ok := c.Get(ctx, "count"); ok {
		t.Fatal("expected expired entry to miss")
	}
}

// TestMemoryCacheNoTTL проверяет запись без срока жизни.
func TestMemoryCacheNoTTL(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	c.Set(ctx, "count", "7", 0)

	if value, ok := c.Get(ctx, "count"); !ok || value != "7" {
		t.Fatalf("expected persistent entry, got %q (ok=%v)", value, ok)
	}
}

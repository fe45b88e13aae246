package cache

import (
	"context"
	"testing"
	"time"
)

func TestSetGetAndExpire(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(10, 0)
	defer c.Close()
	key := "unit:expire"

	// ensure no value
	if _, ok, _ := c.Get(ctx, key); ok {
		t.Fatalf("expected no value initially")
	}

	now := time.Now()
	c.now = func() time.Time { return now }
	_ = c.Set(ctx, key, []byte("hello"), 50*time.Millisecond)
	if v, ok, _ := c.Get(ctx, key); !ok || string(v) != "hello" {
		t.Fatalf("expected value 'hello', got %q ok=%v", v, ok)
	}

	// move past expiry
	c.now = func() time.Time { return now.Add(80 * time.Millisecond) }
	if _, ok, _ := c.Get(ctx, key); ok {
		t.Fatalf("expected expired value to be gone")
	}
	if c.Len() != 0 {
		t.Fatalf("expected lazy delete, len=%d", c.Len())
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(0, 0)
	key := "unit:delete"
	_ = c.Set(ctx, key, []byte("42"), time.Second)
	if v, ok, _ := c.Get(ctx, key); !ok || string(v) != "42" {
		t.Fatalf("expected 42 present before delete, got %q ok=%v", v, ok)
	}
	_ = c.Delete(ctx, key)
	if _, ok, _ := c.Get(ctx, key); ok {
		t.Fatalf("expected deleted value to be absent")
	}
}

func TestLRUEviction(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(2, 0)
	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "b", []byte("2"), 0)
	// touch a so b becomes least recently used
	_, _, _ = c.Get(ctx, "a")
	_ = c.Set(ctx, "c", []byte("3"), 0)

	if _, ok, _ := c.Get(ctx, "b"); ok {
		t.Fatalf("expected b to be evicted")
	}
	for _, k := range []string{"a", "c"} {
		if _, ok, _ := c.Get(ctx, k); !ok {
			t.Fatalf("expected %s to survive eviction", k)
		}
	}
}

func TestSweepRemovesExpired(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(0, 0)
	now := time.Now()
	c.now = func() time.Time { return now }
	_ = c.Set(ctx, "short", []byte("x"), time.Second)
	_ = c.Set(ctx, "forever", []byte("y"), 0)

	c.now = func() time.Time { return now.Add(2 * time.Second) }
	c.sweep()
	if c.Len() != 1 {
		t.Fatalf("expected only the non-expiring entry to remain, len=%d", c.Len())
	}
}

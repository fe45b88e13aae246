package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// DefaultJanitorInterval is how often Memory sweeps expired entries.
const DefaultJanitorInterval = time.Minute

// Cache stores opaque byte values with a TTL. Implementations must be safe
// for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, v []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Item represents a cached value with expiration time.
type Item struct {
	V   []byte
	Exp int64 // unix nanos; 0 = no expiry
}

// Memory is an in-memory TTL cache with LRU eviction.
type Memory struct {
	mu       sync.Mutex
	items    map[string]*entry
	order    *list.List // MRU at front, LRU at back
	maxItems int        // 0 = unlimited
	stop     chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

type entry struct {
	key  string
	item Item
	elem *list.Element
}

// NewMemory creates a cache holding at most maxItems entries (0 = unlimited).
// A janitor goroutine sweeps expired items every janitorInterval until Close.
func NewMemory(maxItems int, janitorInterval time.Duration) *Memory {
	if maxItems < 0 {
		maxItems = 0
	}
	c := &Memory{
		items:    make(map[string]*entry),
		order:    list.New(),
		maxItems: maxItems,
		stop:     make(chan struct{}),
		now:      time.Now,
	}
	if janitorInterval > 0 {
		go c.janitor(janitorInterval)
	}
	return c
}

// Get returns value and whether it exists and not expired.
func (c *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.items[key]
	if !ok {
		return nil, false, nil
	}
	if e.item.Exp != 0 && e.item.Exp < c.now().UnixNano() {
		// lazy delete
		c.removeNoLock(key)
		return nil, false, nil
	}
	c.order.MoveToFront(e.elem)
	return e.item.V, true, nil
}

// Set sets a value with TTL. ttl<=0 means no expiry.
func (c *Memory) Set(_ context.Context, key string, v []byte, ttl time.Duration) error {
	var exp int64
	if ttl > 0 {
		exp = c.now().Add(ttl).UnixNano()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.items[key]; ok {
		e.item = Item{V: v, Exp: exp}
		c.order.MoveToFront(e.elem)
		return nil
	}
	e := &entry{key: key, item: Item{V: v, Exp: exp}}
	e.elem = c.order.PushFront(e)
	c.items[key] = e
	for c.maxItems > 0 && c.order.Len() > c.maxItems {
		c.evictLRUNoLock()
	}
	return nil
}

// Delete removes a key.
func (c *Memory) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	c.removeNoLock(key)
	c.mu.Unlock()
	return nil
}

// Len reports the number of stored entries, expired or not.
func (c *Memory) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Close stops the janitor.
func (c *Memory) Close() error {
	c.stopOnce.Do(func() { close(c.stop) })
	return nil
}

// janitor periodically removes expired items.
func (c *Memory) janitor(interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-t.C:
			c.sweep()
		}
	}
}

func (c *Memory) sweep() {
	now := c.now().UnixNano()
	c.mu.Lock()
	for k, e := range c.items {
		if e.item.Exp != 0 && e.item.Exp < now {
			c.removeNoLock(k)
		}
	}
	c.mu.Unlock()
}

// removeNoLock removes key from map/list; caller must hold c.mu.
func (c *Memory) removeNoLock(key string) {
	if e, ok := c.items[key]; ok {
		c.order.Remove(e.elem)
		delete(c.items, key)
	}
}

// evictLRUNoLock removes one LRU entry; caller must hold c.mu.
func (c *Memory) evictLRUNoLock() {
	back := c.order.Back()
	if back == nil {
		return
	}
	c.order.Remove(back)
	if e, ok := back.Value.(*entry); ok {
		delete(c.items, e.key)
	}
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (Nop) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (Nop) Delete(context.Context, string) error                     { return nil }
func (Nop) Close() error                                             { return nil }

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// memoryCache is the demo-mode stand-in used when no Redis is configured.
// Entries expire lazily on read.
type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryCache() Cache {
	return &memoryCache{
		entries: map[string]memoryEntry{},
	}
}

func (cache *memoryCache) Save(_ context.Context, key string, value any, duration int) error {
	var payload []byte

	switch v := value.(type) {
	case string:
		payload = []byte(v)
	default:
		marshaled, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal cache value: %w", err)
		}

		payload = marshaled
	}

	cache.mu.Lock()
	defer cache.mu.Unlock()

	cache.entries[key] = memoryEntry{
		payload:   payload,
		expiresAt: time.Now().Add(time.Second * time.Duration(duration)),
	}

	return nil
}

func (cache *memoryCache) Get(_ context.Context, key string, value any) error {
	cache.mu.RLock()
	entry, ok := cache.entries[key]
	cache.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return fmt.Errorf("failed to get cache value: %w", Nil)
	}

	switch v := value.(type) {
	case *string:
		*v = string(entry.payload)

		return nil
	default:
		if err := json.Unmarshal(entry.payload, value); err != nil {
			return fmt.Errorf("failed to unmarshal cache value: %w", err)
		}

		return nil
	}
}

func (cache *memoryCache) Delete(_ context.Context, key string) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	delete(cache.entries, key)

	return nil
}

func (cache *memoryCache) Clear(_ context.Context, prefix string) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	prefix = strings.TrimSuffix(prefix, "*")
	for key := range cache.entries {
		if strings.HasPrefix(key, prefix) {
			delete(cache.entries, key)
		}
	}

	return nil
}

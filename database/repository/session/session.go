package sessionRepo

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Key prefixes for per-user session state.
const (
	WizardPrefix = "barbershop:wizard:"
	CartPrefix   = "barbershop:cart:"
)

// SessionStore keeps short-lived per-user state (booking wizard, cart) as
// JSON with a sliding TTL: every Save pushes the expiry out again.
type SessionStore interface {
	// Load fills v and reports whether the key existed.
	Load(ctx context.Context, key string, v any) (bool, error)
	Save(ctx context.Context, key string, v any) error
	Clear(ctx context.Context, key string) error
}

// RedisSessionStore is used when REDIS_ADDR is configured.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Load(ctx context.Context, key string, v any) (bool, error) {
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return false, err
	}
	return true, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

type memEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemorySessionStore is the in-process replacement for Redis.
type MemorySessionStore struct {
	mu      sync.Mutex
	entries map[string]memEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		entries: make(map[string]memEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// WithClock replaces the time source; used by tests.
func (s *MemorySessionStore) WithClock(now func() time.Time) *MemorySessionStore {
	s.now = now
	return s
}

func (s *MemorySessionStore) Load(_ context.Context, key string, v any) (bool, error) {
	s.mu.Lock()
	entry, ok := s.entries[key]
	if ok && s.ttl > 0 && !s.now().Before(entry.expiresAt) {
		delete(s.entries, key)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(entry.data, v); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MemorySessionStore) Save(_ context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memEntry{data: b, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemorySessionStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

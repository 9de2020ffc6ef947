package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RefreshStore keeps issued refresh tokens until they are rotated, revoked
// or expire.
type RefreshStore interface {
	Save(ctx context.Context, token, email string, ttl time.Duration) error
	Lookup(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

var ErrRefreshNotFound = errors.New("refresh token not found")

// NewRefreshToken returns a fresh opaque refresh token.
func NewRefreshToken() string {
	return uuid.NewString()
}

const refreshKeyPrefix = "auth:refresh:"

// RedisRefreshStore keeps refresh tokens in redis so they survive restarts
// and expire server-side.
type RedisRefreshStore struct {
	rdb *redis.Client
}

func NewRedisRefreshStore(rdb *redis.Client) *RedisRefreshStore {
	return &RedisRefreshStore{rdb: rdb}
}

func (s *RedisRefreshStore) Save(ctx context.Context, token, email string, ttl time.Duration) error {
	return s.rdb.Set(ctx, refreshKeyPrefix+token, email, ttl).Err()
}

func (s *RedisRefreshStore) Lookup(ctx context.Context, token string) (string, error) {
	email, err := s.rdb.Get(ctx, refreshKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrRefreshNotFound
	}
	return email, err
}

func (s *RedisRefreshStore) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, refreshKeyPrefix+token).Err()
}

type memoryRefreshEntry struct {
	email     string
	expiresAt time.Time
}

// MemoryRefreshStore is the in-process implementation used by tests.
type MemoryRefreshStore struct {
	mu     sync.Mutex
	tokens map[string]memoryRefreshEntry
}

func NewMemoryRefreshStore() *MemoryRefreshStore {
	return &MemoryRefreshStore{tokens: make(map[string]memoryRefreshEntry)}
}

func (s *MemoryRefreshStore) Save(_ context.Context, token, email string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = memoryRefreshEntry{email: email, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryRefreshStore) Lookup(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.tokens[token]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.tokens, token)
		return "", ErrRefreshNotFound
	}
	return entry.email, nil
}

func (s *MemoryRefreshStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

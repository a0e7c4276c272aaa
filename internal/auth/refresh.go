package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const refreshTokenTTL = 30 * 24 * time.Hour

// ErrRefreshTokenNotFound is returned when a refresh token is unknown,
// expired or already revoked.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenStore issues and resolves opaque refresh tokens. A token maps
// back to the username it was issued for until it expires or is revoked.
type RefreshTokenStore interface {
	Issue(ctx context.Context, username string) (string, error)
	Resolve(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

type RedisRefreshStore struct {
	rdb *redis.Client
}

func NewRedisRefreshStore(rdb *redis.Client) *RedisRefreshStore {
	return &RedisRefreshStore{rdb: rdb}
}

func (s *RedisRefreshStore) Issue(ctx context.Context, username string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, refreshKey(token), username, refreshTokenTTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisRefreshStore) Resolve(ctx context.Context, token string) (string, error) {
	username, err := s.rdb.Get(ctx, refreshKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrRefreshTokenNotFound
	}
	return username, err
}

func (s *RedisRefreshStore) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, refreshKey(token)).Err()
}

func refreshKey(token string) string {
	return "refresh:" + token
}

// MemoryRefreshStore backs the handler test suites. No expiry.
type MemoryRefreshStore struct {
	mu     sync.Mutex
	tokens map[string]string
}

func NewMemoryRefreshStore() *MemoryRefreshStore {
	return &MemoryRefreshStore{tokens: map[string]string{}}
}

func (s *MemoryRefreshStore) Issue(_ context.Context, username string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.tokens[token] = username
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryRefreshStore) Resolve(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	username, ok := s.tokens[token]
	if !ok {
		return "", ErrRefreshTokenNotFound
	}
	return username, nil
}

func (s *MemoryRefreshStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
	return nil
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

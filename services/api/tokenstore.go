package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"goldenbay/models"

	"github.com/go-redis/redis/v8"
)

// ErrNoTokens is returned by a TokenStore when no token pair is held.
var ErrNoTokens = errors.New("no tokens held")

// TokenStore holds the upstream access/refresh pair for one staff session.
// At most one access token is current at a time; Set replaces the pair
// atomically and Clear ends the session.
type TokenStore interface {
	Get(ctx context.Context) (models.Tokens, error)
	Set(ctx context.Context, tokens models.Tokens) error
	Clear(ctx context.Context) error
}

const tokenKeyPrefix = "staffTokens:"

// RedisTokenStore persists a staff session's tokens in Redis with a TTL.
type RedisTokenStore struct {
	Client    *redis.Client
	SessionID string
	TTL       time.Duration
}

func NewRedisTokenStore(client *redis.Client, sessionID string, ttl time.Duration) *RedisTokenStore {
	return &RedisTokenStore{Client: client, SessionID: sessionID, TTL: ttl}
}

func (s *RedisTokenStore) key() string {
	return tokenKeyPrefix + s.SessionID
}

func (s *RedisTokenStore) Get(ctx context.Context) (models.Tokens, error) {
	data, err := s.Client.Get(ctx, s.key()).Result()
	if err == redis.Nil {
		return models.Tokens{}, ErrNoTokens
	}
	if err != nil {
		return models.Tokens{}, fmt.Errorf("failed to load tokens: %w", err)
	}
	var tokens models.Tokens
	if err := json.Unmarshal([]byte(data), &tokens); err != nil {
		return models.Tokens{}, fmt.Errorf("failed to unmarshal tokens: %w", err)
	}
	return tokens, nil
}

func (s *RedisTokenStore) Set(ctx context.Context, tokens models.Tokens) error {
	data, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("failed to marshal tokens: %w", err)
	}
	if err := s.Client.Set(ctx, s.key(), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save tokens: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Clear(ctx context.Context) error {
	return s.Client.Del(ctx, s.key()).Err()
}

// MemoryTokenStore is an in-process TokenStore used in tests.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens models.Tokens
	held   bool

	// ClearCount tracks forced logouts so tests can assert exactly-once.
	ClearCount int
}

func (s *MemoryTokenStore) Get(ctx context.Context) (models.Tokens, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.held {
		return models.Tokens{}, ErrNoTokens
	}
	return s.tokens, nil
}

func (s *MemoryTokenStore) Set(ctx context.Context, tokens models.Tokens) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = tokens
	s.held = true
	return nil
}

func (s *MemoryTokenStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = models.Tokens{}
	s.held = false
	s.ClearCount++
	return nil
}

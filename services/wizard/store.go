package wizard

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

// ErrSessionNotFound is returned when a wizard session is missing or expired.
var ErrSessionNotFound = errors.New("wizard session not found or expired")

// ErrNoChange may be returned from an Update mutator to abort the write while
// still returning the current session. Used to discard superseded
// availability fetches.
var ErrNoChange = errors.New("no change")

// SessionStore persists wizard sessions between requests. Update applies a
// mutation atomically with respect to other mutations of the same session.
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.WizardSession, error)
	Save(ctx context.Context, session *models.WizardSession) error
	Delete(ctx context.Context, id string) error
	Update(ctx context.Context, id string, mutate func(*models.WizardSession) error) (*models.WizardSession, error)
}

const wizardKeyPrefix = "wizard:"

// RedisSessionStore stores wizard sessions as JSON with a TTL.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*models.WizardSession, error) {
	data, err := s.Client.Get(ctx, wizardKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wizard session: %w", err)
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wizard session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.WizardSession) error {
	session.UpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := s.Client.Set(ctx, wizardKeyPrefix+session.ID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save wizard session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.Client.Del(ctx, wizardKeyPrefix+id).Err()
}

// Update runs the mutation inside an optimistic WATCH transaction so two
// concurrent mutations of the same session cannot interleave.
func (s *RedisSessionStore) Update(ctx context.Context, id string, mutate func(*models.WizardSession) error) (*models.WizardSession, error) {
	key := wizardKeyPrefix + id
	var result *models.WizardSession

	for attempt := 0; attempt < 5; attempt++ {
		err := s.Client.Watch(ctx, func(tx *redis.Tx) error {
			data, err := tx.Get(ctx, key).Result()
			if err == redis.Nil {
				return ErrSessionNotFound
			}
			if err != nil {
				return fmt.Errorf("failed to load wizard session: %w", err)
			}
			var session models.WizardSession
			if err := json.Unmarshal([]byte(data), &session); err != nil {
				return fmt.Errorf("failed to unmarshal wizard session: %w", err)
			}

			if err := mutate(&session); err != nil {
				if err == ErrNoChange {
					result = &session
					return nil
				}
				return err
			}

			session.UpdatedAt = time.Now()
			updated, err := json.Marshal(&session)
			if err != nil {
				return fmt.Errorf("failed to marshal wizard session: %w", err)
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, updated, s.TTL)
				return nil
			})
			if err == nil {
				result = &session
			}
			return err
		}, key)

		if err == redis.TxFailedErr {
			continue
		}
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	return nil, fmt.Errorf("wizard session update contention on %s", id)
}

// MemorySessionStore is an in-process SessionStore used in tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.WizardSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*models.WizardSession)}
}

func (s *MemorySessionStore) Get(ctx context.Context, id string) (*models.WizardSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (s *MemorySessionStore) Save(ctx context.Context, session *models.WizardSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session.UpdatedAt = time.Now()
	copied := *session
	s.sessions[session.ID] = &copied
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *MemorySessionStore) Update(ctx context.Context, id string, mutate func(*models.WizardSession) error) (*models.WizardSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := *session
	if err := mutate(&copied); err != nil {
		if err == ErrNoChange {
			return &copied, nil
		}
		return nil, err
	}
	copied.UpdatedAt = time.Now()
	s.sessions[id] = &copied
	out := copied
	return &out, nil
}

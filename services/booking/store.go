package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"autocare/models"
	"autocare/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists booking wizard sessions between requests.
type SessionStore interface {
	Save(ctx context.Context, session *models.BookingSession) error
	// Get returns ErrSessionNotFound for a missing or expired session.
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions as JSON blobs in Redis with a TTL.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore returns a store backed by the shared session cache client.
func NewRedisSessionStore() *RedisSessionStore {
	return &RedisSessionStore{client: utils.GetSessionCacheClient()}
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.BookingSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	key := utils.BookingSessionPrefix + session.SessionID
	if err := s.client.Set(ctx, key, data, utils.BookingSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.client.Get(ctx, utils.BookingSessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, utils.BookingSessionPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}

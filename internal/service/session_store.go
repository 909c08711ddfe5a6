package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionStore tracks which issued session tokens are still live.
type SessionStore interface {
	Save(ctx context.Context, userID uuid.UUID, sessionID string, ttl time.Duration) error
	Exists(ctx context.Context, userID uuid.UUID, sessionID string) (bool, error)
	Delete(ctx context.Context, userID uuid.UUID, sessionID string) error
}

type redisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func sessionKey(userID uuid.UUID, sessionID string) string {
	return fmt.Sprintf("session:%s:%s", userID.String(), sessionID)
}

func (s *redisSessionStore) Save(ctx context.Context, userID uuid.UUID, sessionID string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(userID, sessionID), "valid", ttl).Err()
}

func (s *redisSessionStore) Exists(ctx context.Context, userID uuid.UUID, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(userID, sessionID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, userID uuid.UUID, sessionID string) error {
	return s.client.Del(ctx, sessionKey(userID, sessionID)).Err()
}

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/controlhs/datacore/internal/core/domain"
)

const sessionKeyPrefix = "session:"

type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) SaveSession(ctx context.Context, session domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session already expired")
	}

	key := sessionKeyPrefix + session.Token
	return r.client.Set(ctx, key, payload, ttl).Err()
}

func (r *RedisAdapter) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	key := sessionKeyPrefix + token

	payload, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	return &session, nil
}

func (r *RedisAdapter) DeleteSession(ctx context.Context, token string) error {
	key := sessionKeyPrefix + token
	return r.client.Del(ctx, key).Err()
}

package verification

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Store backed by redis, for multi-instance deployments where
// the code must survive hitting a different instance than the one that
// issued it.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func codeKey(userID int64) string {
	return fmt.Sprintf("verify:code:%d", userID)
}

func (s *RedisStore) Put(ctx context.Context, userID int64, code string) error {
	if err := s.client.Set(ctx, codeKey(userID), code, s.ttl).Err(); err != nil {
		return fmt.Errorf("store verification code: %w", err)
	}
	return nil
}

func (s *RedisStore) Validate(ctx context.Context, userID int64, code string) (bool, error) {
	stored, err := s.client.Get(ctx, codeKey(userID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read verification code: %w", err)
	}
	if stored != code {
		return false, nil
	}

	if err := s.client.Del(ctx, codeKey(userID)).Err(); err != nil {
		return false, fmt.Errorf("consume verification code: %w", err)
	}
	return true, nil
}

func (s *RedisStore) Remove(ctx context.Context, userID int64) error {
	return s.client.Del(ctx, codeKey(userID)).Err()
}

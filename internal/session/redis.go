// In file: internal/session/redis.go
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps credentials in Redis under session:<id>:credential.
// Keys have no expiry, matching the lifetime of a browser-stored key.
type RedisStore struct {
	rdb *redis.Client
}

var _ CredentialStore = (*RedisStore)(nil)

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) credentialKey(id string) string {
	return fmt.Sprintf("session:%s:credential", id)
}

func (s *RedisStore) Get(ctx context.Context, id string) (string, error) {
	id, err := validID(id)
	if err != nil {
		return "", err
	}
	key, err := s.rdb.Get(ctx, s.credentialKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credential for session %s: %w", id, err)
	}
	return key, nil
}

func (s *RedisStore) Set(ctx context.Context, id, key string) error {
	id, err := validID(id)
	if err != nil {
		return err
	}
	key, ok := normalizeKey(key)
	if !ok {
		return s.Clear(ctx, id)
	}
	if err := s.rdb.Set(ctx, s.credentialKey(id), key, 0).Err(); err != nil {
		return fmt.Errorf("failed to store credential for session %s: %w", id, err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, id string) error {
	id, err := validID(id)
	if err != nil {
		return err
	}
	if err := s.rdb.Del(ctx, s.credentialKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to clear credential for session %s: %w", id, err)
	}
	return nil
}

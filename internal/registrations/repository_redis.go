package registrations

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/communityday/registrations/internal/models"
)

// SetAPI is the slice of the go-redis client used by RedisRepository.
type SetAPI interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisRepository stores each registration as a JSON string under {prefix}{id}.
type RedisRepository struct {
	client SetAPI
	prefix string
}

// NewRedisRepository creates a Redis-backed store.
func NewRedisRepository(client SetAPI, prefix string) *RedisRepository {
	return &RedisRepository{client: client, prefix: prefix}
}

// Key returns the Redis key for a registration id.
func (r *RedisRepository) Key(id string) string {
	return r.prefix + id
}

// Put writes the registration without expiry, overwriting any previous value.
func (r *RedisRepository) Put(ctx context.Context, reg *models.Registration) error {
	doc, err := document(reg)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.Key(reg.ID), doc, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

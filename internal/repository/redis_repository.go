package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/strivehardest/celestial-shopping/internal/domain"
	"github.com/strivehardest/celestial-shopping/internal/port"
	"github.com/strivehardest/celestial-shopping/internal/snapshot"
)

// redisCartRepository stores the JSON snapshot as a plain string value.
// A zero ttl keeps the key until it is overwritten or evicted.
type redisCartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCart(client *redis.Client, ttl time.Duration) port.CartRepository {
	return &redisCartRepository{client: client, ttl: ttl}
}

func (r *redisCartRepository) Load(ctx context.Context, key string) (domain.Cart, error) {
	if key == "" {
		return domain.Cart{}, fmt.Errorf("key is empty")
	}

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Cart{}, domain.ErrCartNotFound
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("client.Get: %w", err)
	}

	cart, err := snapshot.Decode(data)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("snapshot.Decode: %w", err)
	}

	return cart, nil
}

func (r *redisCartRepository) Save(ctx context.Context, key string, cart domain.Cart) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	data, err := snapshot.Encode(cart)
	if err != nil {
		return fmt.Errorf("snapshot.Encode: %w", err)
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}

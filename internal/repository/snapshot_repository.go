package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/strivehardest/celestial-shopping/internal/domain"
	"github.com/strivehardest/celestial-shopping/internal/port"
	"github.com/strivehardest/celestial-shopping/internal/snapshot"
)

// noopCartRepository is the backend for contexts without durable storage,
// such as server-side rendering: nothing is read and writes are dropped.
type noopCartRepository struct{}

func NewNoopCart() port.CartRepository {
	return noopCartRepository{}
}

func (noopCartRepository) Load(context.Context, string) (domain.Cart, error) {
	return domain.Cart{}, domain.ErrCartNotFound
}

func (noopCartRepository) Save(context.Context, string, domain.Cart) error {
	return nil
}

// MemoryCartRepository keeps encoded snapshots in process memory.
type MemoryCartRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryCart() *MemoryCartRepository {
	return &MemoryCartRepository{data: make(map[string][]byte)}
}

func (r *MemoryCartRepository) Load(_ context.Context, key string) (domain.Cart, error) {
	if key == "" {
		return domain.Cart{}, fmt.Errorf("key is empty")
	}

	r.mu.RLock()
	data, ok := r.data[key]
	r.mu.RUnlock()

	if !ok {
		return domain.Cart{}, domain.ErrCartNotFound
	}

	cart, err := snapshot.Decode(data)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("snapshot.Decode: %w", err)
	}

	return cart, nil
}

func (r *MemoryCartRepository) Save(_ context.Context, key string, cart domain.Cart) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	data, err := snapshot.Encode(cart)
	if err != nil {
		return fmt.Errorf("snapshot.Encode: %w", err)
	}

	r.Put(key, data)

	return nil
}

// Raw returns the stored record for key.
func (r *MemoryCartRepository) Raw(key string) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.data[key]
	return data, ok
}

// Put stores a raw record for key, bypassing encoding.
func (r *MemoryCartRepository) Put(key string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[key] = data
}

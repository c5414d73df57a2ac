package port

import (
	"context"

	"github.com/strivehardest/celestial-shopping/internal/domain"
)

// CartRepository persists whole carts under a namespace key.
// Load returns domain.ErrCartNotFound when nothing is stored for key.
type CartRepository interface {
	Load(ctx context.Context, key string) (domain.Cart, error)
	Save(ctx context.Context, key string, cart domain.Cart) error
}

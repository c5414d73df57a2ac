package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/strivehardest/celestial-shopping/internal/domain"
	"github.com/strivehardest/celestial-shopping/internal/port"
	"github.com/strivehardest/celestial-shopping/internal/snapshot"
)

const (
	selectSnapshotQuery = `SELECT payload FROM cart_snapshots WHERE cart_key = ?`
	upsertSnapshotQuery = `INSERT INTO cart_snapshots (cart_key, payload) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE payload = VALUES(payload)`
)

// mysqlCartRepository stores the JSON snapshot in the cart_snapshots table.
type mysqlCartRepository struct {
	db *sql.DB
}

func NewMySQLCart(db *sql.DB) port.CartRepository {
	return &mysqlCartRepository{db: db}
}

func (r *mysqlCartRepository) Load(ctx context.Context, key string) (domain.Cart, error) {
	if key == "" {
		return domain.Cart{}, fmt.Errorf("key is empty")
	}

	var payload []byte
	err := r.db.QueryRowContext(ctx, selectSnapshotQuery, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Cart{}, domain.ErrCartNotFound
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("db.QueryRowContext: %w", err)
	}

	cart, err := snapshot.Decode(payload)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("snapshot.Decode: %w", err)
	}

	return cart, nil
}

func (r *mysqlCartRepository) Save(ctx context.Context, key string, cart domain.Cart) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	payload, err := snapshot.Encode(cart)
	if err != nil {
		return fmt.Errorf("snapshot.Encode: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, upsertSnapshotQuery, key, payload); err != nil {
		return fmt.Errorf("db.ExecContext: %w", err)
	}

	return nil
}

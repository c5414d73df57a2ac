package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/strivehardest/celestial-shopping/internal/domain"
	"github.com/strivehardest/celestial-shopping/internal/port"
	"github.com/strivehardest/celestial-shopping/internal/snapshot"
)

// fileCartRepository keeps one JSON snapshot file per key inside dir.
type fileCartRepository struct {
	dir string
}

func NewFileCart(dir string) (port.CartRepository, error) {
	if dir == "" {
		return nil, fmt.Errorf("dir is empty")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("os.MkdirAll: %w", err)
	}

	return &fileCartRepository{dir: dir}, nil
}

func (r *fileCartRepository) Load(_ context.Context, key string) (domain.Cart, error) {
	if key == "" {
		return domain.Cart{}, fmt.Errorf("key is empty")
	}

	data, err := os.ReadFile(r.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Cart{}, domain.ErrCartNotFound
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("os.ReadFile: %w", err)
	}

	cart, err := snapshot.Decode(data)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("snapshot.Decode: %w", err)
	}

	return cart, nil
}

// Save writes to a temporary file and renames it over the snapshot so a
// reader never observes a partial record.
func (r *fileCartRepository) Save(_ context.Context, key string, cart domain.Cart) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	data, err := snapshot.Encode(cart)
	if err != nil {
		return fmt.Errorf("snapshot.Encode: %w", err)
	}

	tmp, err := os.CreateTemp(r.dir, ".cart-*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("tmp.Write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("tmp.Close: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path(key)); err != nil {
		return fmt.Errorf("os.Rename: %w", err)
	}

	return nil
}

func (r *fileCartRepository) path(key string) string {
	return filepath.Join(r.dir, url.PathEscape(key)+".json")
}

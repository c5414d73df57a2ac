package repository_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/strivehardest/celestial-shopping/internal/domain"
	"github.com/strivehardest/celestial-shopping/internal/port"
	"github.com/strivehardest/celestial-shopping/internal/repository"
	"github.com/strivehardest/celestial-shopping/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRepositories(t *testing.T) {
	fileRepo, err := repository.NewFileCart(filepath.Join(t.TempDir(), "carts"))
	require.NoError(t, err)

	repos := map[string]port.CartRepository{
		"memory": repository.NewMemoryCart(),
		"file":   fileRepo,
	}

	for name, repo := range repos {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()
			key := "celestial-cart:" + gofakeit.UUID()

			_, err := repo.Load(ctx, key)
			require.ErrorIs(t, err, domain.ErrCartNotFound)

			first := randomCart(3)
			require.NoError(t, repo.Save(ctx, key, first))

			got, err := repo.Load(ctx, key)
			require.NoError(t, err)
			assertCart(t, first, got)

			require.NoError(t, repo.Save(ctx, key, domain.Cart{}))

			got, err = repo.Load(ctx, key)
			require.NoError(t, err)
			assert.Empty(t, got.Items)

			require.EqualError(t, repo.Save(ctx, "", first), "key is empty")
			_, err = repo.Load(ctx, "")
			require.EqualError(t, err, "key is empty")
		})
	}
}

func TestFileCart_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	repo, err := repository.NewFileCart(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "celestial-cart.json"), []byte("not json"), 0o600))

	_, err = repo.Load(t.Context(), "celestial-cart")
	require.ErrorIs(t, err, snapshot.ErrCorrupt)
}

func TestFileCart_EscapesKey(t *testing.T) {
	dir := t.TempDir()
	repo, err := repository.NewFileCart(dir)
	require.NoError(t, err)

	require.NoError(t, repo.Save(t.Context(), "../outside/cart", randomCart(1)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "..%2Foutside%2Fcart.json", entries[0].Name())
}

func TestNewFileCart_EmptyDir(t *testing.T) {
	_, err := repository.NewFileCart("")
	require.EqualError(t, err, "dir is empty")
}

func TestMemoryCart_StoresTextualSnapshot(t *testing.T) {
	ctx := t.Context()
	repo := repository.NewMemoryCart()

	cart := randomCart(2)
	require.NoError(t, repo.Save(ctx, "k", cart))

	raw, ok := repo.Raw("k")
	require.True(t, ok)

	decoded, err := snapshot.Decode(raw)
	require.NoError(t, err)
	assertCart(t, cart, decoded)
}

func TestNoopCart(t *testing.T) {
	ctx := t.Context()
	repo := repository.NewNoopCart()

	require.NoError(t, repo.Save(ctx, "k", randomCart(2)))

	_, err := repo.Load(ctx, "k")
	require.ErrorIs(t, err, domain.ErrCartNotFound)
}

package repository_test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-sql-driver/mysql"
	"github.com/strivehardest/celestial-shopping/internal/domain"
	"github.com/strivehardest/celestial-shopping/internal/repository"
	"github.com/stretchr/testify/require"
)

func getMySQL(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		t.Skip("MYSQL_DSN is not set")
	}

	cfg, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	cfg.MultiStatements = true

	connector, err := mysql.NewConnector(cfg)
	require.NoError(t, err)

	db := sql.OpenDB(connector)
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		t.Skipf("MySQL not available: %v", err)
	}

	schema, err := os.ReadFile("../migrations/02_cart_snapshots.mysql.sql")
	require.NoError(t, err)
	_, err = db.ExecContext(context.Background(), string(schema))
	require.NoError(t, err)

	return db
}

func TestMySQLCart_SaveLoad(t *testing.T) {
	db := getMySQL(t)
	defer db.Close()

	ctx := t.Context()
	repo := repository.NewMySQLCart(db)
	key := "test-cart:" + gofakeit.UUID()
	defer db.ExecContext(context.Background(), "DELETE FROM cart_snapshots WHERE cart_key = ?", key)

	_, err := repo.Load(ctx, key)
	require.ErrorIs(t, err, domain.ErrCartNotFound)

	first := randomCart(2)
	require.NoError(t, repo.Save(ctx, key, first))

	second := randomCart(4)
	require.NoError(t, repo.Save(ctx, key, second))

	got, err := repo.Load(ctx, key)
	require.NoError(t, err)
	assertCart(t, second, got)
}

package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/strivehardest/celestial-shopping/internal/config"
	"github.com/strivehardest/celestial-shopping/internal/port"
	"github.com/strivehardest/celestial-shopping/internal/repository"
)

// openRepository builds the backend selected by cfg. The returned close
// function releases its connections.
func openRepository(ctx context.Context, cfg config.Config) (port.CartRepository, func(), error) {
	noop := func() {}

	switch cfg.Backend {
	case config.BackendNone:
		return repository.NewNoopCart(), noop, nil

	case config.BackendMemory:
		return repository.NewMemoryCart(), noop, nil

	case config.BackendFile:
		repo, err := repository.NewFileCart(cfg.CartDir)
		if err != nil {
			return nil, nil, fmt.Errorf("repository.NewFileCart: %w", err)
		}
		return repo, noop, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("client.Ping: %w", err)
		}
		return repository.NewRedisCart(client, cfg.CartTTL), func() { client.Close() }, nil

	case config.BackendMySQL:
		mc, err := mysql.ParseDSN(cfg.MySQLDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("mysql.ParseDSN: %w", err)
		}
		mc.ParseTime = true

		connector, err := mysql.NewConnector(mc)
		if err != nil {
			return nil, nil, fmt.Errorf("mysql.NewConnector: %w", err)
		}

		db := sql.OpenDB(connector)
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("db.PingContext: %w", err)
		}
		return repository.NewMySQLCart(db), func() { db.Close() }, nil

	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("pgxpool.New: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("pool.Ping: %w", err)
		}
		return repository.NewPostgresCart(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("backend[%s] is not supported", cfg.Backend)
	}
}

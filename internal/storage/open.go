package storage

import (
	"context"
	"fmt"

	"github.com/Domenick1991/flightbooking/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Backend is an opened store with its lifecycle hooks. Ping is nil for the
// in-memory driver.
type Backend struct {
	Store Store
	Ping  func(ctx context.Context) error
	Close func()
}

// Open connects the driver selected in cfg.Storage.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	switch cfg.Storage.Driver {
	case config.StorageRedis:
		store := NewRedisStore(cfg.Redis)
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
		}
		return &Backend{Store: store, Ping: store.Ping, Close: func() { _ = store.Close() }}, nil

	case config.StoragePostgres:
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		store := NewPGStore(pool)
		if err := store.Migrate(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return &Backend{Store: store, Ping: store.Ping, Close: pool.Close}, nil

	case config.StorageMemory:
		return &Backend{Store: NewMemoryStore(), Close: func() {}}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

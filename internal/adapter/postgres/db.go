// Package postgres holds the pgx-backed persistence for the DoneFast
// distribution service: order, agent, and distribution repositories plus the
// NOTIFY/LISTEN event bus and the advisory locker, all sharing one pool.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The eventbus listener and the locker each pin a connection for their
// lifetime, so the pool must stay comfortably larger than that fixed cost.
const (
	maxConns        = 16
	connMaxIdleTime = 5 * time.Minute
)

func Connect(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}
	config.MaxConns = maxConns
	config.MaxConnIdleTime = connMaxIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return pool, nil
}

// Package carddb is the shared database-access layer of the CcardFinder
// monorepo. It owns the connection pool (every session pinned to the
// configured timezone), the schema migrations, and typed repositories over
// the card-comparison entities. Services construct one Client at startup and
// close it at shutdown; there is no hidden global handle.
package carddb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jack20410/CcardFinder/config"
	"github.com/Jack20410/CcardFinder/metrics"
)

// Client bundles the pool and the typed repositories. The caller owns its
// lifetime: construct once at process start, Close at shutdown.
type Client struct {
	pool *pgxpool.Pool

	Users       *UserRepo
	Cards       *CardRepo
	Comparisons *ComparisonRepo
}

// New connects, runs pending migrations, and returns a ready Client.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	pool, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return NewClientFromPool(pool), nil
}

// NewClientFromPool wraps an existing pool. Used by tests and by services
// that manage the pool themselves.
func NewClientFromPool(pool *pgxpool.Pool) *Client {
	return &Client{
		pool:        pool,
		Users:       NewUserRepo(pool),
		Cards:       NewCardRepo(pool),
		Comparisons: NewComparisonRepo(pool),
	}
}

// Pool exposes the underlying pool for callers needing raw queries or
// transaction demarcation.
func (c *Client) Pool() *pgxpool.Pool {
	return c.pool
}

// HealthCheck verifies connectivity.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

// CollectPoolMetrics publishes current pool state to prometheus gauges.
func (c *Client) CollectPoolMetrics() {
	stat := c.pool.Stat()
	metrics.DBConnectionsCurrent.WithLabelValues("acquired").Set(float64(stat.AcquiredConns()))
	metrics.DBConnectionsCurrent.WithLabelValues("idle").Set(float64(stat.IdleConns()))
	metrics.DBConnectionsCurrent.WithLabelValues("constructing").Set(float64(stat.ConstructingConns()))
}

// Close releases the pool. Safe to call on all exit paths.
func (c *Client) Close() {
	c.pool.Close()
}

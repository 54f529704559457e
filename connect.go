package carddb

import (
	"context"
	"fmt"
	"log/slog"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jack20410/CcardFinder/config"
)

// Connect builds the shared connection pool.
//
// Every new physical connection runs the session timezone directive before
// the pool hands it to any caller; pooled connections are reused across many
// queries, so this happens once per connection, not once per query. If the
// directive fails, AfterConnect returns the error and pgx discards the
// connection: a session with the wrong timezone is never visible to callers.
func Connect(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	poolCfg.ConnConfig.Tracer = &MetricsTracer{}

	zone := cfg.DatabaseTimezone
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		// NUMERIC columns scan into shopspring decimals everywhere.
		pgxdecimal.Register(conn.TypeMap())

		// SET accepts no bind parameters. The zone name is interpolated from
		// config, validated at load time, and must never come from request
		// input.
		if _, err := conn.Exec(ctx, fmt.Sprintf("SET TIME ZONE '%s'", zone)); err != nil {
			return fmt.Errorf("failed to pin session timezone %q: %w", zone, err)
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("Database connected", "timezone", zone, "max_conns", poolCfg.MaxConns)
	return pool, nil
}

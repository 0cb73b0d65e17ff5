// Package xpgx adapts a pgx pool to squirrel built queries and struct scanning.
package xpgx

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/georgysavva/scany/v2/pgxscan"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/ougirez/landscape/internal/pkg/logger"
)

// Pool is the subset of database access the store needs.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error)
	Getx(ctx context.Context, dst interface{}, query sq.Sqlizer) error
	Selectx(ctx context.Context, dst interface{}, query sq.Sqlizer) error
	// StdDB wraps the pool for database/sql consumers. Closing the result
	// releases its connections back to the pool.
	StdDB() *sql.DB
	Close()
}

type Options struct {
	MaxConns       int32
	ConnectRetries uint64
	RetryInterval  time.Duration
}

type pool struct {
	*pgxpool.Pool
}

// Connect opens a pool and pings it, retrying with a constant backoff
// while the database is not yet reachable.
func Connect(ctx context.Context, dsn string, opts Options) (Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	cfg.AfterConnect = func(_ context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	interval := opts.RetryInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	var p *pgxpool.Pool
	attempt := 0
	err = backoff.Retry(
		func() error {
			attempt++
			var connErr error
			p, connErr = pgxpool.NewWithConfig(ctx, cfg)
			if connErr != nil {
				logger.Warnf(ctx, "db connect attempt %d: %s", attempt, connErr.Error())
				return connErr
			}
			if connErr = p.Ping(ctx); connErr != nil {
				p.Close()
				logger.Warnf(ctx, "db ping attempt %d: %s", attempt, connErr.Error())
				return connErr
			}
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(interval), opts.ConnectRetries),
			ctx,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to db: %w", err)
	}

	return &pool{p}, nil
}

func (p *pool) StdDB() *sql.DB {
	return stdlib.OpenDBFromPool(p.Pool)
}

func (p *pool) Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build query: %w", err)
	}

	return p.Pool.Exec(ctx, sql, args...)
}

func (p *pool) Getx(ctx context.Context, dst interface{}, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, p.Pool, dst, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return pgx.ErrNoRows
		}
		return err
	}

	return nil
}

func (p *pool) Selectx(ctx context.Context, dst interface{}, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	return pgxscan.Select(ctx, p.Pool, dst, sql, args...)
}

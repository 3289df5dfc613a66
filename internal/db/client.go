// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/canonical/caseflow/internal/logging"
	"github.com/canonical/caseflow/internal/monitoring"
	"github.com/canonical/caseflow/internal/tracing"
)

const defaultTxTimeout = time.Second * 60

type txContextKey struct{}

var txKey txContextKey

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

// lazyTx defers transaction creation until a statement actually needs one,
// so read-only handlers behind the tx middleware cost nothing extra.
type lazyTx struct {
	db        *sql.DB
	tx        *sql.Tx
	cancel    context.CancelFunc
	committed bool
	logger    logging.LoggerInterface
}

func (lt *lazyTx) get() (*sql.Tx, error) {
	if lt.tx != nil {
		return lt.tx, nil
	}

	// Detached from the request context so a client disconnect cannot
	// roll back a half-applied write; bounded by a timeout instead.
	ctx, cancel := context.WithTimeout(context.Background(), defaultTxTimeout)
	tx, err := lt.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		return nil, err
	}

	lt.tx = tx
	lt.cancel = cancel
	return tx, nil
}

func (lt *lazyTx) started() bool {
	return lt.tx != nil
}

type DBClient struct {
	pool *pgxpool.Pool
	db   *sql.DB

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ DBClientInterface = (*DBClient)(nil)

func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	if lt, ok := ctx.Value(txKey).(*lazyTx); ok {
		tx, err := lt.get()
		if err != nil {
			d.logger.Errorf("failed to begin lazy transaction: %v", err)
		} else {
			return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(tx)
		}
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(d.db)
}

func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	lt := &lazyTx{db: d.db, logger: d.logger}
	txCtx := context.WithValue(ctx, txKey, lt)

	defer func() {
		if lt.started() && !lt.committed {
			if err := lt.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				d.logger.Errorf("failed to rollback transaction: %v", err)
			}
		}
		if lt.cancel != nil {
			lt.cancel()
		}
	}()

	if err := fn(txCtx); err != nil {
		return err
	}

	if lt.started() {
		if err := lt.tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %v", err)
		}
		lt.committed = true
	}

	return nil
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

// NewDBClient creates a pgx pool with an sql.DB bridge for squirrel.
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("DSN validation failed: %v", err)
	}

	if cfg.TracingEnabled {
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	config.MaxConns = cfg.MaxConns
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	config.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %v", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			return nil, fmt.Errorf("failed to start metrics collection for database: %v", err)
		}
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %v", err)
	}

	d := new(DBClient)
	d.pool = pool
	d.db = db

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d, nil
}

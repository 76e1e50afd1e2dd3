// Copyright 2026 DSA Digital Platform
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

	"github.com/dsadigitalplatform/admin-service/internal/logging"
	"github.com/dsadigitalplatform/admin-service/internal/monitoring"
	"github.com/dsadigitalplatform/admin-service/internal/tracing"
)

const defaultTxTimeout = 60 * time.Second

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

// txHolder carries a transaction opened lazily on first statement inside a
// WithTx scope. No transaction is opened at all when the scope performs no
// database access.
type txHolder struct {
	db        *sql.DB
	tx        TxInterface
	cancel    context.CancelFunc
	committed bool
}

func (h *txHolder) get() (TxInterface, error) {
	if h.tx != nil {
		return h.tx, nil
	}

	// Detached from the request context so a client disconnect cannot roll
	// back a half-applied multi-row sequence; bounded by a timeout instead.
	ctx, cancel := context.WithTimeout(context.Background(), defaultTxTimeout)
	tx, err := h.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		return nil, err
	}

	h.tx = tx
	h.cancel = cancel
	return tx, nil
}

type DBClient struct {
	pool   *pgxpool.Pool
	db     *sql.DB
	runner sq.BaseRunner

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Statement returns a squirrel builder bound to the pool, or to the scope's
// transaction when called inside WithTx.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	if h, ok := ctx.Value(txKey).(*txHolder); ok {
		tx, err := h.get()
		if err != nil {
			d.logger.Errorf("failed to open transaction, falling back to pool: %v", err)
		} else {
			return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(tx)
		}
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(d.runner)
}

// WithTx runs fn inside a transaction scope. The transaction starts lazily on
// the first statement, commits when fn returns nil and rolls back otherwise.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	h := &txHolder{db: d.db}

	defer func() {
		if h.tx != nil && !h.committed {
			if err := h.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				d.logger.Errorf("failed to rollback transaction: %v", err)
			}
		}
		if h.cancel != nil {
			h.cancel()
		}
	}()

	if err := fn(context.WithValue(ctx, txKey, h)); err != nil {
		return err
	}

	if h.tx != nil {
		if err := h.tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %v", err)
		}
		h.committed = true
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
			return nil, fmt.Errorf("failed to start db metrics collection: %v", err)
		}
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %v", err)
	}

	d := new(DBClient)
	d.pool = pool
	d.db = db
	d.runner = db

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d, nil
}

package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect selects placeholder style and DDL flavor for the run store.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

type Config struct {
	DSN         string // "file:runs.db", ":memory:", or postgres://...
	DialTimeout time.Duration
}

// Open connects to the run-history store. A postgres:// DSN goes through
// a pgx pool; anything else is treated as a SQLite path. The pool may be
// nil for SQLite.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*sql.DB, *pgxpool.Pool, Dialect, error) {
	if logger == nil {
		logger = slog.Default()
	}
	dsn := cfg.DSN
	if dsn == "" {
		dsn = ":memory:"
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		logger.Info("connecting to run store", "dialect", DialectPostgres)
		pc, err := pgxpool.ParseConfig(dsn)
		if err != nil {
			logger.Error("failed to parse dsn", "error", err)
			return nil, nil, "", err
		}
		pc.ConnConfig.RuntimeParams["application_name"] = "extract-document-data"

		dialCtx := ctx
		if cfg.DialTimeout > 0 {
			var cancel context.CancelFunc
			dialCtx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
			defer cancel()
		}
		pool, err := pgxpool.NewWithConfig(dialCtx, pc)
		if err != nil {
			logger.Error("failed to connect to run store", "error", err)
			return nil, nil, "", err
		}
		db := stdlib.OpenDBFromPool(pool)
		logger.Info("connected to run store", "dialect", DialectPostgres)
		return db, pool, DialectPostgres, nil
	}

	logger.Info("connecting to run store", "dialect", DialectSQLite, "dsn", dsn)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		logger.Error("failed to open sqlite run store", "error", err)
		return nil, nil, "", err
	}
	// SQLite handles one writer at a time.
	db.SetMaxOpenConns(1)
	return db, nil, DialectSQLite, nil
}

// Close closes the store connections gracefully.
func Close(db *sql.DB, pool *pgxpool.Pool, logger *slog.Logger) {
	if db != nil {
		if err := db.Close(); err != nil {
			logger.Error("failed to close run store", "error", err)
		}
	}
	if pool != nil {
		pool.Close()
	}
}

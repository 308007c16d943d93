package docstore

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-sqlite3"

	_ "embed"
)

//go:embed schema.sql
var schemaDefinition string

// Store is a SQLite-backed document store.
//
// It keeps two connection pools, a single-connection read-write pool and a
// larger read-only pool, which is the recommended way to run go-sqlite3 with
// WAL journaling and concurrent readers.
type Store struct {
	// ReadWrite is exposed so that the session store can share the database.
	ReadWrite *sql.DB
	readOnly  *sql.DB
	logger    *slog.Logger
}

//nolint:gochecknoglobals // guards one-time driver registration.
var registerOnce sync.Once

const driverName = "sqlite3docstore"

// registerDriver registers a sqlite3 driver that applies performance pragmas
// on every new connection.
func registerDriver() {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			if _, err := conn.Exec(
				"PRAGMA temp_store = memory;"+
					"PRAGMA mmap_size = 30000000000;", nil); err != nil {
				return fmt.Errorf("exec connection pragmas: %w", err)
			}
			return nil
		},
	})
}

// Open connects to the SQLite database at url and ensures the schema exists.
//
// Use ":memory:" for an ephemeral database; each Open of an in-memory store
// gets its own private database so parallel tests do not share state.
func Open(ctx context.Context, url string, logger *slog.Logger) (*Store, error) {
	// In-memory databases need shared cache so both pools see the same data.
	inMemoryConfig := ""
	if strings.Contains(url, ":memory:") {
		url = fmt.Sprintf("file:%s", rand.Text())
		inMemoryConfig = "mode=memory&cache=shared"
	}
	commonConfig := strings.Join([]string{
		"_journal_mode=wal",
		"_busy_timeout=5000",
		"_synchronous=normal",
		"_foreign_keys=on",
		"_loc=auto",
	}, "&")

	readWriteConfig := fmt.Sprintf("file:%s?mode=rwc&_txlock=immediate&%s&%s", url, commonConfig, inMemoryConfig)
	readConfig := fmt.Sprintf("file:%s?mode=ro&_txlock=deferred&_query_only=true&%s&%s",
		url, commonConfig, inMemoryConfig)

	registerOnce.Do(registerDriver)

	readWrite, err := sql.Open(driverName, readWriteConfig)
	if err != nil {
		return nil, fmt.Errorf("open read-write database: %w", err)
	}
	readWrite.SetMaxOpenConns(1)
	readWrite.SetMaxIdleConns(1)
	readWrite.SetConnMaxLifetime(time.Hour)
	readWrite.SetConnMaxIdleTime(time.Hour)

	// sql.DB is lazy so ping to make sure the database file is usable.
	if err = readWrite.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping read-write database: %w", err)
	}

	if _, err = readWrite.ExecContext(ctx, schemaDefinition); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	readOnly, err := sql.Open(driverName, readConfig)
	if err != nil {
		return nil, fmt.Errorf("open read-only database: %w", err)
	}
	const maxReadConns = 10
	readOnly.SetMaxOpenConns(maxReadConns)
	readOnly.SetMaxIdleConns(maxReadConns)
	readOnly.SetConnMaxLifetime(time.Hour)
	readOnly.SetConnMaxIdleTime(time.Hour)

	store := &Store{
		ReadWrite: readWrite,
		readOnly:  readOnly,
		logger:    logger,
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "opened document store", slog.String("url", url))

	go store.startOptimizer(ctx)

	return store, nil
}

// startOptimizer runs PRAGMA optimize once per hour as recommended for
// long-lived connections. See https://www.sqlite.org/pragma.html#pragma_optimize.
func (s *Store) startOptimizer(ctx context.Context) {
	if _, err := s.ReadWrite.ExecContext(ctx, "PRAGMA optimize = 0x10002;"); err != nil {
		// Cancellation is a clean shutdown, not a failure.
		if ctx.Err() != nil {
			return
		}
		s.logger.LogAttrs(ctx, slog.LevelError, "failed to initialise optimizer", slog.Any("error", err))
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Hour):
		}
		start := time.Now()
		if _, err := s.ReadWrite.ExecContext(ctx, "PRAGMA optimize;"); err != nil {
			if ctx.Err() != nil {
				return
			}
			s.logger.LogAttrs(ctx, slog.LevelError, "failed to optimize database", slog.Any("error", err))
			continue
		}
		s.logger.LogAttrs(ctx, slog.LevelInfo, "optimized database",
			slog.Duration("duration", time.Since(start)))
	}
}

// Close closes both connection pools.
func (s *Store) Close() error {
	return errors.Join(s.readOnly.Close(), s.ReadWrite.Close())
}

package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// DSN builds the go-sqlite3 data source name. Write transactions take the
// database lock at BEGIN so read-modify-write sequences are serialized.
func DSN(path string) string {
	params := url.Values{}
	params.Set("_foreign_keys", "on")
	params.Set("_journal_mode", "WAL")
	params.Set("_busy_timeout", "5000")
	params.Set("_txlock", "immediate")
	return "file:" + path + "?" + params.Encode()
}

// OpenDB opens the SQLite database and verifies the connection
func OpenDB(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", DSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection; the file may still be locked by a previous process
	pinger := retry.New[struct{}](retry.Config{
		MaxAttempts:   3,
		InitialDelay:  50 * time.Millisecond,
		BackoffPolicy: retry.BackoffExponential,
	})
	if _, err := pinger.Do(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, db.PingContext(ctx)
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// InitializeDatabase opens the database connection and runs migrations
func InitializeDatabase(ctx context.Context, path string, logger *zap.Logger) (*sql.DB, error) {
	db, err := OpenDB(ctx, path)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(db, logger); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Database initialized", zap.String("path", path))
	return db, nil
}

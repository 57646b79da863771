// Package ftsindex builds and queries the literal full-text index (spec §4.3):
// an embedded SQL database holding an FTS5 virtual table over literal
// objects, a vocabulary view, and a spellfix table for approximate matching.
package ftsindex

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/logging"
)

// DB wraps a SQLite connection holding the literal index.
type DB struct {
	conn   *sql.DB
	logger *logging.Logger
	path   string
}

// Open opens or creates the literal index database at path, initializing
// the schema on first use.
func Open(path string, logger *logging.Logger) (*DB, error) {
	existed := fileExists(path)

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open literal index: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA cache_size=-64000",
		"PRAGMA temp_store=MEMORY",
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			conn.Close()
			return nil, fmt.Errorf("set pragma %q: %w", p, err)
		}
	}

	db := &DB{conn: conn, logger: logger, path: path}

	if !existed {
		logger.Info("creating literal index", map[string]interface{}{"path": path})
	}
	if err := db.initializeSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initialize literal index schema: %w", err)
	}

	return db, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// Conn returns the underlying *sql.DB for callers that need raw access.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// WithTx runs fn inside a transaction, rolling back on error or panic.
func (db *DB) WithTx(fn func(*sql.Tx) error) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			db.logger.Error("rollback failed", map[string]interface{}{
				"error":          err.Error(),
				"rollback_error": rbErr.Error(),
			})
		}
		return err
	}

	return tx.Commit()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Package bloomtyper builds and queries per-class Bloom filters over
// rdf:type triples (spec §4.4): approximate set membership with a
// reproducible SHA-256-derived hash, loaded lazily so that only the
// filters actually consulted are deserialized.
package bloomtyper

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/logging"
)

// DefaultFalsePositiveRate is the recommended target rate from spec §4.4
// ("recommended ≤ 0.005").
const DefaultFalsePositiveRate = 0.005

// DB wraps the bloomtyper_index sqlite table (spec §6).
type DB struct {
	conn   *sql.DB
	logger *logging.Logger
}

// Open opens or creates the Bloom index database at path.
func Open(path string, logger *logging.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open bloomtyper index: %w", err)
	}
	if _, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS bloomtyper_index (
			predicate TEXT PRIMARY KEY,
			size INTEGER NOT NULL,
			bloom BLOB NOT NULL
		)
	`); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initialize bloomtyper schema: %w", err)
	}
	return &DB{conn: conn, logger: logger}, nil
}

// Close releases the underlying connection.
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

package rdf2vec

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	_ "modernc.org/sqlite"

	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/logging"
)

// DB is the companion store for trained RDF2Vec vectors: one row per
// subject URI, the vector encoded as a little-endian float32 blob (spec
// §4.5 step 7).
type DB struct {
	conn   *sql.DB
	logger *logging.Logger
}

// Open opens or creates the RDF2Vec vector store at path, tuned with the
// same pragmas as the other sqlite-backed indexes (internal/ftsindex.Open).
func Open(path string, logger *logging.Logger) (*DB, error) {
	fresh := !fileExists(path)

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open rdf2vec db: %w", err)
	}
	conn.SetMaxOpenConns(1)

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

	db := &DB{conn: conn, logger: logger}
	if err := db.ensureSchema(); err != nil {
		conn.Close()
		return nil, err
	}
	if fresh && logger != nil {
		logger.Info("created rdf2vec index", map[string]interface{}{"path": path})
	}
	return db, nil
}

func (db *DB) ensureSchema() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS rdf2vec_index (
			id  INTEGER PRIMARY KEY,
			uri TEXT NOT NULL,
			vector BLOB NOT NULL
		);
		CREATE UNIQUE INDEX IF NOT EXISTS rdf2vec_index_uri ON rdf2vec_index(uri);
	`)
	if err != nil {
		return fmt.Errorf("create rdf2vec schema: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn exposes the underlying *sql.DB for ad-hoc inspection and tests.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// encodeVector serializes a float32 vector as a little-endian blob.
func encodeVector(v []float32) []byte {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// decodeVector deserializes a little-endian float32 blob.
func decodeVector(buf []byte) []float32 {
	v := make([]float32, len(buf)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return v
}

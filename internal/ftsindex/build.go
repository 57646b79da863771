package ftsindex

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/literal"
	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/ntriples"
)

// Build consumes triples from r and inserts every literal-object triple
// into the literal index, committing once per distinct source file (spec
// §4.3: "Commit once per input file").
func (db *DB) Build(ctx context.Context, r *ntriples.Reader) (int, error) {
	var inserted int
	var currentOrigin string
	var tx *sql.Tx
	var stmt *sql.Stmt

	closeBatch := func() error {
		if stmt != nil {
			stmt.Close()
			stmt = nil
		}
		if tx != nil {
			err := tx.Commit()
			tx = nil
			return err
		}
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			closeBatch()
			return inserted, ctx.Err()
		default:
		}

		t, ok, err := r.Next()
		if err != nil {
			closeBatch()
			return inserted, fmt.Errorf("ntriples read: %w", err)
		}
		if !ok {
			break
		}

		parts := literal.Parse(t.Object)
		if !parts.Valid {
			continue
		}

		if t.Origin != currentOrigin {
			if err := closeBatch(); err != nil {
				return inserted, fmt.Errorf("commit literal index batch: %w", err)
			}
			tx, err = db.conn.BeginTx(ctx, nil)
			if err != nil {
				return inserted, fmt.Errorf("begin literal index batch: %w", err)
			}
			stmt, err = tx.PrepareContext(ctx, `
				INSERT INTO literal_index_content (subject, predicate, object, language, datatype)
				VALUES (?, ?, ?, ?, ?)
			`)
			if err != nil {
				return inserted, fmt.Errorf("prepare literal index insert: %w", err)
			}
			currentOrigin = t.Origin
		}

		if _, err := stmt.ExecContext(ctx, t.Subject, t.Predicate, parts.Value, nullable(parts.Language), nullable(parts.Datatype)); err != nil {
			return inserted, fmt.Errorf("insert literal row: %w", err)
		}
		inserted++
	}

	if err := closeBatch(); err != nil {
		return inserted, fmt.Errorf("commit final literal index batch: %w", err)
	}
	return inserted, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

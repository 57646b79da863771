package bloomtyper

import (
	"bytes"
	"context"
	"fmt"

	"github.com/bits-and-blooms/bloom/v3"

	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/ntriples"
)

// TypePredicate is the rdf:type predicate IRI streamed triples are grouped
// by during a build (spec §4.4).
const TypePredicate = "<http://www.w3.org/1999/02/22-rdf-syntax-ns#type>"

// Build streams triples from r, groups subjects by rdf:type object, and
// persists a fresh Bloom filter per class at the configured false-positive
// rate. A rebuild always produces a fresh set of rows: every existing row of
// bloomtyper_index is deleted in the same transaction before the new filters
// are inserted. It returns the number of classes written.
func (db *DB) Build(ctx context.Context, r *ntriples.Reader, fpRate float64) (int, error) {
	if fpRate <= 0 {
		fpRate = DefaultFalsePositiveRate
	}

	members := make(map[string]map[string]struct{})

	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		t, ok, err := r.Next()
		if err != nil {
			return 0, fmt.Errorf("ntriples read: %w", err)
		}
		if !ok {
			break
		}
		if t.Predicate != TypePredicate {
			continue
		}

		class := stripAngles(t.Object)
		set, exists := members[class]
		if !exists {
			set = make(map[string]struct{})
			members[class] = set
		}
		set[t.Subject] = struct{}{}
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin bloomtyper build: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM bloomtyper_index"); err != nil {
		return 0, fmt.Errorf("clear bloomtyper index: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO bloomtyper_index (predicate, size, bloom) VALUES (?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("prepare bloomtyper insert: %w", err)
	}
	defer stmt.Close()

	for class, subjects := range members {
		filter := bloom.NewWithEstimates(uint(len(subjects)), fpRate)
		for subject := range subjects {
			filter.Add(hashSubject(subject))
		}

		var buf bytes.Buffer
		if _, err := filter.WriteTo(&buf); err != nil {
			return 0, fmt.Errorf("serialize filter for %s: %w", class, err)
		}

		if _, err := stmt.ExecContext(ctx, class, len(subjects), buf.Bytes()); err != nil {
			return 0, fmt.Errorf("insert filter for %s: %w", class, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit bloomtyper build: %w", err)
	}

	return len(members), nil
}

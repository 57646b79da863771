package rdf2vec

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/ntriples"
)

// BuildConfig tunes the full RDF2Vec build pipeline (spec §4.5).
type BuildConfig struct {
	WalksPerSubject int
	WalkLength      int
	Embed           EmbedConfig
}

// DefaultBuildConfig returns the spec's defaults: 100 walks of length 15
// per subject, 100-dimensional vectors.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		WalksPerSubject: DefaultWalksPerSubject,
		WalkLength:      DefaultWalkLength,
		Embed:           DefaultEmbedConfig(),
	}
}

// Build runs the complete pipeline: construct the term graph from r,
// generate random walks from every subject, train word embeddings over the
// resulting sentences, and persist one vector per subject to db and to an
// in-memory ANN index. It returns the number of subjects indexed.
func Build(ctx context.Context, db *DB, r *ntriples.Reader, cfg BuildConfig) (*ANNIndex, int, error) {
	gr := NewGraph()

	for {
		select {
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		default:
		}

		t, ok, err := r.Next()
		if err != nil {
			return nil, 0, fmt.Errorf("ntriples read: %w", err)
		}
		if !ok {
			break
		}
		gr.AddEdge(stripIRI(t.Subject), stripIRI(t.Predicate), stripIRI(t.Object))
	}

	rng := rand.New(rand.NewSource(cfg.Embed.Seed))
	sentences := walkSentences(gr, cfg.WalksPerSubject, cfg.WalkLength, rng)
	vectors := trainEmbeddings(sentences, cfg.Embed)

	ann := NewANNIndex()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("begin rdf2vec build: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM rdf2vec_index"); err != nil {
		return nil, 0, fmt.Errorf("clear rdf2vec index: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO rdf2vec_index (uri, vector) VALUES (?, ?)")
	if err != nil {
		return nil, 0, fmt.Errorf("prepare rdf2vec insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for _, id := range gr.SubjectIDs() {
		uri := gr.Term(id)
		vec, ok := vectors.Vector(uri)
		if !ok {
			continue
		}
		if _, err := stmt.ExecContext(ctx, uri, encodeVector(vec)); err != nil {
			return nil, 0, fmt.Errorf("insert vector for %s: %w", uri, err)
		}
		ann.Add(uri, vec)
		count++
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("commit rdf2vec build: %w", err)
	}

	return ann, count, nil
}

// LoadANNIndex rebuilds an in-memory ANN index from every vector persisted
// in db, for serving search without rerunning a build.
func LoadANNIndex(ctx context.Context, db *DB) (*ANNIndex, error) {
	rows, err := db.conn.QueryContext(ctx, "SELECT uri, vector FROM rdf2vec_index")
	if err != nil {
		return nil, fmt.Errorf("load rdf2vec vectors: %w", err)
	}
	defer rows.Close()

	ann := NewANNIndex()
	for rows.Next() {
		var uri string
		var blob []byte
		if err := rows.Scan(&uri, &blob); err != nil {
			return nil, fmt.Errorf("scan rdf2vec vector: %w", err)
		}
		ann.Add(uri, decodeVector(blob))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ann, nil
}

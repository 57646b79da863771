package ftsindex

import (
	"context"
	"fmt"
	"strings"

	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/literal"
	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/ntriples"
	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/resolve"
)

const (
	defaultLimit  = 999
	maxResultRune = 999
)

// Row is one match returned by Search before it is shaped into resolver
// binding tuples.
type Row struct {
	Subject  string
	Object   string
	Language string
	Rank     float64
}

// Search implements the FTS resolver contract (spec §4.3). It splits the
// query literal into parts, issues a ranked MATCH against the object
// column (optionally filtered by language), and retries with a quoted
// phrase if the engine rejects the raw expression as a column operator.
// Any other engine error is logged and yields an empty result.
func (db *DB) Search(ctx context.Context, queryLiteral string, useLanguage bool, limit int) ([]Row, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	parts := literal.Parse(queryLiteral)
	value := parts.Value
	if !parts.Valid {
		value = queryLiteral
	}

	rows, err := db.matchQuery(ctx, value, parts.Language, useLanguage, limit)
	if err != nil {
		if isNoSuchColumnError(err) {
			phrase := fmt.Sprintf(`"%s"`, strings.ReplaceAll(value, `"`, `""`))
			rows, err = db.matchQuery(ctx, phrase, parts.Language, useLanguage, limit)
			if err != nil {
				db.logger.Error("fts match failed", map[string]interface{}{"query": phrase, "error": err.Error()})
				return nil, nil //nolint:nilerr // engine error after retry degrades to empty per spec §7
			}
			return rows, nil
		}
		db.logger.Error("fts match failed", map[string]interface{}{"query": value, "error": err.Error()})
		return nil, nil //nolint:nilerr // non-phrase engine error degrades to empty per spec §7
	}
	return rows, nil
}

func (db *DB) matchQuery(ctx context.Context, matchExpr, language string, useLanguage bool, limit int) ([]Row, error) {
	query := `
		SELECT c.subject, c.object, c.language, bm25(literal_index) AS rank
		FROM literal_index f
		JOIN literal_index_content c ON f.rowid = c.rowid
		WHERE literal_index MATCH ?
	`
	args := []interface{}{matchExpr}
	if useLanguage {
		query += " AND c.language = ?"
		args = append(args, language)
	}
	query += " ORDER BY rank LIMIT ?"
	args = append(args, limit)

	sqlRows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer sqlRows.Close()

	var out []Row
	for sqlRows.Next() {
		var r Row
		var lang *string
		if err := sqlRows.Scan(&r.Subject, &r.Object, &lang, &r.Rank); err != nil {
			return nil, err
		}
		if lang != nil {
			r.Language = *lang
		}
		out = append(out, r)
	}
	return out, sqlRows.Err()
}

func isNoSuchColumnError(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "no such column")
}

// FTSResolver adapts an *ftsindex.DB into the shared resolve.Resolver
// contract, implementing the search procedure of spec §4.3 end to end.
type FTSResolver struct {
	DB          *DB
	UseLanguage bool
	Limit       int
}

// Resolve runs the search and shapes results into (subject, literal, rank)
// binding tuples, per spec §4.3 step 3-4.
func (r *FTSResolver) Resolve(ctx context.Context, varName, object string) (resolve.Result, error) {
	rows, err := r.DB.Search(ctx, object, r.UseLanguage, r.Limit)
	if err != nil {
		return resolve.Result{}, err
	}

	vars := []string{varName, varName + "Literal", varName + "Rank"}
	result := resolve.Result{Vars: vars}

	for _, row := range rows {
		decoded := ntriples.DecodeUnicodeEscapes(row.Object)
		decoded = truncateWithEllipsis(decoded, maxResultRune)

		var literalTerm string
		if row.Language != "" {
			literalTerm = literal.Render(decoded, row.Language, "")
		} else {
			literalTerm = literal.Render(decoded, "", "")
		}

		rankTerm := literal.Render(fmt.Sprintf("%v", row.Rank), "", "xsd:decimal")
		result.Results = append(result.Results, []string{row.Subject, literalTerm, rankTerm})
	}

	return result, nil
}

func truncateWithEllipsis(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}

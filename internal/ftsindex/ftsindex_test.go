package ftsindex

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/logging"
	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/ntriples"
)

func testLogger() *logging.Logger {
	return logging.NewLogger(logging.Config{Level: logging.ErrorLevel})
}

func TestBuildAndSearch(t *testing.T) {
	dir := t.TempDir()
	ntPath := filepath.Join(dir, "fixture.nt")
	writeFixture(t, ntPath, ""+
		`<http://ex/CheeseyPizza> <https://ex/fts> "PizzaComQueijo"@pt .`+"\n")

	db, err := Open(filepath.Join(dir, "fts.sqlite"), testLogger())
	require.NoError(t, err)
	defer db.Close()

	r := ntriples.NewReader([]string{ntPath}, testLogger())
	n, err := db.Build(context.Background(), r)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	rows, err := db.Search(context.Background(), `"PizzaComQueijo"`, false, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "<http://ex/CheeseyPizza>", rows[0].Subject)
	require.Equal(t, "pt", rows[0].Language)
}

func TestResolverEmptyOnLanguageMismatch(t *testing.T) {
	dir := t.TempDir()
	ntPath := filepath.Join(dir, "fixture.nt")
	writeFixture(t, ntPath, `<http://ex/CheeseyPizza> <https://ex/fts_language> "PizzaComQueijo"@pt .`+"\n")

	db, err := Open(filepath.Join(dir, "fts.sqlite"), testLogger())
	require.NoError(t, err)
	defer db.Close()

	r := ntriples.NewReader([]string{ntPath}, testLogger())
	_, err = db.Build(context.Background(), r)
	require.NoError(t, err)

	resolver := &FTSResolver{DB: db, UseLanguage: true}
	result, err := resolver.Resolve(context.Background(), "var", `"PizzaComQueijo"@gr`)
	require.NoError(t, err)
	require.Empty(t, result.Results)
	require.Equal(t, []string{"var", "varLiteral", "varRank"}, result.Vars)
}

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

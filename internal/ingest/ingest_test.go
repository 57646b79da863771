package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/config"
	fizzyerrors "github.com/ISE-FIZKarlsruhe/fizzysearch/internal/errors"
	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/logging"
)

func testLogger() *logging.Logger {
	return logging.NewLogger(logging.Config{Level: logging.ErrorLevel})
}

func TestRunRejectsWhenNoTargetConfigured(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{InputFilepath: dir}

	_, err := Run(context.Background(), cfg, testLogger())
	require.Error(t, err)
	require.True(t, fizzyerrors.Is(err, fizzyerrors.ConfigError))
}

func TestRunBuildsEnabledIndexes(t *testing.T) {
	dir := t.TempDir()
	ntPath := filepath.Join(dir, "fixture.nt")
	require.NoError(t, os.WriteFile(ntPath, []byte(
		`<http://ex/Veneziana> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://ex/Pizza> .`+"\n"+
			`<http://ex/Veneziana> <http://ex/hasName> "Veneziana"@pt .`+"\n",
	), 0o644))

	cfg := &config.Config{
		InputFilepath:               dir,
		FTSSqlitePath:               filepath.Join(dir, "fts.sqlite"),
		BloomtyperIndexPath:         filepath.Join(dir, "bloom.sqlite"),
		BloomtyperFalsePositiveRate: 0.005,
	}

	report, err := Run(context.Background(), cfg, testLogger())
	require.NoError(t, err)
	require.Equal(t, 1, report.FilesFound)
	require.Equal(t, 1, report.FTSRows)
	require.Equal(t, 1, report.BloomtyperCount)
	require.Equal(t, 0, report.RDF2VecCount)
}

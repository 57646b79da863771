package ingest

import (
	"context"

	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/config"
	fizzyerrors "github.com/ISE-FIZKarlsruhe/fizzysearch/internal/errors"
	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/ftsindex"
	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/logging"
	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/ntriples"
)

func buildFTSIndex(ctx context.Context, cfg *config.Config, paths []string, logger *logging.Logger) (int, error) {
	db, err := ftsindex.Open(cfg.FTSSqlitePath, logger)
	if err != nil {
		return 0, fizzyerrors.Wrap(fizzyerrors.StorageEngine, "open fts index", err)
	}
	defer db.Close()

	r := ntriples.NewReader(paths, logger)
	defer r.Close()

	n, err := db.Build(ctx, r)
	if err != nil {
		return 0, fizzyerrors.Wrap(fizzyerrors.StorageEngine, "build fts index", err)
	}
	return n, nil
}

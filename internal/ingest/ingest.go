// Package ingest is the indexing driver: it discovers N-Triples input and
// dispatches to whichever index builders are enabled (spec §4.7
// "Ingestion driver", grounded on the original __main__.py entry point).
package ingest

import (
	"context"

	"github.com/google/uuid"

	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/bloomtyper"
	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/config"
	fizzyerrors "github.com/ISE-FIZKarlsruhe/fizzysearch/internal/errors"
	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/logging"
	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/ntriples"
	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/rdf2vec"
)

// Report summarizes one run of the ingestion driver. RunID correlates
// every log line this run emitted, since a single invocation can build up
// to three indexes whose builders each log independently.
type Report struct {
	RunID           string
	FilesFound      int
	FTSRows         int
	BloomtyperCount int
	RDF2VecCount    int
}

// Run walks cfg.InputFilepath for *.nt/*.nt.gz files and builds every
// index whose target path is configured. It returns a fizzyerrors
// ConfigError if none of the three target paths is set (spec §6).
func Run(ctx context.Context, cfg *config.Config, logger *logging.Logger) (Report, error) {
	runID := uuid.NewString()
	logger = logger.With(map[string]interface{}{"run_id": runID})

	if !cfg.AnyIndexTargetSet() {
		return Report{RunID: runID}, fizzyerrors.New(fizzyerrors.ConfigError,
			"set FTS_SQLITE_PATH, BLOOMTYPER_INDEX_PATH, or RDF2VEC_INDEX_PATH to build an index")
	}

	paths, err := ntriples.DiscoverFiles(cfg.InputFilepath)
	if err != nil {
		return Report{RunID: runID}, fizzyerrors.Wrap(fizzyerrors.InputShape, "scan input directory", err)
	}

	report := Report{RunID: runID, FilesFound: len(paths)}
	if len(paths) == 0 {
		logger.Warn("no n-triple files found in input directory", map[string]interface{}{"path": cfg.InputFilepath})
		return report, nil
	}
	logger.Info("found n-triple files", map[string]interface{}{"count": len(paths)})

	if cfg.FTSSqlitePath != "" {
		n, err := buildFTS(ctx, cfg, paths, logger)
		if err != nil {
			return report, err
		}
		report.FTSRows = n
	}

	if cfg.BloomtyperIndexPath != "" {
		n, err := buildBloomtyper(ctx, cfg, paths, logger)
		if err != nil {
			return report, err
		}
		report.BloomtyperCount = n
	}

	if cfg.RDF2VecIndexPath != "" {
		n, err := buildRDF2Vec(ctx, cfg, paths, logger)
		if err != nil {
			return report, err
		}
		report.RDF2VecCount = n
	}

	return report, nil
}

func buildBloomtyper(ctx context.Context, cfg *config.Config, paths []string, logger *logging.Logger) (int, error) {
	db, err := bloomtyper.Open(cfg.BloomtyperIndexPath, logger)
	if err != nil {
		return 0, fizzyerrors.Wrap(fizzyerrors.StorageEngine, "open bloomtyper index", err)
	}
	defer db.Close()

	r := ntriples.NewReader(paths, logger)
	defer r.Close()

	n, err := db.Build(ctx, r, cfg.BloomtyperFalsePositiveRate)
	if err != nil {
		return 0, fizzyerrors.Wrap(fizzyerrors.StorageEngine, "build bloomtyper index", err)
	}
	return n, nil
}

func buildRDF2Vec(ctx context.Context, cfg *config.Config, paths []string, logger *logging.Logger) (int, error) {
	db, err := rdf2vec.Open(cfg.RDF2VecIndexPath+".db", logger)
	if err != nil {
		return 0, fizzyerrors.Wrap(fizzyerrors.StorageEngine, "open rdf2vec index", err)
	}
	defer db.Close()

	r := ntriples.NewReader(paths, logger)
	defer r.Close()

	buildCfg := rdf2vec.DefaultBuildConfig()
	buildCfg.WalksPerSubject = cfg.RDF2VecWalksPerSubject
	buildCfg.WalkLength = cfg.RDF2VecWalkLength
	buildCfg.Embed.VectorSize = cfg.RDF2VecVectorSize

	_, n, err := rdf2vec.Build(ctx, db, r, buildCfg)
	if err != nil {
		return 0, fizzyerrors.Wrap(fizzyerrors.StorageEngine, "build rdf2vec index", err)
	}
	return n, nil
}

// buildFTS delegates to buildFTSIndex in fts.go, which keeps the ftsindex
// import grouped with its own helpers.
func buildFTS(ctx context.Context, cfg *config.Config, paths []string, logger *logging.Logger) (int, error) {
	return buildFTSIndex(ctx, cfg, paths, logger)
}

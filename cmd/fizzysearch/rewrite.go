package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/bloomtyper"
	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/ftsindex"
	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/logging"
	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/rdf2vec"
	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/resolve"
	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/rewriter"
)

var (
	rewriteQuery string

	rewriteFTSPath      string
	rewriteFTSPredicate string
	rewriteFTSUseLang   bool
	rewriteFTSLimit     int

	rewriteBloomtyperPath      string
	rewriteBloomtyperPredicate string

	rewriteRDF2VecPath      string
	rewriteRDF2VecPredicate string
	rewriteRDF2VecLimit     int
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Rewrite a SPARQL query's virtual predicates into VALUES blocks",
	Long: `Reads a SPARQL query (from --query, or stdin if --query is absent) and
rewrites every matched virtual-predicate triple pattern into a VALUES
block, using whichever resolvers have their index path flag set.`,
	RunE: runRewrite,
}

func init() {
	rewriteCmd.Flags().StringVar(&rewriteQuery, "query", "", "query text (reads stdin if empty)")

	rewriteCmd.Flags().StringVar(&rewriteFTSPath, "fts-db", "", "path to an fts sqlite index")
	rewriteCmd.Flags().StringVar(&rewriteFTSPredicate, "fts-predicate", "fizzy:fts", "predicate token the fts resolver is registered under")
	rewriteCmd.Flags().BoolVar(&rewriteFTSUseLang, "fts-use-language", false, "filter fts matches by the literal's language tag")
	rewriteCmd.Flags().IntVar(&rewriteFTSLimit, "fts-limit", 0, "max fts matches (0 = resolver default)")

	rewriteCmd.Flags().StringVar(&rewriteBloomtyperPath, "bloomtyper-db", "", "path to a bloomtyper sqlite index")
	rewriteCmd.Flags().StringVar(&rewriteBloomtyperPredicate, "bloomtyper-predicate", "fizzy:bloomtyper", "predicate token the bloomtyper resolver is registered under")

	rewriteCmd.Flags().StringVar(&rewriteRDF2VecPath, "rdf2vec-db", "", "path to an rdf2vec sqlite companion store")
	rewriteCmd.Flags().StringVar(&rewriteRDF2VecPredicate, "rdf2vec-predicate", "fizzy:rdf2vec", "predicate token the rdf2vec resolver is registered under")
	rewriteCmd.Flags().IntVar(&rewriteRDF2VecLimit, "rdf2vec-limit", 0, "max rdf2vec neighbours (0 = resolver default)")

	rootCmd.AddCommand(rewriteCmd)
}

func runRewrite(cmd *cobra.Command, args []string) error {
	query := rewriteQuery
	if query == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read query from stdin: %w", err)
		}
		query = string(data)
	}

	logger := logging.NewLogger(logging.Config{Format: logging.HumanFormat, Level: logging.WarnLevel})
	registry := resolve.Registry{}

	if rewriteFTSPath != "" {
		db, err := ftsindex.Open(rewriteFTSPath, logger)
		if err != nil {
			return fmt.Errorf("open fts index: %w", err)
		}
		defer db.Close()
		registry[rewriteFTSPredicate] = &ftsindex.FTSResolver{DB: db, UseLanguage: rewriteFTSUseLang, Limit: rewriteFTSLimit}
	}

	if rewriteBloomtyperPath != "" {
		db, err := bloomtyper.Open(rewriteBloomtyperPath, logger)
		if err != nil {
			return fmt.Errorf("open bloomtyper index: %w", err)
		}
		defer db.Close()
		checker, err := bloomtyper.NewChecker(cmd.Context(), db)
		if err != nil {
			return fmt.Errorf("load bloomtyper classes: %w", err)
		}
		registry[rewriteBloomtyperPredicate] = &bloomtyper.Resolver{Checker: checker}
	}

	if rewriteRDF2VecPath != "" {
		db, err := rdf2vec.Open(rewriteRDF2VecPath, logger)
		if err != nil {
			return fmt.Errorf("open rdf2vec index: %w", err)
		}
		defer db.Close()
		index, err := rdf2vec.LoadANNIndex(cmd.Context(), db)
		if err != nil {
			return fmt.Errorf("load rdf2vec vectors: %w", err)
		}
		registry[rewriteRDF2VecPredicate] = &rdf2vec.Resolver{Index: index, Limit: rewriteRDF2VecLimit}
	}

	rw := rewriter.New()
	result, err := rw.Rewrite(context.Background(), query, registry)
	if err != nil {
		return fmt.Errorf("rewrite query: %w", err)
	}

	fmt.Println(result.Rewritten)
	return nil
}

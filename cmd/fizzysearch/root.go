package main

import (
	"github.com/spf13/cobra"

	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "fizzysearch",
	Short: "fizzysearch - virtual predicate rewriting for SPARQL",
	Long: `fizzysearch rewrites SPARQL queries that reference virtual predicates
(full-text search, approximate type membership, embedding similarity) into
plain VALUES blocks a triplestore can execute directly.

It ships two surfaces: an ingestion driver that builds the three on-disk
indexes from N-Triples (fts, bloomtyper, rdf2vec), and a rewrite command
that applies them to a query at read time.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("fizzysearch version {{.Version}}\n")
}

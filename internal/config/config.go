// Package config loads fizzysearch's environment-variable configuration
// (spec §6 "CLI surface (driver)"), optionally layered under a TOML file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the environment-variable configuration read by the ingest
// command. The rewrite command does not read Config; it takes its index
// paths, predicates and limits from its own flags.
type Config struct {
	InputFilepath       string
	FTSSqlitePath       string
	BloomtyperIndexPath string
	RDF2VecIndexPath    string

	FTSUseLanguage bool
	FTSLimit       int

	BloomtyperFalsePositiveRate float64

	RDF2VecWalksPerSubject int
	RDF2VecWalkLength      int
	RDF2VecVectorSize      int
	RDF2VecSearchLimit     int

	LogLevel  string
	LogFormat string
}

// configFileEnvVar names the environment variable that points at an
// optional TOML config file. Values there are overridden by the matching
// environment variable, which is itself overridden by an explicit Set.
const configFileEnvVar = "CONFIG_FILE"

// Load reads configuration from an optional TOML file (CONFIG_FILE) and
// the environment, applying the defaults spec §4.3-§4.5 document for each
// builder's tunables. Environment variables always win over the file.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("input_filepath", ".")
	v.SetDefault("fts_use_language", false)
	v.SetDefault("fts_limit", 999)
	v.SetDefault("bloomtyper_false_positive_rate", 0.005)
	v.SetDefault("rdf2vec_walks_per_subject", 100)
	v.SetDefault("rdf2vec_walk_length", 15)
	v.SetDefault("rdf2vec_vector_size", 100)
	v.SetDefault("rdf2vec_search_limit", 20)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "human")

	if path := os.Getenv(configFileEnvVar); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{
		"input_filepath", "fts_sqlite_path", "bloomtyper_index_path", "rdf2vec_index_path",
		"fts_use_language", "fts_limit", "bloomtyper_false_positive_rate",
		"rdf2vec_walks_per_subject", "rdf2vec_walk_length", "rdf2vec_vector_size", "rdf2vec_search_limit",
		"log_level", "log_format",
	} {
		_ = v.BindEnv(key)
	}

	return &Config{
		InputFilepath:       v.GetString("input_filepath"),
		FTSSqlitePath:       v.GetString("fts_sqlite_path"),
		BloomtyperIndexPath: v.GetString("bloomtyper_index_path"),
		RDF2VecIndexPath:    v.GetString("rdf2vec_index_path"),

		FTSUseLanguage: v.GetBool("fts_use_language"),
		FTSLimit:       v.GetInt("fts_limit"),

		BloomtyperFalsePositiveRate: v.GetFloat64("bloomtyper_false_positive_rate"),

		RDF2VecWalksPerSubject: v.GetInt("rdf2vec_walks_per_subject"),
		RDF2VecWalkLength:      v.GetInt("rdf2vec_walk_length"),
		RDF2VecVectorSize:      v.GetInt("rdf2vec_vector_size"),
		RDF2VecSearchLimit:     v.GetInt("rdf2vec_search_limit"),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
	}, nil
}

// AnyIndexTargetSet reports whether at least one of the three build
// targets was requested (spec §6: "At least one of the three target
// paths must be set; exit 1 otherwise").
func (c *Config) AnyIndexTargetSet() bool {
	return c.FTSSqlitePath != "" || c.BloomtyperIndexPath != "" || c.RDF2VecIndexPath != ""
}

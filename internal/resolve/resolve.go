// Package resolve defines the resolver capability contract shared by the
// rewriter and its three pluggable resolvers (spec §4, §6: "Resolver
// contract"). It exists as its own package so ftsindex, bloomtyper and
// rdf2vec can implement Resolver without importing the rewriter.
package resolve

import "context"

// Result is what a resolver returns for one matched pattern: a list of
// binding tuples, each the same length as Vars, plus the ordered variable
// names the tuples bind.
type Result struct {
	Results [][]string
	Vars    []string
}

// Resolver expands a virtual-predicate pattern's object into binding
// tuples for the pattern's subject variable. varName is the variable token
// as it appeared in the query, including its leading '?' or '$'; object is
// the pattern's object term exactly as it appeared in the query (a quoted
// literal or an IRI in <...>).
type Resolver interface {
	Resolve(ctx context.Context, varName, object string) (Result, error)
}

// Registry maps a bare predicate IRI or prefixed name (spec §4.6:
// "Prefixed names") to the resolver that handles it. It is constructed by
// the caller and passed into each Rewrite call rather than held globally
// (spec §3: "Predicate registry... is passed into each rewrite call, not
// held globally").
type Registry map[string]Resolver

package rewriter

import (
	"context"
	"strings"

	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/resolve"
)

// Result is the structured output of a rewrite, spec §4.6 step 8 / §6
// "Rewriter output".
type Result struct {
	Query     string
	Rewritten string
	Comments  []string
	QueryType string // one of select|construct|ask|describe, or "" if none found
}

var queryTypeKeywords = []string{"select", "construct", "ask", "describe"}

// Rewriter parses and rewrites SPARQL queries against a predicate
// registry. Construction is cheap (no grammar state to load, unlike the
// source's module-level parser handle) but the type mirrors the source's
// "load once, share read-only" shape per the dependency-injection design
// note.
type Rewriter struct{}

// New returns a ready-to-use Rewriter.
func New() *Rewriter {
	return &Rewriter{}
}

// Rewrite parses query, finds triple patterns whose predicate is a key of
// registry, and splices in VALUES blocks built from each resolver's
// output. The registry is passed per call, never held by the Rewriter
// (spec §3 "Predicate registry ... passed into each rewrite call, not
// held globally").
func (rw *Rewriter) Rewrite(ctx context.Context, query string, registry resolve.Registry) (Result, error) {
	result := Result{Query: query, Rewritten: query}

	tokens := tokenize(query)
	result.QueryType = classifyQueryType(tokens)
	result.Comments = collectComments(tokens)

	matches := findMatches(tokens, func(bare string) bool {
		_, ok := registry[bare]
		return ok
	})
	if len(matches) == 0 {
		return result, nil
	}

	var b strings.Builder
	i := 0
	for _, m := range matches {
		if m.start < i {
			continue // defensive: matches are expected non-overlapping (spec §4.6)
		}
		b.WriteString(query[i:m.start])

		resolver := registry[m.predicate]
		var values resolve.Result
		if resolver != nil {
			r, err := resolver.Resolve(ctx, m.varName, m.object)
			if err == nil {
				values = r
			}
			// Resolver errors degrade to an empty result (spec §7:
			// "treated as empty results by the rewriter").
		}
		b.WriteString(renderValues(values))
		i = m.end
		if i < len(query) && query[i] == ' ' {
			// A single space right after the match's end (the dot when
			// present, otherwise the object) is part of the same "tss"
			// token boundary in the reference grammar and is absorbed
			// along with it.
			i++
		}
	}
	b.WriteString(query[i:])

	result.Rewritten = b.String()
	return result, nil
}

// classifyQueryType looks for the first select/construct/ask/describe
// keyword in the token stream (spec §4.6 step 2).
func classifyQueryType(tokens []token) string {
	for _, tok := range tokens {
		if tok.kind != tokWord {
			continue
		}
		lower := strings.ToLower(tok.text)
		for _, kw := range queryTypeKeywords {
			if lower == kw {
				return kw
			}
		}
	}
	return ""
}

// collectComments extracts every comment token, stripping the leading '#'
// and surrounding spaces (spec §4.6 step 3).
func collectComments(tokens []token) []string {
	var comments []string
	for _, tok := range tokens {
		if tok.kind != tokComment {
			continue
		}
		comments = append(comments, strings.Trim(strings.TrimPrefix(tok.text, "#"), " "))
	}
	return comments
}

package rdf2vec

import (
	"context"
	"fmt"

	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/resolve"
)

// Resolver adapts an ANN index into the shared resolve.Resolver contract:
// the pattern's object is a subject URI already present in the index, and
// the rewriter's variable is bound to its approximate nearest neighbours by
// embedding distance (spec §4.5, "similarity resolver").
type Resolver struct {
	Index *ANNIndex
	Limit int
}

// DefaultLimit is used when Resolver.Limit is unset.
const DefaultLimit = 20

// Resolve looks up object's trained vector and returns its Limit nearest
// neighbours, nearest first. The query vector's own node is always a
// candidate, so a limit of 1 against a freshly built index returns object
// itself at distance 0 (spec §8 self-hit invariant).
func (r *Resolver) Resolve(ctx context.Context, varName, object string) (resolve.Result, error) {
	limit := r.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	uri := stripIRI(object)
	self, ok := r.Index.Vector(uri)
	if !ok {
		return resolve.Result{Vars: []string{varName, varName + "Score"}}, nil
	}

	neighbors := r.Index.Search(self, limit)

	result := resolve.Result{Vars: []string{varName, varName + "Score"}}
	for _, n := range neighbors {
		result.Results = append(result.Results, []string{"<" + n.URI + ">", formatDistance(n.Distance)})
	}
	return result, nil
}

func formatDistance(d float32) string {
	return fmt.Sprintf(`"%g"^^xsd:decimal`, d)
}

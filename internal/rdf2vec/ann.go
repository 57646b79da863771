package rdf2vec

import (
	"github.com/coder/hnsw"
)

// ANNIndex wraps an in-memory hnsw graph keyed by subject URI, giving
// approximate cosine-nearest-neighbour search over trained vectors (spec
// §4.5 step 6, DOMAIN STACK: github.com/coder/hnsw).
type ANNIndex struct {
	g       *hnsw.Graph[string]
	vectors map[string][]float32
}

// NewANNIndex constructs an empty ANN index configured for cosine distance.
func NewANNIndex() *ANNIndex {
	g := hnsw.NewGraph[string]()
	g.Distance = hnsw.CosineDistance
	return &ANNIndex{g: g, vectors: make(map[string][]float32)}
}

// Add inserts or replaces the vector for uri.
func (a *ANNIndex) Add(uri string, vector []float32) {
	a.g.Add(hnsw.Node[string]{Key: uri, Value: vector})
	a.vectors[uri] = vector
}

// Vector returns the stored vector for uri, and whether uri is indexed.
func (a *ANNIndex) Vector(uri string) ([]float32, bool) {
	v, ok := a.vectors[uri]
	return v, ok
}

// Neighbor is a single nearest-neighbour result.
type Neighbor struct {
	URI      string
	Distance float32
}

// Search returns the k nearest neighbours of query by cosine distance,
// nearest first.
func (a *ANNIndex) Search(query []float32, k int) []Neighbor {
	hits := a.g.Search(query, k)
	out := make([]Neighbor, len(hits))
	for i, hit := range hits {
		out[i] = Neighbor{
			URI:      hit.Key,
			Distance: hnsw.CosineDistance(query, hit.Value),
		}
	}
	return out
}

// Len returns the number of vectors held by the index.
func (a *ANNIndex) Len() int {
	return a.g.Len()
}

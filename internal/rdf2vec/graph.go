package rdf2vec

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// edge is a directed subject->object edge labelled with the predicate that
// produced it. gonum's simple.DirectedGraph only models bare edges, so a
// custom graph.Edge carries the predicate hash alongside (grounded on the
// node/edge wrapper pattern used for typed graphs in the RDF graph-builder
// reference).
type edge struct {
	f, t          graph.Node
	predicateHash uint64
}

func (e edge) From() graph.Node         { return e.f }
func (e edge) To() graph.Node           { return e.t }
func (e edge) ReversedEdge() graph.Edge { return edge{f: e.t, t: e.f, predicateHash: e.predicateHash} }

// Graph is the random-walk substrate built from a stream of triples: terms
// become dense integer nodes, and each distinct subject-object pair becomes
// one directed edge from subject to object, labelled with the predicate of
// the first triple seen for that pair (spec §4.5 step 2).
type Graph struct {
	g        *simple.DirectedGraph
	term     map[int64]string
	nodeOf   map[uint64]int64
	subjects map[int64]struct{}
}

// NewGraph returns an empty graph ready to accept edges.
func NewGraph() *Graph {
	return &Graph{
		g:        simple.NewDirectedGraph(),
		term:     make(map[int64]string),
		nodeOf:   make(map[uint64]int64),
		subjects: make(map[int64]struct{}),
	}
}

// nodeFor returns the dense node id for term, allocating one on first sight.
// IDs are assigned in first-seen order, matching the teacher's convention of
// deriving dense integer identifiers from a first-seen map rather than
// reusing a hash directly as a graph index.
func (gr *Graph) nodeFor(term string) int64 {
	hash := hashTerm(term)
	if id, ok := gr.nodeOf[hash]; ok {
		return id
	}
	n := gr.g.NewNode()
	gr.g.AddNode(n)
	gr.nodeOf[hash] = n.ID()
	gr.term[n.ID()] = term
	return n.ID()
}

// AddEdge records subject -> object via predicate, allocating graph nodes
// for subject and object as needed. subject and object are the raw terms
// (IRIs already stripped of <>, literals kept verbatim).
func (gr *Graph) AddEdge(subject, predicate, object string) {
	s := gr.nodeFor(subject)
	o := gr.nodeFor(object)
	gr.subjects[s] = struct{}{}

	if gr.g.HasEdgeFromTo(s, o) {
		return
	}
	gr.g.SetEdge(edge{f: gr.g.Node(s), t: gr.g.Node(o), predicateHash: hashTerm(predicate)})
}

// Term returns the term a dense node id was allocated for.
func (gr *Graph) Term(id int64) string {
	return gr.term[id]
}

// HasNode reports whether term has been seen at least once.
func (gr *Graph) HasNode(term string) (int64, bool) {
	id, ok := gr.nodeOf[hashTerm(term)]
	return id, ok
}

// Neighbors returns the outgoing neighbours of a node in an order stable
// across calls (gonum node iterators are not ordered, so the slice is
// sorted on return).
func (gr *Graph) Neighbors(id int64) []int64 {
	it := gr.g.From(id)
	var out []int64
	for it.Next() {
		out = append(out, it.Node().ID())
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SubjectIDs returns the dense ids of every node that appeared as a triple
// subject at least once, the walk starting points for spec §4.5 step 3.
func (gr *Graph) SubjectIDs() []int64 {
	ids := make([]int64, 0, len(gr.subjects))
	for id := range gr.subjects {
		ids = append(ids, id)
	}
	return ids
}

// NodeCount returns the number of distinct terms seen.
func (gr *Graph) NodeCount() int {
	return len(gr.term)
}

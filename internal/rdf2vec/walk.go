package rdf2vec

import (
	"math/rand"
	"strconv"
	"strings"
)

const (
	// DefaultWalksPerSubject is the number of random walks generated per
	// subject node (spec §4.5 step 3).
	DefaultWalksPerSubject = 100
	// DefaultWalkLength is the number of node hops per walk, including the
	// starting subject (spec §4.5 step 3).
	DefaultWalkLength = 15
)

// walkSentences generates numWalks random walks of up to walkLength node
// hops from every subject in gr, rendering each walk as a token sentence
// suitable for the embedding trainer. Walks that hit a dead end (a node
// with no outgoing edges) stop early rather than padding; duplicate walks
// from the same subject collapse to one sentence, matching the "distinct
// walks" wording of spec §4.5 step 4.
func walkSentences(gr *Graph, numWalks, walkLength int, rng *rand.Rand) [][]string {
	var sentences [][]string
	seen := make(map[string]struct{})

	for _, subject := range gr.SubjectIDs() {
		for i := 0; i < numWalks; i++ {
			ids := randomWalk(gr, subject, walkLength, rng)
			key := joinIDs(ids)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			tokens := make([]string, len(ids))
			for i, id := range ids {
				tokens[i] = gr.Term(id)
			}
			sentences = append(sentences, tokens)
		}
	}
	return sentences
}

func randomWalk(gr *Graph, start int64, walkLength int, rng *rand.Rand) []int64 {
	walk := make([]int64, 0, walkLength)
	walk = append(walk, start)
	cur := start

	for len(walk) < walkLength {
		neighbors := gr.Neighbors(cur)
		if len(neighbors) == 0 {
			break
		}
		cur = neighbors[rng.Intn(len(neighbors))]
		walk = append(walk, cur)
	}
	return walk
}

func joinIDs(ids []int64) string {
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(id, 10))
	}
	return b.String()
}

package rdf2vec

import "github.com/cespare/xxhash/v2"

// hashTerm hashes a graph term (a stripped IRI or a literal kept verbatim)
// with a fast 64-bit non-cryptographic hash (spec §4.5 step 1).
func hashTerm(term string) uint64 {
	return xxhash.Sum64String(term)
}

// stripIRI removes the enclosing <...> from an IRI term. Literal objects
// are passed through unchanged, matching spec §4.5 step 1: "stripping <>
// from IRIs (literal objects kept verbatim)".
func stripIRI(term string) string {
	if len(term) >= 2 && term[0] == '<' && term[len(term)-1] == '>' {
		return term[1 : len(term)-1]
	}
	return term
}

package rewriter

import "strings"

// match is a found virtual-predicate triple pattern, ready for splicing.
// start/end are byte offsets into the original query (spec §4.6 step 5:
// tss start, extended to the terminating dot when present).
type match struct {
	start, end int
	varName    string
	object     string
	predicate  string
}

// expectKind tracks what role the next significant token plays within the
// subject currently being scanned.
type expectKind int

const (
	expectPredicate expectKind = iota
	expectObject
)

// findMatches walks the token stream looking for `?var <predicate> obj .`
// shaped triples whose bare predicate (angle brackets stripped) is a key
// of predicateKnown, mirroring the tss/var/predicate/object capture walk
// of spec §4.6 steps 4-6. A subject starts at a variable token
// immediately following '.' or '{' (or at the very start of the token
// stream), matching the grammar's subject position without a full parser.
func findMatches(tokens []token, predicateKnown func(bare string) bool) []match {
	var matches []match

	var (
		open      bool
		start     int
		end       int
		varName   string
		predicate string
		object    string
		found     bool
		expect    expectKind
	)

	flush := func() {
		if open && found && varName != "" && object != "" {
			matches = append(matches, match{start: start, end: end, varName: varName, object: object, predicate: predicate})
		}
		open = false
	}

	var prev *token
	for idx := range tokens {
		tok := &tokens[idx]
		if tok.kind == tokComment {
			continue
		}

		if tok.kind == tokVar && startsSubject(prev) {
			flush()
			open = true
			start = tok.start
			end = tok.end
			varName = tok.text
			predicate = ""
			object = ""
			found = false
			expect = expectPredicate
			prev = tok
			continue
		}

		if open {
			switch tok.kind {
			case tokIRI:
				if expect == expectPredicate {
					predicate = strings.Trim(tok.text, "<>")
					found = predicateKnown(predicate)
					expect = expectObject
				} else {
					object = tok.text
					end = tok.end
				}
			case tokLiteral:
				if expect == expectObject {
					object = tok.text
					end = tok.end
				}
			case tokWord:
				if expect == expectPredicate && looksLikePrefixedName(tok.text) {
					predicate = tok.text
					found = predicateKnown(predicate)
					expect = expectObject
				}
			case tokPunct:
				switch tok.text {
				case ";":
					expect = expectPredicate
				case ",":
					expect = expectObject
				case ".":
					end = tok.end
					flush()
				case "{", "}", "(", ")":
					flush()
				}
			}
		}

		prev = tok
	}
	flush()

	return matches
}

// startsSubject reports whether a variable token immediately following
// prev can be a tss subject: the start of the token stream, or right
// after '.' or '{'.
func startsSubject(prev *token) bool {
	if prev == nil {
		return true
	}
	if prev.kind != tokPunct {
		return false
	}
	return prev.text == "." || prev.text == "{"
}

// looksLikePrefixedName reports whether text has the shape prefix:local
// (spec §4.6 "Prefixed names"), excluding IRIs (already tokenized
// separately) and plain words with no colon.
func looksLikePrefixedName(text string) bool {
	return strings.IndexByte(text, ':') > 0
}

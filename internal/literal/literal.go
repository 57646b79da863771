// Package literal decomposes an RDF literal's lexical form into its value,
// optional language tag, and optional datatype IRI (spec §4.2).
package literal

import "strings"

// Parts holds the decomposed pieces of an RDF literal. Valid is false for
// anything that is not a quoted literal at all (the caller's null-triple
// case); Value, Language and Datatype are independently "" when absent.
type Parts struct {
	Value    string
	Language string
	Datatype string
	Valid    bool
}

// Parse decomposes a literal's lexical form, e.g. `"PizzaComQueijo"@pt` or
// `"7"^^<http://www.w3.org/2001/XMLSchema#integer>`. A string that doesn't
// start with `"` is reported as absent (Valid == false) rather than an error:
// malformed literals are skipped by the caller, never surfaced (spec §7).
func Parse(s string) Parts {
	if !strings.HasPrefix(s, `"`) {
		return Parts{}
	}

	last := strings.LastIndex(s, `"`)
	if last <= 0 {
		return Parts{}
	}

	value := s[1:last]
	rest := strings.TrimSpace(s[last+1:])

	p := Parts{Value: value, Valid: true}
	switch {
	case strings.HasPrefix(rest, "@"):
		p.Language = rest[1:]
	case strings.HasPrefix(rest, "^^"):
		p.Datatype = rest[2:]
	}
	return p
}

// Render reconstructs the lexical form of a literal from its parts, quoting
// value and appending a language tag or datatype suffix when present. At
// most one of language/datatype is ever applied, matching Parse's contract.
func Render(value, language, datatype string) string {
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(value)
	b.WriteByte('"')
	switch {
	case language != "":
		b.WriteByte('@')
		b.WriteString(language)
	case datatype != "":
		b.WriteString("^^")
		b.WriteString(datatype)
	}
	return b.String()
}

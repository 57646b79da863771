package rewriter

import (
	"strings"

	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/resolve"
)

// renderValues builds a standard SPARQL VALUES block from a resolver
// result, per spec §4.6 step 7. Tokens beginning with "_:" are dropped
// from each tuple before rendering (blank-node suppression); this can
// leave a tuple shorter than len(vars), a known quirk preserved rather
// than hidden.
func renderValues(result resolve.Result) string {
	lines := make([]string, 0, len(result.Results))
	for _, tuple := range result.Results {
		filtered := filterBlankNodes(tuple)
		line := strings.Join(filtered, " ")
		if len(result.Vars) > 1 {
			line = "(" + line + ")"
		}
		lines = append(lines, line)
	}

	// Single-variable form puts the opening brace on the VALUES line
	// itself (spec §4.6 step 7: "VALUES V {\n...\n}"); the multi-variable
	// form puts it on its own line after the variable tuple.
	if len(result.Vars) == 1 {
		return "VALUES " + result.Vars[0] + " {" + "\n" + strings.Join(lines, "\n") + "\n}"
	}
	header := "VALUES (" + strings.Join(result.Vars, " ") + ")"
	return header + "\n{" + strings.Join(lines, "\n") + "\n}"
}

func filterBlankNodes(tuple []string) []string {
	out := make([]string, 0, len(tuple))
	for _, v := range tuple {
		if strings.HasPrefix(v, "_:") {
			continue
		}
		out = append(out, v)
	}
	return out
}

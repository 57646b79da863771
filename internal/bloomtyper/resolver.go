package bloomtyper

import (
	"context"

	"github.com/ISE-FIZKarlsruhe/fizzysearch/internal/resolve"
)

// Resolver adapts a Checker into the shared resolve.Resolver contract: the
// pattern's object is the individual to probe, and the rewriter's variable
// is bound to every class the individual approximately belongs to
// (spec §4.4 "classes_of").
type Resolver struct {
	Checker *Checker
}

// Resolve binds varName to the classes_of(object) result, a single-variable
// VALUES block per spec §4.6 step 7.
func (r *Resolver) Resolve(ctx context.Context, varName, object string) (resolve.Result, error) {
	classes, err := r.Checker.ClassesOf(object)
	if err != nil {
		return resolve.Result{}, err
	}

	result := resolve.Result{Vars: []string{varName}}
	for _, class := range classes {
		result.Results = append(result.Results, []string{"<" + class + ">"})
	}
	return result, nil
}

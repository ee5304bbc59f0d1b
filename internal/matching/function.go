package matching

import (
	"github.com/routemock/routemock/pkg/route"
)

// compileFunction builds the function criterion: a verbatim pass-through of
// the user predicate, no interpretation or error translation.
func compileFunction(_ *Compiler, r *route.Route) (Predicate, error) {
	if r.Matcher == nil {
		return nil, nil
	}

	fn := r.Matcher
	return func(u string, opts *route.CallOptions) bool {
		return fn(u, opts)
	}, nil
}

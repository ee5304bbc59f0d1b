package matching

import (
	"strings"

	"github.com/routemock/routemock/pkg/route"
)

// compileMethod builds the method criterion. Comparison is case-insensitive;
// a call without a method counts as GET.
func compileMethod(_ *Compiler, r *route.Route) (Predicate, error) {
	if r.Method == "" {
		return nil, nil
	}

	expected := strings.ToLower(r.Method)
	return func(_ string, opts *route.CallOptions) bool {
		return observedMethod(opts) == expected
	}, nil
}

// observedMethod returns the lower-cased method of a call, defaulting to get.
func observedMethod(opts *route.CallOptions) string {
	if opts == nil || opts.Method == "" {
		return "get"
	}
	return strings.ToLower(opts.Method)
}

package matching

import (
	"slices"
	"strings"

	"github.com/routemock/routemock/pkg/route"
)

// compileHeaders builds the headers criterion. Names compare
// case-insensitively, values case-sensitively. Every expected header must be
// present; extra observed headers are ignored.
func compileHeaders(_ *Compiler, r *route.Route) (Predicate, error) {
	if len(r.Headers) == 0 {
		return nil, nil
	}

	expected := make(map[string]string, len(r.Headers))
	for name, value := range r.Headers {
		expected[strings.ToLower(name)] = value
	}

	return func(_ string, opts *route.CallOptions) bool {
		observed := lowerHeaders(opts)
		for name, want := range expected {
			if !headerValueEquals(want, observed[name]) {
				return false
			}
		}
		return true
	}, nil
}

func lowerHeaders(opts *route.CallOptions) map[string][]string {
	if opts == nil || len(opts.Headers) == 0 {
		return nil
	}
	out := make(map[string][]string, len(opts.Headers))
	for name, values := range opts.Headers {
		out[strings.ToLower(name)] = values
	}
	return out
}

// headerValueEquals reports whether the observed values satisfy the expected
// one. A multi-value header matches either any single element or its
// comma-joined wire form.
func headerValueEquals(want string, got []string) bool {
	switch len(got) {
	case 0:
		return false
	case 1:
		return got[0] == want
	default:
		return slices.Contains(got, want) || strings.Join(got, ", ") == want
	}
}

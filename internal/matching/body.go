package matching

import (
	"reflect"

	"github.com/ohler55/ojg/oj"

	"github.com/routemock/routemock/pkg/route"
)

// compileBody builds the body criterion. It is always compiled: without a
// declared body the predicate is trivially permissive; with one, GET calls
// pass unconditionally (GET semantics exclude a body), any other method has
// its raw body parsed as JSON and compared. A parse failure is an ordinary
// non-match, never an error.
func compileBody(_ *Compiler, r *route.Route) (Predicate, error) {
	if r.Body == nil {
		return func(string, *route.CallOptions) bool { return true }, nil
	}

	// Round-trip the expectation through JSON so its value types line up
	// with what parsing the wire body produces.
	expected := canonicalJSON(r.Body)
	partial := r.MatchPartialBody

	return func(_ string, opts *route.CallOptions) bool {
		if observedMethod(opts) == "get" {
			return true
		}

		var raw string
		if opts != nil {
			raw = opts.Body
		}
		parsed, err := oj.ParseString(raw)
		if err != nil {
			return false
		}

		if partial {
			return containsSubset(expected, parsed)
		}
		return reflect.DeepEqual(expected, parsed)
	}, nil
}

// canonicalJSON re-parses a value from its JSON encoding, mapping Go-side
// literals (int, json.Number, yaml scalars) onto the parser's value types.
func canonicalJSON(v any) any {
	parsed, err := oj.ParseString(oj.JSON(v))
	if err != nil {
		return v
	}
	return parsed
}

// containsSubset reports whether every key/value pair of expected appears in
// actual, recursively. Extra keys in actual are ignored; expected sequence
// elements must each appear somewhere in the actual sequence.
func containsSubset(expected, actual any) bool {
	switch exp := expected.(type) {
	case map[string]any:
		act, ok := actual.(map[string]any)
		if !ok {
			return false
		}
		for key, want := range exp {
			got, present := act[key]
			if !present || !containsSubset(want, got) {
				return false
			}
		}
		return true

	case []any:
		act, ok := actual.([]any)
		if !ok {
			return false
		}
		for _, want := range exp {
			found := false
			for _, got := range act {
				if containsSubset(want, got) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true

	default:
		return reflect.DeepEqual(expected, actual)
	}
}

package matching

import (
	"fmt"
	"net/url"
	"slices"

	"github.com/routemock/routemock/internal/urlnorm"
	"github.com/routemock/routemock/pkg/route"
)

// compileQuery builds the query criterion. Expected values are canonicalized
// once through wire encoding so numbers and booleans compare as strings.
func compileQuery(_ *Compiler, r *route.Route) (Predicate, error) {
	if len(r.Query) == 0 {
		return nil, nil
	}

	expected, multi, err := canonicalQuery(r.Query)
	if err != nil {
		return nil, err
	}

	return func(u string, _ *route.CallOptions) bool {
		observed := urlnorm.Query(u)
		for name, want := range expected {
			got, ok := observed[name]
			if !ok {
				return false
			}
			if multi[name] || len(got) > 1 {
				// Repeated parameters compare as unordered multisets,
				// and a repeated observed value needs a declared sequence.
				if len(got) != len(want) {
					return false
				}
				g := slices.Clone(got)
				w := slices.Clone(want)
				slices.Sort(g)
				slices.Sort(w)
				if !slices.Equal(g, w) {
					return false
				}
			} else if got[0] != want[0] {
				return false
			}
		}
		// Observed parameters not named in the expectation are ignored.
		return true
	}, nil
}

// canonicalQuery round-trips the expectation through encode/decode and
// records which keys were declared as sequences.
func canonicalQuery(query map[string]any) (url.Values, map[string]bool, error) {
	values := url.Values{}
	multi := make(map[string]bool)

	for name, value := range query {
		switch v := value.(type) {
		case []string:
			multi[name] = true
			for _, item := range v {
				values.Add(name, item)
			}
		case []any:
			multi[name] = true
			for _, item := range v {
				values.Add(name, queryScalar(item))
			}
		default:
			values.Add(name, queryScalar(v))
		}
	}

	decoded, err := url.ParseQuery(values.Encode())
	if err != nil {
		return nil, nil, fmt.Errorf("invalid query expectation: %w", err)
	}
	return decoded, multi, nil
}

func queryScalar(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

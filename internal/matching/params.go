package matching

import (
	"fmt"
	"maps"

	"github.com/routemock/routemock/internal/urlnorm"
	"github.com/routemock/routemock/pkg/route"
)

// compileParams builds the params criterion. Params extraction is defined
// only for express: url patterns; requesting it on any other pattern kind is
// a configuration error surfaced at compile time.
func compileParams(c *Compiler, r *route.Route) (Predicate, error) {
	if len(r.Params) == 0 {
		return nil, nil
	}

	pattern, isString := r.URL.(string)
	var fragment string
	express := false
	if isString {
		var tag string
		var tagged bool
		tag, fragment, tagged = route.SplitShorthand(pattern)
		express = tagged && tag == route.TagExpress
	}
	if !express {
		return nil, &route.ValidationError{Field: "params", Message: "params matching requires an express: url pattern"}
	}

	tmpl, err := c.compilers.Template(fragment)
	if err != nil {
		return nil, fmt.Errorf("express pattern %q: %w", fragment, err)
	}
	expected := maps.Clone(r.Params)

	return func(u string, _ *route.CallOptions) bool {
		captures, ok := tmpl.Params(urlnorm.Path(u))
		if !ok {
			return false
		}
		for name, want := range expected {
			got, present := captures[name]
			if !present || got != want {
				return false
			}
		}
		return true
	}, nil
}

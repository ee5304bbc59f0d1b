package matching

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/routemock/routemock/internal/urlnorm"
	"github.com/routemock/routemock/pkg/route"
)

// Predicate evaluates one criterion against an observed call.
type Predicate func(url string, opts *route.CallOptions) bool

// CompiledCriterion pairs a criterion name with its compiled predicate.
type CompiledCriterion struct {
	Name      string
	Predicate Predicate
}

// Factory builds the predicate for one criterion of a route.
// New returns a nil Predicate when the route does not declare the criterion.
type Factory struct {
	Name string

	// UsesBody marks criteria that read the raw request body, so the
	// dispatch layer can skip body materialization for routes that
	// declare no body expectation.
	UsesBody bool

	New func(c *Compiler, r *route.Route) (Predicate, error)
}

// Registry is the fixed, ordered list of criterion factories.
var Registry = []Factory{
	{Name: "query", New: compileQuery},
	{Name: "method", New: compileMethod},
	{Name: "headers", New: compileHeaders},
	{Name: "params", New: compileParams},
	{Name: "body", UsesBody: true, New: compileBody},
	{Name: "function", New: compileFunction},
	{Name: "url", New: compileURL},
}

// Compiler compiles route specifications into matchers.
type Compiler struct {
	compilers Compilers
}

// NewCompiler returns a Compiler using the default pattern compilers.
func NewCompiler() *Compiler {
	return NewCompilerWith(DefaultCompilers())
}

// NewCompilerWith returns a Compiler with injected pattern compilers.
// Zero fields fall back to the defaults.
func NewCompilerWith(compilers Compilers) *Compiler {
	defaults := DefaultCompilers()
	if compilers.Glob == nil {
		compilers.Glob = defaults.Glob
	}
	if compilers.Template == nil {
		compilers.Template = defaults.Template
	}
	return &Compiler{compilers: compilers}
}

// CompiledMatcher is the ordered set of active per-criterion predicates
// derived from one route. It holds no mutable state after compilation and is
// safe to evaluate concurrently.
type CompiledMatcher struct {
	// Identifier is the caller-visible label for the route: the declared
	// identifier, or the (normalized) url pattern when none was declared.
	Identifier string

	// UsesBody reports whether any active predicate reads the raw
	// request body.
	UsesBody bool

	criteria []CompiledCriterion
}

// Compile builds the matcher for a route. It invokes every factory in
// Registry once, in order, and keeps the predicates for the criteria the
// route declares. Compile is pure: the route is never written; the
// normalized identifier is reported on the returned matcher instead.
func (c *Compiler) Compile(r *route.Route) (*CompiledMatcher, error) {
	if r == nil {
		return nil, errors.New("nil route")
	}
	if r.URL == nil && r.Matcher == nil {
		return nil, &route.ValidationError{Field: "url", Message: "a url pattern or a matcher function is required"}
	}

	m := &CompiledMatcher{Identifier: identifierFor(r)}
	for _, f := range Registry {
		pred, err := f.New(c, r)
		if err != nil {
			return nil, fmt.Errorf("compiling %s criterion: %w", f.Name, err)
		}
		if pred == nil {
			continue
		}
		m.criteria = append(m.criteria, CompiledCriterion{Name: f.Name, Predicate: pred})
		if f.UsesBody && r.Body != nil {
			m.UsesBody = true
		}
	}
	return m, nil
}

// Criteria returns the active criteria in registry order.
func (m *CompiledMatcher) Criteria() []CompiledCriterion {
	out := make([]CompiledCriterion, len(m.criteria))
	copy(out, m.criteria)
	return out
}

// Matches folds every active predicate with logical AND.
func (m *CompiledMatcher) Matches(url string, opts *route.CallOptions) bool {
	for _, c := range m.criteria {
		if !c.Predicate(url, opts) {
			return false
		}
	}
	return true
}

// FailingCriterion returns the name of the first criterion that rejects the
// call, or ok=true when every criterion passes.
func (m *CompiledMatcher) FailingCriterion(url string, opts *route.CallOptions) (name string, ok bool) {
	for _, c := range m.criteria {
		if !c.Predicate(url, opts) {
			return c.Name, false
		}
	}
	return "", true
}

// identifierFor resolves the caller-visible route label. A declared
// identifier wins; otherwise the url pattern is used, normalized when it is
// a plain string so identifier lookups agree with how matches are evaluated.
func identifierFor(r *route.Route) string {
	pattern, isString := r.URL.(string)

	id := r.Identifier
	if id == "" {
		switch p := r.URL.(type) {
		case string:
			id = p
		case *regexp.Regexp:
			id = p.String()
		case route.Hrefer:
			id = p.Href()
		}
	}

	if isString && id == pattern && isPlainPattern(pattern) {
		return urlnorm.Normalize(pattern)
	}
	return id
}

// isPlainPattern reports whether a string url pattern is a plain URL, i.e.
// neither the match-all literal nor shorthand-tagged.
func isPlainPattern(pattern string) bool {
	if pattern == MatchAll {
		return false
	}
	_, _, tagged := route.SplitShorthand(pattern)
	return !tagged
}

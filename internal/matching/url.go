package matching

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/routemock/routemock/internal/urlnorm"
	"github.com/routemock/routemock/pkg/route"
)

// MatchAll is the url pattern literal that accepts every URL.
const MatchAll = "*"

// compileURL builds the url criterion. The pattern kind is resolved once
// here; the returned predicate carries no per-call dispatch.
func compileURL(c *Compiler, r *route.Route) (Predicate, error) {
	switch pattern := r.URL.(type) {
	case nil:
		// Function-matcher-only route.
		return nil, nil
	case *regexp.Regexp:
		re := pattern
		return func(u string, _ *route.CallOptions) bool {
			return re.MatchString(u)
		}, nil
	case *url.URL:
		return fullURLPredicate(r, pattern.String()), nil
	case route.Hrefer:
		return fullURLPredicate(r, pattern.Href()), nil
	case string:
		return c.compileURLString(r, pattern)
	default:
		return nil, &route.ValidationError{Field: "url", Message: fmt.Sprintf("unsupported url pattern type %T", r.URL)}
	}
}

// compileURLString handles the match-all literal, shorthand-tagged patterns
// and plain URL strings.
func (c *Compiler) compileURLString(r *route.Route, pattern string) (Predicate, error) {
	if pattern == MatchAll {
		return func(string, *route.CallOptions) bool { return true }, nil
	}

	tag, fragment, tagged := route.SplitShorthand(pattern)
	if !tagged {
		return fullURLPredicate(r, pattern), nil
	}

	switch tag {
	case route.TagBegin:
		return func(u string, _ *route.CallOptions) bool {
			return strings.HasPrefix(u, fragment)
		}, nil

	case route.TagEnd:
		return func(u string, _ *route.CallOptions) bool {
			return strings.HasSuffix(u, fragment)
		}, nil

	case route.TagGlob:
		match, err := c.compilers.Glob(fragment)
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", fragment, err)
		}
		return func(u string, _ *route.CallOptions) bool {
			return match(u)
		}, nil

	case route.TagExpress:
		tmpl, err := c.compilers.Template(fragment)
		if err != nil {
			return nil, fmt.Errorf("express pattern %q: %w", fragment, err)
		}
		return func(u string, _ *route.CallOptions) bool {
			return tmpl.Match(urlnorm.Path(u))
		}, nil

	case route.TagPath:
		return func(u string, _ *route.CallOptions) bool {
			return urlnorm.Path(u) == fragment
		}, nil
	}

	// SplitShorthand only reports tags handled above.
	return nil, &route.ValidationError{Field: "url", Message: fmt.Sprintf("unknown url shorthand %q", tag)}
}

// fullURLPredicate compares a plain URL pattern against observed URLs, both
// sides normalized. When the route also declares a query criterion and the
// pattern carries its own query string, the comparison degrades to a prefix
// check: the url criterion then only anchors the path, and exact query
// semantics are owned by the query criterion.
func fullURLPredicate(r *route.Route, pattern string) Predicate {
	normalized := urlnorm.Normalize(pattern)

	if len(r.Query) > 0 && strings.Contains(pattern, "?") {
		return func(u string, _ *route.CallOptions) bool {
			return strings.HasPrefix(urlnorm.Normalize(u), normalized)
		}
	}

	return func(u string, _ *route.CallOptions) bool {
		return urlnorm.Normalize(u) == normalized
	}
}

// Package route provides the declarative route specification that describes
// which calls a mock route should intercept, plus validation for it.
package route

import (
	"net/url"
)

// CallOptions carries the observed request attributes a matcher can inspect.
// It is the match-time counterpart of a Route: ephemeral, never retained.
type CallOptions struct {
	// Method is the HTTP method of the call. Matchers treat an empty
	// method as GET.
	Method string

	// Headers holds the observed request headers. Names are matched
	// case-insensitively.
	Headers map[string][]string

	// Body is the raw request payload, possibly JSON-encoded text.
	Body string
}

// MatcherFunc is a user-supplied predicate over an observed call.
type MatcherFunc func(url string, opts *CallOptions) bool

// Hrefer is implemented by URL pattern objects that resolve to an absolute
// URL, such as ParsedURL.
type Hrefer interface {
	Href() string
}

// ParsedURL wraps a *url.URL so it can be used as a Route URL pattern.
type ParsedURL struct {
	URL *url.URL
}

// Href returns the resolved absolute URL string.
func (p ParsedURL) Href() string {
	if p.URL == nil {
		return ""
	}
	return p.URL.String()
}

// Route describes which calls a mock route should intercept.
// All criteria are optional; a compiled route matches a call only when every
// specified criterion holds.
type Route struct {
	// URL is the pattern to match the observed URL against. One of:
	//   - the literal "*" (match all)
	//   - a *regexp.Regexp, tested against the raw observed URL
	//   - a Hrefer (e.g. ParsedURL), compared as a full URL
	//   - a string, optionally prefixed with one of the shorthand tags
	//     "begin:", "end:", "glob:", "express:" or "path:"
	URL any `json:"url,omitempty" yaml:"url,omitempty"`

	// Method is the expected HTTP method, case-insensitive.
	Method string `json:"method,omitempty" yaml:"method,omitempty"`

	// Query maps expected query parameter names to a scalar or a sequence
	// of scalars. Repeated observed parameters are compared as unordered
	// multisets. Observed parameters not named here are ignored.
	Query map[string]any `json:"query,omitempty" yaml:"query,omitempty"`

	// Headers maps expected header names (case-insensitive) to values.
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`

	// Params maps expected named path parameters to values. Only valid
	// when URL uses the "express:" shorthand.
	Params map[string]string `json:"params,omitempty" yaml:"params,omitempty"`

	// Body is the expected JSON value of the request body.
	Body any `json:"body,omitempty" yaml:"body,omitempty"`

	// MatchPartialBody switches body comparison from exact deep equality
	// to subset containment.
	MatchPartialBody bool `json:"matchPartialBody,omitempty" yaml:"matchPartialBody,omitempty"`

	// Matcher is an arbitrary user predicate, evaluated verbatim.
	Matcher MatcherFunc `json:"-" yaml:"-"`

	// Identifier is a caller-visible label for the route. It defaults to
	// the raw URL pattern string; compilation reports the normalized form
	// alongside the compiled matcher so identifier lookups stay consistent
	// with how matches are evaluated.
	Identifier string `json:"identifier,omitempty" yaml:"identifier,omitempty"`
}

// SetIdentifier relabels the route. Compilation never writes the route;
// callers that want identifier lookups keyed by the normalized form apply
// the compiled matcher's Identifier back with this.
func (r *Route) SetIdentifier(id string) {
	r.Identifier = id
}

package route

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError represents a route specification failure with context.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid route %s: %s", e.Field, e.Message)
}

// validHTTPMethods are the allowed HTTP methods.
var validHTTPMethods = map[string]bool{
	"GET":     true,
	"POST":    true,
	"PUT":     true,
	"DELETE":  true,
	"PATCH":   true,
	"HEAD":    true,
	"OPTIONS": true,
}

// URL shorthand tags recognized on string patterns.
const (
	TagBegin   = "begin"
	TagEnd     = "end"
	TagGlob    = "glob"
	TagExpress = "express"
	TagPath    = "path"
)

var shorthandTags = map[string]bool{
	TagBegin:   true,
	TagEnd:     true,
	TagGlob:    true,
	TagExpress: true,
	TagPath:    true,
}

// SplitShorthand splits a string URL pattern into its shorthand tag and
// fragment. Returns ok=false when the pattern carries no recognized tag.
func SplitShorthand(pattern string) (tag, fragment string, ok bool) {
	head, rest, found := strings.Cut(pattern, ":")
	if !found || !shorthandTags[head] {
		return "", "", false
	}
	return head, rest, true
}

// headerNameRegex validates HTTP header names (RFC 7230).
var headerNameRegex = regexp.MustCompile(`^[A-Za-z0-9!#$%&'*+\-.^_\x60|~]+$`)

// Validate checks structural validity of the route specification.
// Criteria compilation performs its own, stricter checks (e.g. params
// require an express: URL pattern); Validate catches the caller mistakes
// that are detectable without compiling anything.
func (r *Route) Validate() error {
	if r.URL == nil && r.Matcher == nil {
		return &ValidationError{Field: "url", Message: "a url pattern or a matcher function is required"}
	}

	if r.Method != "" && !validHTTPMethods[strings.ToUpper(r.Method)] {
		return &ValidationError{Field: "method", Message: fmt.Sprintf("unknown HTTP method %q", r.Method)}
	}

	for name := range r.Headers {
		if !headerNameRegex.MatchString(name) {
			return &ValidationError{Field: "headers", Message: fmt.Sprintf("invalid header name %q", name)}
		}
	}

	if len(r.Params) > 0 {
		pattern, ok := r.URL.(string)
		if !ok {
			return &ValidationError{Field: "params", Message: "params matching requires an express: url pattern"}
		}
		if tag, _, tagged := SplitShorthand(pattern); !tagged || tag != TagExpress {
			return &ValidationError{Field: "params", Message: "params matching requires an express: url pattern"}
		}
	}

	return nil
}

package route

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
)

// ExpressionMatcher compiles an expr-lang boolean expression into a
// MatcherFunc, so routes declared in configuration files can carry a custom
// predicate without Go code.
//
// The expression is evaluated against:
//
//	url     string              the observed URL
//	method  string              lower-cased, "get" when the call omits it
//	headers map[string][]string lower-cased names
//	body    string              the raw request payload
//
// Example: `method == "post" && "trace-id" in headers`.
func ExpressionMatcher(src string) (MatcherFunc, error) {
	program, err := expr.Compile(src, expr.Env(map[string]any{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile matcher expression %q: %w", src, err)
	}

	return func(url string, opts *CallOptions) bool {
		env := map[string]any{
			"url":     url,
			"method":  "get",
			"headers": map[string][]string{},
			"body":    "",
		}
		if opts != nil {
			if opts.Method != "" {
				env["method"] = strings.ToLower(opts.Method)
			}
			if opts.Headers != nil {
				headers := make(map[string][]string, len(opts.Headers))
				for name, values := range opts.Headers {
					headers[strings.ToLower(name)] = values
				}
				env["headers"] = headers
			}
			env["body"] = opts.Body
		}

		out, err := expr.Run(program, env)
		if err != nil {
			// Evaluation failure is a non-match, never a hard error.
			return false
		}
		matched, ok := out.(bool)
		return ok && matched
	}, nil
}

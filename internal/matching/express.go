package matching

import (
	"fmt"
	"regexp"
	"strings"
)

// templateKeyRegex validates named segment identifiers in path templates.
var templateKeyRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// PathTemplate is a compiled express-style path template. Named segments
// (":id") match exactly one path segment and are captured by name; a bare
// "*" segment matches anything including separators.
type PathTemplate struct {
	raw  string
	re   *regexp.Regexp
	keys []string
}

// CompileTemplate compiles a path template such as /users/:id/orders into an
// anchored pattern with named captures. A trailing slash on the observed
// path is tolerated.
func CompileTemplate(template string) (*PathTemplate, error) {
	trimmed := template
	if len(trimmed) > 1 {
		trimmed = strings.TrimSuffix(trimmed, "/")
	}

	var b strings.Builder
	var keys []string
	b.WriteString("^")

	for i, segment := range strings.Split(trimmed, "/") {
		if i > 0 {
			b.WriteString("/")
		}
		switch {
		case strings.HasPrefix(segment, ":"):
			name := segment[1:]
			if !templateKeyRegex.MatchString(name) {
				return nil, fmt.Errorf("invalid path parameter %q in template %q", segment, template)
			}
			keys = append(keys, name)
			fmt.Fprintf(&b, "(?P<%s>[^/]+)", name)
		case segment == "*":
			b.WriteString(".*")
		default:
			b.WriteString(regexp.QuoteMeta(segment))
		}
	}
	b.WriteString("/?$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("compiling template %q: %w", template, err)
	}
	return &PathTemplate{raw: template, re: re, keys: keys}, nil
}

// String returns the original template.
func (t *PathTemplate) String() string {
	return t.raw
}

// Keys returns the named parameters in declaration order.
func (t *PathTemplate) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Match reports whether the path satisfies the template.
func (t *PathTemplate) Match(path string) bool {
	return t.re.MatchString(path)
}

// Params extracts the named captures from a path. Returns ok=false when the
// path does not satisfy the template.
func (t *PathTemplate) Params(path string) (map[string]string, bool) {
	match := t.re.FindStringSubmatch(path)
	if match == nil {
		return nil, false
	}

	params := make(map[string]string, len(t.keys))
	for i, name := range t.re.SubexpNames() {
		if i > 0 && name != "" && i < len(match) {
			params[name] = match[i]
		}
	}
	return params, true
}

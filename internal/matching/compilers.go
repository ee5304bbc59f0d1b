package matching

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// GlobMatchFunc tests one URL against a pre-compiled glob pattern.
type GlobMatchFunc func(url string) bool

// GlobCompiler compiles a filesystem-style glob pattern.
type GlobCompiler func(pattern string) (GlobMatchFunc, error)

// TemplateCompiler compiles an express-style path template
// (colon-prefixed named segments, e.g. /users/:id).
type TemplateCompiler func(template string) (*PathTemplate, error)

// Compilers are the pattern compilers a Compiler depends on. They are
// injected so tests can substitute them.
type Compilers struct {
	Glob     GlobCompiler
	Template TemplateCompiler
}

// DefaultCompilers wires doublestar for globs and the internal express-style
// template compiler.
func DefaultCompilers() Compilers {
	return Compilers{
		Glob:     compileGlob,
		Template: CompileTemplate,
	}
}

// compileGlob validates the pattern once and returns a matcher over full
// URLs. Globbing treats the URL like a slash-separated path, so * stops at
// path separators and ** crosses them.
func compileGlob(pattern string) (GlobMatchFunc, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}
	return func(u string) bool {
		ok, err := doublestar.Match(pattern, u)
		return err == nil && ok
	}, nil
}

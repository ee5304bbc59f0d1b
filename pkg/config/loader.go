// Package config loads route specifications from YAML files.
// A route file contains either a single route, a top-level array of routes,
// or a mapping with a routes key.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/routemock/routemock/pkg/route"
)

// RouteConfig is the file representation of a route specification.
// URL patterns are always strings here; regexp and URL-object patterns are
// only available to Go callers constructing route.Route directly.
type RouteConfig struct {
	// ID identifies the route in diagnostics. Defaults to a generated ID.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	URL              string            `json:"url,omitempty" yaml:"url,omitempty"`
	Method           string            `json:"method,omitempty" yaml:"method,omitempty"`
	Query            map[string]any    `json:"query,omitempty" yaml:"query,omitempty"`
	Headers          map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	Params           map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
	Body             any               `json:"body,omitempty" yaml:"body,omitempty"`
	MatchPartialBody bool              `json:"matchPartialBody,omitempty" yaml:"matchPartialBody,omitempty"`

	// MatcherExpr is an expr-lang predicate over {url, method, headers,
	// body}, compiled into the route's function matcher.
	MatcherExpr string `json:"matcherExpr,omitempty" yaml:"matcherExpr,omitempty"`

	Identifier string `json:"identifier,omitempty" yaml:"identifier,omitempty"`
}

// ToRoute converts the file representation into a route specification.
func (rc *RouteConfig) ToRoute() (*route.Route, error) {
	r := &route.Route{
		Method:           rc.Method,
		Query:            rc.Query,
		Headers:          rc.Headers,
		Params:           rc.Params,
		Body:             rc.Body,
		MatchPartialBody: rc.MatchPartialBody,
		Identifier:       rc.Identifier,
	}
	if rc.URL != "" {
		r.URL = rc.URL
	}
	if rc.MatcherExpr != "" {
		fn, err := route.ExpressionMatcher(rc.MatcherExpr)
		if err != nil {
			return nil, err
		}
		r.Matcher = fn
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// LoadedRoute pairs a route specification with its provenance.
type LoadedRoute struct {
	ID     string
	Source string
	Config RouteConfig
	Route  *route.Route
}

// routeFileContent handles the three accepted file shapes.
type routeFileContent struct {
	Routes []RouteConfig `yaml:"routes"`

	single RouteConfig
	isList bool
}

// UnmarshalYAML accepts a single route mapping, a sequence of routes, or a
// mapping with a routes key.
func (c *routeFileContent) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		c.isList = true
		return node.Decode(&c.Routes)
	}

	// Probe for a routes key before falling back to the single-route shape.
	var probe struct {
		Routes []RouteConfig `yaml:"routes"`
	}
	if err := node.Decode(&probe); err == nil && len(probe.Routes) > 0 {
		c.isList = true
		c.Routes = probe.Routes
		return nil
	}

	return node.Decode(&c.single)
}

// LoadFile loads route specifications from one YAML file.
// Environment references like ${TOKEN} are expanded before parsing.
func LoadFile(path string) ([]*LoadedRoute, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("file is empty: %s", path)
	}

	expanded := os.ExpandEnv(string(data))

	var content routeFileContent
	if err := yaml.Unmarshal([]byte(expanded), &content); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	configs := content.Routes
	if !content.isList {
		configs = []RouteConfig{content.single}
	}

	loaded := make([]*LoadedRoute, 0, len(configs))
	for i, rc := range configs {
		r, err := rc.ToRoute()
		if err != nil {
			return nil, fmt.Errorf("%s: routes[%d]: %w", path, i, err)
		}
		if rc.ID == "" {
			rc.ID = uuid.NewString()
		}
		loaded = append(loaded, &LoadedRoute{
			ID:     rc.ID,
			Source: path,
			Config: rc,
			Route:  r,
		})
	}
	return loaded, nil
}

// LoadGlob loads route specifications from every file matching the pattern.
// Supports ** for recursive directory matching via the doublestar library;
// matches load in sorted order for determinism.
func LoadGlob(pattern string) ([]*LoadedRoute, error) {
	var matches []string
	var err error
	if strings.Contains(pattern, "*") || strings.Contains(pattern, "?") || strings.Contains(pattern, "[") {
		matches, err = doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expanding glob pattern %q: %w", pattern, err)
		}
	} else {
		matches = []string{pattern}
	}

	sort.Strings(matches)

	var result []*LoadedRoute
	for _, match := range matches {
		loaded, err := LoadFile(match)
		if err != nil {
			return nil, err
		}
		result = append(result, loaded...)
	}
	return result, nil
}

package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routemock/routemock/pkg/route"
)

func TestMethodCriterion(t *testing.T) {
	m, err := NewCompiler().Compile(&route.Route{URL: "*", Method: "POST"})
	require.NoError(t, err)

	tests := []struct {
		name string
		opts *route.CallOptions
		want bool
	}{
		{"exact", &route.CallOptions{Method: "POST"}, true},
		{"case insensitive", &route.CallOptions{Method: "post"}, true},
		{"mismatch", &route.CallOptions{Method: "PUT"}, false},
		{"missing method defaults to get", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Matches("http://x.test", tt.opts))
		})
	}

	get, err := NewCompiler().Compile(&route.Route{URL: "*", Method: "GET"})
	require.NoError(t, err)
	assert.True(t, get.Matches("http://x.test", nil), "absent method counts as get")
}

func TestHeadersCriterion(t *testing.T) {
	m, err := NewCompiler().Compile(&route.Route{
		URL:     "*",
		Headers: map[string]string{"Content-Type": "application/json"},
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		headers map[string][]string
		want    bool
	}{
		{"exact", map[string][]string{"Content-Type": {"application/json"}}, true},
		{"name case insensitive", map[string][]string{"content-type": {"application/json"}}, true},
		{"value case sensitive", map[string][]string{"Content-Type": {"Application/JSON"}}, false},
		{"missing", map[string][]string{"Accept": {"application/json"}}, false},
		{"extra observed headers ignored", map[string][]string{"Content-Type": {"application/json"}, "X-Extra": {"1"}}, true},
		{"none", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Matches("http://x.test", &route.CallOptions{Headers: tt.headers}))
		})
	}
}

func TestHeadersMultiValue(t *testing.T) {
	m, err := NewCompiler().Compile(&route.Route{
		URL:     "*",
		Headers: map[string]string{"Accept": "text/html"},
	})
	require.NoError(t, err)

	// Any single element of a multi-value header satisfies the expectation.
	assert.True(t, m.Matches("http://x.test", &route.CallOptions{
		Headers: map[string][]string{"Accept": {"application/json", "text/html"}},
	}))

	joined, err := NewCompiler().Compile(&route.Route{
		URL:     "*",
		Headers: map[string]string{"Accept": "application/json, text/html"},
	})
	require.NoError(t, err)
	assert.True(t, joined.Matches("http://x.test", &route.CallOptions{
		Headers: map[string][]string{"Accept": {"application/json", "text/html"}},
	}))
}

func TestFunctionCriterion(t *testing.T) {
	var seenURL string
	var seenMethod string

	m, err := NewCompiler().Compile(&route.Route{
		URL: "*",
		Matcher: func(u string, opts *route.CallOptions) bool {
			seenURL = u
			if opts != nil {
				seenMethod = opts.Method
			}
			return strings.Contains(u, "allowed")
		},
	})
	require.NoError(t, err)

	assert.True(t, m.Matches("http://x.test/allowed", &route.CallOptions{Method: "POST"}))
	assert.Equal(t, "http://x.test/allowed", seenURL, "arguments pass through verbatim")
	assert.Equal(t, "POST", seenMethod)

	assert.False(t, m.Matches("http://x.test/denied", nil))
}

package route

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		route   Route
		wantErr string
	}{
		{"url only", Route{URL: "*"}, ""},
		{"matcher only", Route{Matcher: func(string, *CallOptions) bool { return true }}, ""},
		{"neither", Route{}, "url"},
		{"valid method", Route{URL: "*", Method: "post"}, ""},
		{"unknown method", Route{URL: "*", Method: "FETCH"}, "method"},
		{"invalid header name", Route{URL: "*", Headers: map[string]string{"bad header": "v"}}, "headers"},
		{"params with express url", Route{URL: "express:/users/:id", Params: map[string]string{"id": "7"}}, ""},
		{"params with glob url", Route{URL: "glob:/users/*", Params: map[string]string{"id": "7"}}, "params"},
		{"params with plain url", Route{URL: "/users/7", Params: map[string]string{"id": "7"}}, "params"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.route.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantErr, verr.Field)
		})
	}
}

func TestSplitShorthand(t *testing.T) {
	tests := []struct {
		pattern  string
		tag      string
		fragment string
		ok       bool
	}{
		{"begin:/api", "begin", "/api", true},
		{"end:.json", "end", ".json", true},
		{"glob:/api/*", "glob", "/api/*", true},
		{"express:/users/:id", "express", "/users/:id", true},
		{"path:/users", "path", "/users", true},
		{"http://x.test/api", "", "", false},
		{"/api/users", "", "", false},
		{"*", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			tag, fragment, ok := SplitShorthand(tt.pattern)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.tag, tag)
			assert.Equal(t, tt.fragment, fragment)
		})
	}
}

func TestParsedURLHref(t *testing.T) {
	u, err := url.Parse("http://x.test/api")
	require.NoError(t, err)

	assert.Equal(t, "http://x.test/api", ParsedURL{URL: u}.Href())
	assert.Equal(t, "", ParsedURL{}.Href())
}

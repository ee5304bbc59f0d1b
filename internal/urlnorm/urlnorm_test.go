package urlnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare host unchanged", "http://x.test", "http://x.test"},
		{"root slash dropped", "http://x.test/", "http://x.test"},
		{"trailing slash dropped", "http://x.test/api/", "http://x.test/api"},
		{"scheme and host lowered", "HTTP://X.Test/API", "http://x.test/API"},
		{"query preserved", "http://x.test/api?b=2&a=1", "http://x.test/api?b=2&a=1"},
		{"fragment dropped", "http://x.test/api#section", "http://x.test/api"},
		{"relative trailing slash", "/api/users/", "/api/users"},
		{"relative root kept", "/", "/"},
		{"relative with query", "/api/?a=1", "/api?a=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeEquivalence(t *testing.T) {
	// The pairs the matcher relies on comparing equal.
	pairs := [][2]string{
		{"http://x.test", "http://x.test/"},
		{"http://x.test/api", "http://x.test/api/"},
		{"http://X.TEST/api", "http://x.test/api"},
	}
	for _, pair := range pairs {
		assert.Equal(t, Normalize(pair[0]), Normalize(pair[1]), "%s vs %s", pair[0], pair[1])
	}
}

func TestPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://x.test/users/7?page=2", "/users/7"},
		{"http://x.test", ""},
		{"/users/7", "/users/7"},
		{"/users/7#frag", "/users/7"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Path(tt.in))
		})
	}
}

func TestQuery(t *testing.T) {
	q := Query("http://x.test/api?tags=a&tags=b&page=2")
	assert.Equal(t, []string{"a", "b"}, q["tags"])
	assert.Equal(t, "2", q.Get("page"))

	assert.Empty(t, Query("http://x.test/api"))
}

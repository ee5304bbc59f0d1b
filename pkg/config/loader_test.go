package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileSingleRoute(t *testing.T) {
	path := writeFile(t, t.TempDir(), "route.yaml", `
id: get-user
url: express:/users/:id
method: get
params:
  id: "7"
`)

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	assert.Equal(t, "get-user", loaded[0].ID)
	assert.Equal(t, path, loaded[0].Source)
	assert.Equal(t, "express:/users/:id", loaded[0].Route.URL)
	assert.Equal(t, map[string]string{"id": "7"}, loaded[0].Route.Params)
}

func TestLoadFileRoutesKey(t *testing.T) {
	path := writeFile(t, t.TempDir(), "routes.yaml", `
routes:
  - id: all
    url: "*"
  - url: begin:/api
    method: post
    body:
      a: 1
    matchPartialBody: true
`)

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, "all", loaded[0].ID)
	assert.NotEmpty(t, loaded[1].ID, "missing IDs are generated")
	assert.True(t, loaded[1].Route.MatchPartialBody)
	assert.NotNil(t, loaded[1].Route.Body)
}

func TestLoadFileTopLevelList(t *testing.T) {
	path := writeFile(t, t.TempDir(), "routes.yaml", `
- url: "*"
- url: path:/health
`)

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, loaded, 2)
}

func TestLoadFileMatcherExpr(t *testing.T) {
	path := writeFile(t, t.TempDir(), "route.yaml", `
id: expr-route
url: "*"
matcherExpr: method == "post"
`)

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.NotNil(t, loaded[0].Route.Matcher)
	assert.False(t, loaded[0].Route.Matcher("http://x.test", nil))
}

func TestLoadFileInvalidExpression(t *testing.T) {
	path := writeFile(t, t.TempDir(), "route.yaml", `
url: "*"
matcherExpr: "method =="
`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "routes[0]")
}

func TestLoadFileValidation(t *testing.T) {
	path := writeFile(t, t.TempDir(), "route.yaml", `
url: glob:/users/*
params:
  id: "7"
`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "params")
}

func TestLoadFileEnvExpansion(t *testing.T) {
	t.Setenv("ROUTEMOCK_TEST_HOST", "http://x.test")
	path := writeFile(t, t.TempDir(), "route.yaml", `
url: ${ROUTEMOCK_TEST_HOST}/api
`)

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "http://x.test/api", loaded[0].Route.URL)
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	empty := writeFile(t, dir, "empty.yaml", "")
	_, err = LoadFile(empty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")

	bad := writeFile(t, dir, "bad.yaml", "url: [unterminated")
	_, err = LoadFile(bad)
	require.Error(t, err)
}

func TestLoadGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", `url: "*"`)
	writeFile(t, dir, "b.yaml", `url: path:/health`)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	writeFile(t, filepath.Join(dir, "nested"), "c.yaml", `url: begin:/api`)

	loaded, err := LoadGlob(filepath.Join(dir, "**", "*.yaml"))
	require.NoError(t, err)
	assert.Len(t, loaded, 3)

	// A bare path with no metacharacters loads as a single file.
	loaded, err = LoadGlob(filepath.Join(dir, "a.yaml"))
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunShowPrintsFrontMatter(t *testing.T) {
	cmd, out, _ := setupTest(t)
	path := writeDoc(t, "---\ntitle: Post\ndraft: true\n---\nbody\n")

	require.NoError(t, runShow(cmd, []string{path}))

	assert.Contains(t, out.String(), "title: Post")
	assert.Contains(t, out.String(), "draft: true")
	assert.NotContains(t, out.String(), "body")
}

func TestRunShowJSON(t *testing.T) {
	cmd, out, _ := setupTest(t)
	showJSON = true
	t.Cleanup(func() { showJSON = false })
	path := writeDoc(t, "---\ntitle: Post\ntags:\n  - go\n---\n")

	require.NoError(t, runShow(cmd, []string{path}))

	var m map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &m))
	assert.Equal(t, "Post", m["title"])
	assert.Equal(t, []any{"go"}, m["tags"])
}

func TestRunShowNoFrontMatter(t *testing.T) {
	cmd, out, _ := setupTest(t)
	path := writeDoc(t, "just a body\n")

	require.NoError(t, runShow(cmd, []string{path}))
	assert.Contains(t, out.String(), "has no front matter")
}

func TestRunShowJSONNoFrontMatter(t *testing.T) {
	cmd, out, _ := setupTest(t)
	showJSON = true
	t.Cleanup(func() { showJSON = false })
	path := writeDoc(t, "just a body\n")

	require.NoError(t, runShow(cmd, []string{path}))
	assert.Equal(t, "{}\n", out.String())
}

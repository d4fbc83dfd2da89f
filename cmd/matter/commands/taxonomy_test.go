package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jthorne/matter/internal/front"
)

func TestRunTaxonomyMergesTags(t *testing.T) {
	cmd, out, _ := setupTest(t)
	path := writeDoc(t, "---\ntitle: Post\ntags:\n  - go\n---\n")
	fileFlag = path

	require.NoError(t, runTaxonomy(cmd, []string{"unix", "go"}, front.KeyTags))

	content := readDoc(t, path)
	assert.Contains(t, content, "- go")
	assert.Contains(t, content, "- unix")
	assert.Equal(t, 1, strings.Count(content, "- go"))
	assert.Contains(t, out.String(), "Updated tags")
}

func TestRunTaxonomyCreatesCategoriesList(t *testing.T) {
	cmd, _, _ := setupTest(t)
	path := writeDoc(t, "---\ntitle: Post\n---\n")
	fileFlag = path

	require.NoError(t, runTaxonomy(cmd, []string{"essays"}, front.KeyCategories))

	content := readDoc(t, path)
	assert.Contains(t, content, "categories:")
	assert.Contains(t, content, "- essays")
}

func TestRunTaxonomyEmptyVocabularyNotice(t *testing.T) {
	cmd, out, _ := setupTest(t)
	original := "---\ntitle: Post\n---\n"
	path := writeDoc(t, original)
	fileFlag = path

	require.NoError(t, runTaxonomy(cmd, nil, front.KeyTags))

	assert.Equal(t, original, readDoc(t, path))
	assert.Contains(t, out.String(), "No tags vocabulary configured")
}

func TestRunTaxonomySelectorFallback(t *testing.T) {
	cmd, _, _ := setupTest(t)
	cfg.Taxonomy.Tags = []string{"go", "unix", "zsh"}
	path := writeDoc(t, "---\ntitle: Post\n---\n")
	fileFlag = path
	cmd.SetIn(strings.NewReader("1,3\n"))

	require.NoError(t, runTaxonomy(cmd, nil, front.KeyTags))

	content := readDoc(t, path)
	assert.Contains(t, content, "- go")
	assert.Contains(t, content, "- zsh")
	assert.NotContains(t, content, "- unix")
}

func TestRunTaxonomySelectorCancelled(t *testing.T) {
	cmd, out, _ := setupTest(t)
	cfg.Taxonomy.Tags = []string{"go"}
	original := "---\ntitle: Post\n---\n"
	path := writeDoc(t, original)
	fileFlag = path
	cmd.SetIn(strings.NewReader("\n"))

	require.NoError(t, runTaxonomy(cmd, nil, front.KeyTags))

	assert.Equal(t, original, readDoc(t, path))
	assert.Contains(t, out.String(), "Cancelled")
}

func TestRunTaxonomyFilterModeCannotPrompt(t *testing.T) {
	cmd, _, _ := setupTest(t)
	cfg.Taxonomy.Tags = []string{"go"}
	fileFlag = "-"
	cmd.SetIn(strings.NewReader("---\ntitle: Post\n---\n"))

	err := runTaxonomy(cmd, nil, front.KeyTags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filter mode")
}

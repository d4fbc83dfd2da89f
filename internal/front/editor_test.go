package front

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jthorne/matter/internal/config"
	"github.com/jthorne/matter/internal/document"
	"github.com/jthorne/matter/internal/errors"
	"github.com/jthorne/matter/internal/logging"
)

var frozen = time.Date(2026, time.August, 28, 14, 30, 45, 123456789, time.UTC)

func newEditor(t *testing.T, mutate func(*config.Config)) *Editor {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	e := NewEditor(cfg, logging.ForTest(t))
	e.Now = func() time.Time { return frozen }
	return e
}

func parseDoc(t *testing.T, content string) *document.Document {
	t.Helper()
	doc, err := document.Read(strings.NewReader(content))
	require.NoError(t, err)
	return doc
}

func TestNilDocumentIsNoOp(t *testing.T) {
	e := newEditor(t, nil)

	require.NoError(t, e.InsertTags(nil, []string{"go"}))
	require.NoError(t, e.InsertCategories(nil, []string{"notes"}))
	require.NoError(t, e.SetDate(nil))
	require.NoError(t, e.EnsureCreated(nil))
	require.NoError(t, e.TouchModified(nil))
	require.NoError(t, e.ApplySaveHooks(nil))
	require.NoError(t, e.GenerateSlug(nil))

	state, err := e.ToggleDraft(nil)
	require.NoError(t, err)
	assert.False(t, state)
}

func TestInsertTagsUnion(t *testing.T) {
	e := newEditor(t, nil)
	doc := parseDoc(t, "---\ntags:\n  - go\n  - cli\n---\nbody\n")

	require.NoError(t, e.InsertTags(doc, []string{"cli", "unix", "go", "tools"}))

	tags, ok := doc.Matter.GetStringList(KeyTags)
	require.True(t, ok)
	assert.Equal(t, []string{"go", "cli", "unix", "tools"}, tags)
}

func TestInsertTagsEmptyValuesIsNoOp(t *testing.T) {
	e := newEditor(t, nil)
	doc := parseDoc(t, "no front matter\n")

	require.NoError(t, e.InsertTags(doc, nil))
	assert.Nil(t, doc.Matter)
}

func TestInsertCategoriesSynthesizesBlock(t *testing.T) {
	e := newEditor(t, nil)
	doc := parseDoc(t, "just a body\n")

	require.NoError(t, e.InsertCategories(doc, []string{"notes"}))

	cats, ok := doc.Matter.GetStringList(KeyCategories)
	require.True(t, ok)
	assert.Equal(t, []string{"notes"}, cats)
}

func TestSetDateNativeTimestamp(t *testing.T) {
	e := newEditor(t, nil)
	doc := parseDoc(t, "---\ntitle: Post\n---\n")

	require.NoError(t, e.SetDate(doc))

	out, err := doc.Encode()
	require.NoError(t, err)
	// Native timestamps carry second precision, no fractional part.
	assert.Contains(t, string(out), "date: 2026-08-28T14:30:45Z")
}

func TestSetDateFormatted(t *testing.T) {
	e := newEditor(t, func(c *config.Config) { c.Date.Format = "YYYY-MM-DD" })
	doc := parseDoc(t, "---\ntitle: Post\n---\n")

	require.NoError(t, e.SetDate(doc))

	date, ok := doc.Matter.GetString("date")
	require.True(t, ok)
	assert.Equal(t, "2026-08-28", date)
}

func TestSetDateInvalidFormatFallsBack(t *testing.T) {
	e := newEditor(t, func(c *config.Config) { c.Date.Format = "YYYY-QQ" })
	doc := parseDoc(t, "---\ntitle: Post\n---\n")

	// The invalid format is surfaced as a warning, not an error.
	require.NoError(t, e.SetDate(doc))

	out, err := doc.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(out), "2026-08-28T14:30:45Z")
}

func TestEnsureCreatedNeverOverwrites(t *testing.T) {
	e := newEditor(t, nil)
	doc := parseDoc(t, "---\ndate: 2020-01-01\n---\n")

	require.NoError(t, e.EnsureCreated(doc))

	date, ok := doc.Matter.GetString("date")
	require.True(t, ok)
	assert.Equal(t, "2020-01-01", date)
}

func TestEnsureCreatedStampsWhenAbsent(t *testing.T) {
	e := newEditor(t, func(c *config.Config) { c.Date.Format = "YYYY-MM-DD" })
	doc := parseDoc(t, "---\ntitle: Post\n---\n")

	require.NoError(t, e.EnsureCreated(doc))

	date, ok := doc.Matter.GetString("date")
	require.True(t, ok)
	assert.Equal(t, "2026-08-28", date)
}

func TestTouchModifiedAlwaysStamps(t *testing.T) {
	e := newEditor(t, func(c *config.Config) { c.Date.Format = "YYYY-MM-DD HH:mm:ss" })
	doc := parseDoc(t, "---\nlastmod: 2020-01-01\n---\n")

	require.NoError(t, e.TouchModified(doc))

	mod, ok := doc.Matter.GetString("lastmod")
	require.True(t, ok)
	assert.Equal(t, "2026-08-28 14:30:45", mod)
}

func TestApplySaveHooks(t *testing.T) {
	e := newEditor(t, func(c *config.Config) { c.Date.Format = "YYYY-MM-DD" })
	doc := parseDoc(t, "---\ndate: 2020-01-01\n---\n")

	require.NoError(t, e.ApplySaveHooks(doc))

	date, _ := doc.Matter.GetString("date")
	assert.Equal(t, "2020-01-01", date, "created hook must not overwrite")

	mod, ok := doc.Matter.GetString("lastmod")
	require.True(t, ok)
	assert.Equal(t, "2026-08-28", mod)
}

func TestApplySaveHooksDisabled(t *testing.T) {
	e := newEditor(t, func(c *config.Config) {
		c.Save.CreateDate = false
		c.Save.UpdateModified = false
	})
	doc := parseDoc(t, "---\ntitle: Post\n---\n")

	require.NoError(t, e.ApplySaveHooks(doc))

	assert.False(t, doc.Matter.Has("date"))
	assert.False(t, doc.Matter.Has("lastmod"))
}

func TestApplySaveHooksCustomFields(t *testing.T) {
	e := newEditor(t, func(c *config.Config) {
		c.Fields.Created = "created"
		c.Fields.Modified = "updated"
		c.Date.Format = "YYYY-MM-DD"
	})
	doc := parseDoc(t, "---\ntitle: Post\n---\n")

	require.NoError(t, e.ApplySaveHooks(doc))

	assert.True(t, doc.Matter.Has("created"))
	assert.True(t, doc.Matter.Has("updated"))
}

func TestGenerateSlugFromTitle(t *testing.T) {
	e := newEditor(t, nil)
	doc := parseDoc(t, "---\ntitle: Hello World\n---\n")

	require.NoError(t, e.GenerateSlug(doc))

	s, ok := doc.Matter.GetString(KeySlug)
	require.True(t, ok)
	assert.Equal(t, "hello-world", s)
}

func TestGenerateSlugPrefixSuffix(t *testing.T) {
	e := newEditor(t, func(c *config.Config) {
		c.Slug.Prefix = "posts/"
		c.Slug.Suffix = "-draft"
	})
	doc := parseDoc(t, "---\ntitle: Hello World\n---\n")

	require.NoError(t, e.GenerateSlug(doc))

	s, ok := doc.Matter.GetString(KeySlug)
	require.True(t, ok)
	assert.Equal(t, "posts/hello-world-draft", s)
}

func TestGenerateSlugFallsBackToHeading(t *testing.T) {
	e := newEditor(t, nil)
	doc := parseDoc(t, "# A Fine Heading\n\nbody\n")

	require.NoError(t, e.GenerateSlug(doc))

	s, ok := doc.Matter.GetString(KeySlug)
	require.True(t, ok)
	assert.Equal(t, "a-fine-heading", s)
}

func TestGenerateSlugNoTitle(t *testing.T) {
	e := newEditor(t, nil)
	doc := parseDoc(t, "no heading at all\n")

	err := e.GenerateSlug(doc)
	require.ErrorIs(t, err, errors.ErrNoTitle)
}

func TestToggleDraft(t *testing.T) {
	e := newEditor(t, nil)
	doc := parseDoc(t, "---\ntitle: Post\n---\n")

	// Absent field reads as false, first toggle yields true.
	state, err := e.ToggleDraft(doc)
	require.NoError(t, err)
	assert.True(t, state)

	state, err = e.ToggleDraft(doc)
	require.NoError(t, err)
	assert.False(t, state)

	v, ok := doc.Matter.GetBool(KeyDraft)
	require.True(t, ok)
	assert.False(t, v)
}

// Package front implements the front matter operations behind the matter
// commands: taxonomy insertion, date stamping, slug generation, draft
// toggling, and the save-hook pipeline.
//
// Every operation follows the same shape: guard clauses, a small transform
// on the document's front matter block, done. Operations on a nil document
// are no-ops; the caller decides how to report "nothing to do".
package front

import (
	"log/slog"
	"time"

	slug "github.com/goliatone/go-slug"

	"github.com/jthorne/matter/internal/config"
	"github.com/jthorne/matter/internal/dateformat"
	"github.com/jthorne/matter/internal/document"
	"github.com/jthorne/matter/internal/errors"
	"github.com/jthorne/matter/internal/markdown"
)

// Front matter keys with fixed names. The created/modified field names come
// from configuration instead.
const (
	KeyTitle      = "title"
	KeySlug       = "slug"
	KeyDraft      = "draft"
	KeyTags       = "tags"
	KeyCategories = "categories"
)

// Editor applies front matter operations according to its configuration.
type Editor struct {
	cfg *config.Config
	log *slog.Logger

	// Now supplies timestamps; overridable in tests.
	Now func() time.Time
}

// NewEditor creates an Editor. A nil logger falls back to slog.Default.
func NewEditor(cfg *config.Config, log *slog.Logger) *Editor {
	if log == nil {
		log = slog.Default()
	}
	return &Editor{cfg: cfg, log: log, Now: time.Now}
}

// InsertTags merges values into the document's tags list.
func (e *Editor) InsertTags(doc *document.Document, values []string) error {
	return e.insertTaxonomy(doc, KeyTags, values)
}

// InsertCategories merges values into the document's categories list.
func (e *Editor) InsertCategories(doc *document.Document, values []string) error {
	return e.insertTaxonomy(doc, KeyCategories, values)
}

// insertTaxonomy performs a set union: existing values keep their order,
// new values are appended in the order given, duplicates are dropped.
func (e *Editor) insertTaxonomy(doc *document.Document, key string, values []string) error {
	if doc == nil || len(values) == 0 {
		return nil
	}

	matter := doc.EnsureMatter()
	existing, _ := matter.GetStringList(key)

	seen := make(map[string]bool, len(existing)+len(values))
	merged := make([]string, 0, len(existing)+len(values))
	for _, v := range existing {
		if !seen[v] {
			seen[v] = true
			merged = append(merged, v)
		}
	}
	for _, v := range values {
		if v != "" && !seen[v] {
			seen[v] = true
			merged = append(merged, v)
		}
	}

	e.log.Debug("merged taxonomy", "key", key, "count", len(merged))
	return matter.Set(key, merged)
}

// SetDate stamps the created field with the current time, formatted per the
// configured date format.
func (e *Editor) SetDate(doc *document.Document) error {
	if doc == nil {
		return nil
	}
	return e.stamp(doc, e.cfg.Fields.Created)
}

// EnsureCreated stamps the created field only if it is absent.
// An existing value is never overwritten.
func (e *Editor) EnsureCreated(doc *document.Document) error {
	if doc == nil {
		return nil
	}
	if doc.Matter != nil && doc.Matter.Has(e.cfg.Fields.Created) {
		return nil
	}
	return e.stamp(doc, e.cfg.Fields.Created)
}

// TouchModified stamps the modified field with the current time.
func (e *Editor) TouchModified(doc *document.Document) error {
	if doc == nil {
		return nil
	}
	return e.stamp(doc, e.cfg.Fields.Modified)
}

// ApplySaveHooks runs the save pipeline: the created-date hook and the
// modified-date hook, each subject to its config toggle.
func (e *Editor) ApplySaveHooks(doc *document.Document) error {
	if doc == nil {
		return nil
	}
	if e.cfg.Save.CreateDate {
		if err := e.EnsureCreated(doc); err != nil {
			return err
		}
	}
	if e.cfg.Save.UpdateModified {
		if err := e.TouchModified(doc); err != nil {
			return err
		}
	}
	return nil
}

// stamp writes the current time under field. An invalid configured format is
// the one recoverable error path: it is reported and the stamp falls back to
// a native timestamp, so a surrounding save never aborts over it.
func (e *Editor) stamp(doc *document.Document, field string) error {
	now := e.Now()
	matter := doc.EnsureMatter()

	format := e.cfg.Date.Format
	if format != "" {
		formatted, err := dateformat.Format(now, format)
		if err == nil {
			return matter.Set(field, formatted)
		}
		e.log.Warn("invalid date format, falling back to native timestamp",
			"format", format, "error", err)
	}

	return matter.Set(field, now.Truncate(time.Second))
}

// GenerateSlug derives the slug field from the title: prefix + slug + suffix.
// When the front matter has no title, the first markdown heading serves as
// the title. Returns ErrNoTitle when neither exists.
func (e *Editor) GenerateSlug(doc *document.Document) error {
	if doc == nil {
		return nil
	}

	title := ""
	if doc.Matter != nil {
		title, _ = doc.Matter.GetString(KeyTitle)
	}
	if title == "" {
		title = markdown.FirstHeading(doc.Body)
	}
	if title == "" {
		return errors.ErrNoTitle
	}

	normalized, err := slug.Normalize(title)
	if err != nil {
		return errors.Wrapf(err, "slugifying %q", title)
	}

	value := e.cfg.Slug.Prefix + normalized + e.cfg.Slug.Suffix
	e.log.Debug("generated slug", "title", title, "slug", value)
	return doc.EnsureMatter().Set(KeySlug, value)
}

// ToggleDraft inverts the draft flag and returns the new state.
// An absent field reads as false, so the first toggle yields true.
func (e *Editor) ToggleDraft(doc *document.Document) (bool, error) {
	if doc == nil {
		return false, nil
	}

	matter := doc.EnsureMatter()
	current, _ := matter.GetBool(KeyDraft)
	next := !current
	return next, matter.Set(KeyDraft, next)
}

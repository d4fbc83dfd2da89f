package commands

import (
	"github.com/spf13/cobra"

	"github.com/jthorne/matter/internal/errors"
	"github.com/jthorne/matter/internal/front"
)

func init() {
	rootCmd.AddCommand(slugCmd)
}

var slugCmd = &cobra.Command{
	Use:   "slug [file]",
	Short: "Generate the slug from the title",
	Long: `Derive the document's slug field from its title field, as
slug.prefix + slugified title + slug.suffix.

A document without a title field falls back to the first markdown heading
of the body. With neither, nothing happens.`,
	Example: `  matter slug content/posts/hello.md

  # With slug.prefix "posts/" and title "Hello World":
  #   slug: posts/hello-world

  See Also:
    matter show  - Inspect the resulting front matter`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSlug,
}

func runSlug(cmd *cobra.Command, args []string) error {
	doc, err := resolveDoc(cmd, args)
	if err != nil || doc == nil {
		return err
	}

	if err := newEngine().GenerateSlug(doc); err != nil {
		if errors.Is(err, errors.ErrNoTitle) {
			notef(cmd, doc, "No title to derive a slug from in %s.", describe(doc))
			return nil
		}
		return err
	}
	if err := flush(cmd, doc); err != nil {
		return err
	}

	value, _ := doc.Matter.GetString(front.KeySlug)
	notef(cmd, doc, "Slug of %s is now %q.", describe(doc), value)
	return nil
}

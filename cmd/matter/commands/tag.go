package commands

import (
	"github.com/spf13/cobra"

	"github.com/jthorne/matter/internal/front"
)

func init() {
	rootCmd.AddCommand(tagCmd)
}

var tagCmd = &cobra.Command{
	Use:   "tag [values...]",
	Short: "Insert tags into the front matter",
	Long: `Insert one or more tags into the document's tags list.

Tags given as arguments are merged into the existing list: duplicates are
dropped and the existing order is kept. Without arguments, a picker offers
the vocabulary configured under taxonomy.tags.

The target document comes from -f/--file or MATTER_FILE.`,
	Example: `  # Merge two tags into a post
  matter tag go unix -f content/posts/hello.md

  # Pick interactively from the configured vocabulary
  matter tag -f content/posts/hello.md

  See Also:
    matter category  - Insert categories
    matter config    - Show the configured vocabulary`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTaxonomy(cmd, args, front.KeyTags)
	},
}

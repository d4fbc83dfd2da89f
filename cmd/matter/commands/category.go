package commands

import (
	"github.com/spf13/cobra"

	"github.com/jthorne/matter/internal/front"
)

func init() {
	rootCmd.AddCommand(categoryCmd)
}

var categoryCmd = &cobra.Command{
	Use:     "category [values...]",
	Aliases: []string{"cat"},
	Short:   "Insert categories into the front matter",
	Long: `Insert one or more categories into the document's categories list.

Works exactly like tag insertion: arguments are merged as a set union, and
without arguments a picker offers the vocabulary configured under
taxonomy.categories.

The target document comes from -f/--file or MATTER_FILE.`,
	Example: `  # File a post under two categories
  matter category notes unix -f content/posts/hello.md

  # Pick interactively
  matter category -f content/posts/hello.md

  See Also:
    matter tag  - Insert tags`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTaxonomy(cmd, args, front.KeyCategories)
	},
}

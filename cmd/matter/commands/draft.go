package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(draftCmd)
}

var draftCmd = &cobra.Command{
	Use:   "draft [file]",
	Short: "Toggle the draft flag",
	Long: `Invert the document's draft boolean.

A document without a draft field counts as published (false), so the
first toggle marks it as a draft.`,
	Example: `  matter draft content/posts/hello.md

  See Also:
    matter show  - Inspect the front matter`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDraft,
}

func runDraft(cmd *cobra.Command, args []string) error {
	doc, err := resolveDoc(cmd, args)
	if err != nil || doc == nil {
		return err
	}

	state, err := newEngine().ToggleDraft(doc)
	if err != nil {
		return err
	}
	if err := flush(cmd, doc); err != nil {
		return err
	}

	if state {
		notef(cmd, doc, "%s is now a draft.", describe(doc))
	} else {
		notef(cmd, doc, "%s is no longer a draft.", describe(doc))
	}
	return nil
}

package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(saveCmd)
}

var saveCmd = &cobra.Command{
	Use:   "save [file]",
	Short: "Run the pre-save hooks and write the document back",
	Long: `Apply the save pipeline to the document:

  - stamp the created field if absent (save.create_date)
  - stamp the modified field        (save.update_modified)

Each hook is subject to its config toggle. An existing created field is
never overwritten. Bind this command to your editor's pre-save hook so
the stamped document is flushed as part of the same save.`,
	Example: `  matter save content/posts/hello.md

  # vim: rewrite the buffer in place before writing
  #   autocmd BufWritePre *.md silent %!matter save -f -

  See Also:
    matter date    - Stamp the date field on demand
    matter config  - Show the active hook toggles`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSave,
}

func runSave(cmd *cobra.Command, args []string) error {
	doc, err := resolveDoc(cmd, args)
	if err != nil || doc == nil {
		return err
	}

	if err := newEngine().ApplySaveHooks(doc); err != nil {
		return err
	}
	if err := flush(cmd, doc); err != nil {
		return err
	}

	notef(cmd, doc, "Saved %s.", describe(doc))
	return nil
}

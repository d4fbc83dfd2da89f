package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(dateCmd)
}

var dateCmd = &cobra.Command{
	Use:   "date [file]",
	Short: "Stamp the date field with the current time",
	Long: `Set the document's date field (fields.created, default "date") to the
current time.

With date.format configured, the value is a string in that format;
otherwise it is a native timestamp. An invalid format is reported and the
stamp falls back to a native timestamp.`,
	Example: `  matter date content/posts/hello.md

  # As a buffer filter
  matter date -f - < buffer.md

  See Also:
    matter save  - Stamp created/modified as part of a save`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDate,
}

func runDate(cmd *cobra.Command, args []string) error {
	doc, err := resolveDoc(cmd, args)
	if err != nil || doc == nil {
		return err
	}

	if err := newEngine().SetDate(doc); err != nil {
		return err
	}
	if err := flush(cmd, doc); err != nil {
		return err
	}

	notef(cmd, doc, "Stamped %s field of %s.", cfg.Fields.Created, describe(doc))
	return nil
}

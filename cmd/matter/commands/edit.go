package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jthorne/matter/internal/document"
	"github.com/jthorne/matter/internal/editor"
	"github.com/jthorne/matter/internal/errors"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Open the document in $EDITOR",
	Long: `Open the target document in your preferred editor.

Uses the $EDITOR environment variable, falling back to $VISUAL, then
nano, then vi.`,
	Example: `  matter edit content/posts/hello.md

  See Also:
    matter show  - Inspect the front matter without opening an editor`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	target := document.Target(fileFlag, args)
	if target == "" {
		notef(cmd, nil, "No document: pass a file, use --file, or set %s.", document.EnvFile)
		return nil
	}
	if target == document.Stdin {
		return errors.NewUserError(errors.New("cannot edit stdin"), "Pass a file path")
	}

	if _, err := os.Stat(target); err != nil {
		return errors.Wrapf(err, "opening %s", target)
	}

	notef(cmd, nil, "Location: %s", target)
	return editor.Open(target)
}

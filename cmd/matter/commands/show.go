package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Display the document's front matter",
	Long: `Print the document's front matter block without the body.

Useful for checking what an operation changed, or feeding the metadata to
other tools with --json.`,
	Example: `  matter show content/posts/hello.md
  matter show content/posts/hello.md --json

  See Also:
    matter config  - Show the effective configuration`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	doc, err := resolveDoc(cmd, args)
	if err != nil || doc == nil {
		return err
	}

	w := cmd.OutOrStdout()

	if doc.Matter == nil {
		if showJSON {
			fmt.Fprintln(w, "{}")
			return nil
		}
		notef(cmd, doc, "%s has no front matter.", describe(doc))
		return nil
	}

	if showJSON {
		m, err := doc.Matter.Map()
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	out, err := doc.Matter.Encode(nil)
	if err != nil {
		return err
	}

	heading := color.New(color.FgCyan, color.Bold)
	heading.Fprintf(w, "%s (%s)\n", describe(doc), doc.Matter.Syntax())
	fmt.Fprint(w, strings.TrimSuffix(string(out), "\n")+"\n")
	return nil
}

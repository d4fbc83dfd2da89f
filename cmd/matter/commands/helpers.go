package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jthorne/matter/internal/document"
	"github.com/jthorne/matter/internal/front"
)

// newEngine builds the operations engine from the loaded configuration.
func newEngine() *front.Editor {
	return front.NewEditor(cfg, slog.Default())
}

// resolveDoc loads the command's target document from the positional
// argument, the --file flag, or MATTER_FILE. A nil document with a nil
// error means there is no active document; the command is a no-op.
func resolveDoc(cmd *cobra.Command, args []string) (*document.Document, error) {
	target := document.Target(fileFlag, args)
	if target == "" {
		notef(cmd, nil, "No document: pass a file, use --file, or set %s.", document.EnvFile)
		return nil, nil
	}

	if target == document.Stdin {
		return document.Read(cmd.InOrStdin())
	}
	return document.Load(target)
}

// flush writes the mutated document back: stdout in filter mode, atomically
// in place otherwise (preceded by a backup when configured).
func flush(cmd *cobra.Command, doc *document.Document) error {
	if doc.Path == "" {
		return doc.WriteTo(cmd.OutOrStdout())
	}

	if cfg != nil && cfg.Backup.Enabled {
		backupPath, err := document.Backup(doc.Path)
		if err != nil {
			return err
		}
		slog.Debug("wrote backup", "path", backupPath)
	}

	return doc.Save()
}

// notef prints a user-facing notice. In filter mode stdout carries the
// document, so notices go to stderr there.
func notef(cmd *cobra.Command, doc *document.Document, format string, args ...any) {
	if quiet {
		return
	}
	out := cmd.OutOrStdout()
	if doc != nil && doc.Path == "" {
		out = cmd.ErrOrStderr()
	}
	fmt.Fprintf(out, format+"\n", args...)
}

// describe names the document for notices.
func describe(doc *document.Document) string {
	if doc.Path == "" {
		return "document"
	}
	return doc.Path
}

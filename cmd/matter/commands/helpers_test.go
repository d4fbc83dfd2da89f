package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/jthorne/matter/internal/config"
	"github.com/jthorne/matter/internal/document"
)

// setupTest isolates the package-level command state and returns a command
// wired to buffers.
func setupTest(t *testing.T) (cmd *cobra.Command, out, errOut *bytes.Buffer) {
	t.Helper()

	oldCfg, oldFile, oldQuiet := cfg, fileFlag, quiet
	t.Cleanup(func() {
		cfg, fileFlag, quiet = oldCfg, oldFile, oldQuiet
	})
	cfg = config.Default()
	fileFlag = ""
	quiet = false
	t.Setenv(document.EnvFile, "")

	cmd = &cobra.Command{}
	out = &bytes.Buffer{}
	errOut = &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd, out, errOut
}

// writeDoc creates a document fixture and returns its path.
func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "post.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// readDoc reads a fixture back.
func readDoc(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

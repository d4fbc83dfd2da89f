// Package paths resolves filesystem locations used by the matter CLI.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// ConfigHome returns the base directory for user configuration files,
// following the XDG Base Directory specification.
func ConfigHome() string {
	return xdg.ConfigHome
}

// AppConfigDir returns the configuration directory for the given application
// name under the XDG config home.
func AppConfigDir(app string) string {
	return filepath.Join(xdg.ConfigHome, app)
}

// Home returns the user's home directory.
// This is a thin wrapper around os.UserHomeDir for consistency.
func Home() (string, error) {
	return os.UserHomeDir()
}

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

package document

import (
	"os"
	"time"

	"github.com/jthorne/matter/internal/errors"
)

// backupStamp is the timestamp layout embedded in backup file names.
const backupStamp = "20060102T150405"

// Backup copies the file at path to a timestamped sibling
// (<path>.<timestamp>.bak) and returns the backup path.
// Mode bits are preserved.
func Backup(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", errors.Wrapf(err, "stat %s", path)
	}

	dst := path + "." + time.Now().Format(backupStamp) + ".bak"
	if err := os.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return "", errors.Wrapf(err, "writing backup %s", dst)
	}
	return dst, nil
}

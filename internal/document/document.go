// Package document models the document a matter operation targets: a file
// (or stdin) holding an optional front matter block and a markdown body.
//
// Documents are transient. Every invocation reconstructs the document from
// its source, mutates the block, and writes the result back; nothing is
// kept between invocations.
package document

import (
	"io"
	"os"
	"path/filepath"

	"github.com/jthorne/matter/internal/errors"
	"github.com/jthorne/matter/pkg/frontmatter"
)

// EnvFile is the environment variable editor integrations set to point at
// the active buffer's path.
const EnvFile = "MATTER_FILE"

// Stdin is the pseudo-path selecting filter mode: read the document from
// stdin, write the mutated document to stdout.
const Stdin = "-"

// Document is a front matter block paired with the body it was parsed from.
// Matter is nil when the source has no front matter block.
type Document struct {
	Path   string
	Matter *frontmatter.Block
	Body   []byte

	mode os.FileMode
}

// Target resolves the active document path: an explicit flag value wins,
// then a positional argument, then the MATTER_FILE environment variable.
// An empty result means there is no active document.
func Target(flagPath string, args []string) string {
	if flagPath != "" {
		return flagPath
	}
	if len(args) > 0 {
		return args[0]
	}
	return os.Getenv(EnvFile)
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}

	doc, err := parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	doc.Path = path
	doc.mode = info.Mode().Perm()
	return doc, nil
}

// Read parses a document from r (filter mode). The document has no path.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading document")
	}
	return parse(data)
}

func parse(data []byte) (*Document, error) {
	matter, body, err := frontmatter.Parse(data)
	if err != nil {
		return nil, err
	}
	return &Document{Matter: matter, Body: body}, nil
}

// EnsureMatter returns the document's block, synthesizing an empty YAML
// block if the document has none yet.
func (d *Document) EnsureMatter() *frontmatter.Block {
	if d.Matter == nil {
		d.Matter = frontmatter.New()
	}
	return d.Matter
}

// Encode renders the full document: front matter block (if any) plus body.
func (d *Document) Encode() ([]byte, error) {
	if d.Matter == nil {
		return d.Body, nil
	}
	return d.Matter.Encode(d.Body)
}

// WriteTo encodes the document to w.
func (d *Document) WriteTo(w io.Writer) error {
	data, err := d.Encode()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "writing document")
}

// Save writes the document back to its path atomically: the encoded bytes
// go to a temp file in the same directory which then replaces the original.
func (d *Document) Save() error {
	if d.Path == "" {
		return errors.New("document has no path")
	}

	data, err := d.Encode()
	if err != nil {
		return err
	}

	dir := filepath.Dir(d.Path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(d.Path)+"-*")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "writing %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "closing %s", tmpName)
	}

	mode := d.mode
	if mode == 0 {
		mode = 0o644
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "chmod %s", tmpName)
	}

	if err := os.Rename(tmpName, d.Path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "replacing %s", d.Path)
	}
	return nil
}

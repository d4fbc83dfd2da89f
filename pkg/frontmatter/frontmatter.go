package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Syntax identifies the front matter serialization in use.
type Syntax int

const (
	// SyntaxYAML is front matter delimited by "---" lines.
	SyntaxYAML Syntax = iota
	// SyntaxTOML is front matter delimited by "+++" lines.
	SyntaxTOML
)

// String returns the lowercase name of the syntax.
func (s Syntax) String() string {
	if s == SyntaxTOML {
		return "toml"
	}
	return "yaml"
}

func (s Syntax) delimiter() string {
	if s == SyntaxTOML {
		return "+++"
	}
	return "---"
}

// Sentinel errors for parse failures.
var (
	// ErrUnterminated indicates an opening delimiter with no closing one.
	ErrUnterminated = errors.New("unterminated front matter block")

	// ErrNotMapping indicates the front matter is not a key/value mapping.
	ErrNotMapping = errors.New("front matter is not a mapping")
)

// Block is a parsed front matter mapping. YAML blocks are held as a yaml.Node
// tree so key order and comments survive a rewrite; TOML blocks are converted
// through the same representation (key order is not preserved for TOML).
type Block struct {
	syntax Syntax
	node   *yaml.Node
}

// New returns an empty YAML block.
func New() *Block {
	return &Block{syntax: SyntaxYAML, node: newMapping()}
}

// Syntax returns the serialization the block was parsed from.
func (b *Block) Syntax() Syntax {
	return b.syntax
}

// Parse extracts a front matter block and body from a document.
// If the document has no front matter, the block is nil and body is the
// full input. An opening delimiter without a closing one is an error.
func Parse(data []byte) (*Block, []byte, error) {
	syntax, rest, found := detect(data)
	if !found {
		return nil, data, nil
	}

	raw, body, ok := splitAt(rest, syntax.delimiter())
	if !ok {
		return nil, nil, ErrUnterminated
	}

	block, err := decode(syntax, raw)
	if err != nil {
		return nil, nil, err
	}
	return block, body, nil
}

// detect checks for an opening delimiter on the first line and returns the
// syntax plus the content after that line.
func detect(data []byte) (Syntax, []byte, bool) {
	for _, s := range []Syntax{SyntaxYAML, SyntaxTOML} {
		d := []byte(s.delimiter())
		if bytes.HasPrefix(data, append(d, '\n')) {
			return s, data[len(d)+1:], true
		}
		if bytes.HasPrefix(data, append(d, '\r', '\n')) {
			return s, data[len(d)+2:], true
		}
	}
	return 0, nil, false
}

// splitAt finds the line equal to delim and splits data around it.
// The body is everything after the delimiter line, byte for byte.
func splitAt(data []byte, delim string) (raw, body []byte, ok bool) {
	start := 0
	for start <= len(data) {
		end := bytes.IndexByte(data[start:], '\n')
		var line []byte
		next := len(data)
		if end >= 0 {
			line = data[start : start+end]
			next = start + end + 1
		} else {
			line = data[start:]
		}

		if string(bytes.TrimRight(line, "\r")) == delim {
			return data[:start], data[next:], true
		}
		if end < 0 {
			break
		}
		start = next
	}
	return nil, nil, false
}

func decode(syntax Syntax, raw []byte) (*Block, error) {
	switch syntax {
	case SyntaxTOML:
		m := map[string]any{}
		if err := toml.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("parsing toml front matter: %w", err)
		}
		node, err := mappingFor(m)
		if err != nil {
			return nil, err
		}
		return &Block{syntax: SyntaxTOML, node: node}, nil

	default:
		var doc yaml.Node
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("parsing yaml front matter: %w", err)
		}
		if len(doc.Content) == 0 {
			return &Block{syntax: SyntaxYAML, node: newMapping()}, nil
		}
		root := doc.Content[0]
		if root.Kind != yaml.MappingNode {
			return nil, ErrNotMapping
		}
		return &Block{syntax: SyntaxYAML, node: root}, nil
	}
}

// Encode serializes the block and appends the body verbatim.
func (b *Block) Encode(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	delim := b.syntax.delimiter()

	buf.WriteString(delim)
	buf.WriteByte('\n')

	if b.Len() > 0 {
		switch b.syntax {
		case SyntaxTOML:
			m := map[string]any{}
			if err := b.node.Decode(&m); err != nil {
				return nil, fmt.Errorf("encoding toml front matter: %w", err)
			}
			payload, err := toml.Marshal(m)
			if err != nil {
				return nil, fmt.Errorf("encoding toml front matter: %w", err)
			}
			buf.Write(payload)

		default:
			enc := yaml.NewEncoder(&buf)
			enc.SetIndent(2)
			if err := enc.Encode(b.node); err != nil {
				return nil, fmt.Errorf("encoding yaml front matter: %w", err)
			}
			if err := enc.Close(); err != nil {
				return nil, fmt.Errorf("encoding yaml front matter: %w", err)
			}
		}
	}

	buf.WriteString(delim)
	buf.WriteByte('\n')
	buf.Write(body)

	return buf.Bytes(), nil
}

// Len returns the number of keys in the block.
func (b *Block) Len() int {
	return len(b.node.Content) / 2
}

// Keys returns the keys in document order.
func (b *Block) Keys() []string {
	keys := make([]string, 0, b.Len())
	for i := 0; i < len(b.node.Content); i += 2 {
		keys = append(keys, b.node.Content[i].Value)
	}
	return keys
}

// Has reports whether the key is present.
func (b *Block) Has(key string) bool {
	_, v := b.find(key)
	return v != nil
}

// GetString returns the scalar value for key.
func (b *Block) GetString(key string) (string, bool) {
	_, v := b.find(key)
	if v == nil || v.Kind != yaml.ScalarNode || v.Tag == "!!null" {
		return "", false
	}
	return v.Value, true
}

// GetBool returns the boolean value for key. Non-boolean scalars report false.
func (b *Block) GetBool(key string) (bool, bool) {
	_, v := b.find(key)
	if v == nil || v.Kind != yaml.ScalarNode {
		return false, false
	}
	switch v.Value {
	case "true", "True", "TRUE":
		return true, true
	case "false", "False", "FALSE":
		return false, true
	}
	return false, false
}

// GetStringList returns the list value for key. A scalar value is treated
// as a single-element list, matching how taxonomy fields appear in the wild.
func (b *Block) GetStringList(key string) ([]string, bool) {
	_, v := b.find(key)
	if v == nil {
		return nil, false
	}
	switch v.Kind {
	case yaml.SequenceNode:
		values := make([]string, 0, len(v.Content))
		for _, item := range v.Content {
			if item.Kind == yaml.ScalarNode {
				values = append(values, item.Value)
			}
		}
		return values, true
	case yaml.ScalarNode:
		if v.Tag == "!!null" {
			return nil, true
		}
		return []string{v.Value}, true
	}
	return nil, false
}

// Set stores a value under key, replacing any existing value and otherwise
// appending the key at the end of the mapping. The value may be any type
// yaml.v3 can marshal; time.Time becomes a native timestamp.
func (b *Block) Set(key string, value any) error {
	var vn yaml.Node
	if err := vn.Encode(value); err != nil {
		return fmt.Errorf("encoding value for %q: %w", key, err)
	}

	if i, existing := b.find(key); existing != nil {
		// Preserve comments attached to the value being replaced.
		vn.HeadComment = existing.HeadComment
		vn.LineComment = existing.LineComment
		vn.FootComment = existing.FootComment
		b.node.Content[i+1] = &vn
		return nil
	}

	var kn yaml.Node
	if err := kn.Encode(key); err != nil {
		return fmt.Errorf("encoding key %q: %w", key, err)
	}
	b.node.Content = append(b.node.Content, &kn, &vn)
	return nil
}

// Map returns the block's contents as a plain map, for display and
// serialization. Mutating the map does not affect the block.
func (b *Block) Map() (map[string]any, error) {
	m := map[string]any{}
	if len(b.node.Content) == 0 {
		return m, nil
	}
	if err := b.node.Decode(&m); err != nil {
		return nil, fmt.Errorf("decoding front matter: %w", err)
	}
	return m, nil
}

// Delete removes key from the block, reporting whether it was present.
func (b *Block) Delete(key string) bool {
	i, v := b.find(key)
	if v == nil {
		return false
	}
	b.node.Content = append(b.node.Content[:i], b.node.Content[i+2:]...)
	return true
}

// find returns the index of the key node and the value node, or (-1, nil).
func (b *Block) find(key string) (int, *yaml.Node) {
	for i := 0; i+1 < len(b.node.Content); i += 2 {
		if b.node.Content[i].Value == key {
			return i, b.node.Content[i+1]
		}
	}
	return -1, nil
}

func newMapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func mappingFor(m map[string]any) (*yaml.Node, error) {
	var n yaml.Node
	if err := n.Encode(m); err != nil {
		return nil, fmt.Errorf("converting front matter: %w", err)
	}
	if n.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}
	return &n, nil
}

// Package frontmatter parses and rewrites front matter blocks in markdown
// documents.
//
// YAML front matter is delimited by lines containing only "---"; TOML uses
// "+++". The block is held as a mapping whose entries can be read and
// mutated through typed accessors, then re-encoded in front of the original
// body.
//
// # Basic Usage
//
//	block, body, err := frontmatter.Parse(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if block == nil {
//		block = frontmatter.New()
//	}
//	block.Set("draft", true)
//	out, err := block.Encode(body)
//
// # Fidelity
//
// YAML blocks are edited at the node level: keys the caller never touches
// keep their order and comments across a rewrite. Scalar styles may be
// normalized by the encoder. TOML blocks are converted through a map, so
// their key order is not preserved.
//
// # Error Handling
//
// Sentinel errors can be checked with [errors.Is]:
//
//   - [ErrUnterminated]: an opening delimiter with no closing delimiter
//   - [ErrNotMapping]: the block parses but is not a key/value mapping
//
// A document with no front matter at all is not an error; Parse returns a
// nil block and the input as body.
package frontmatter

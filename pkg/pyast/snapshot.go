// Package pyast provides the source-level representation of a Python file
// used by the quote rewriter. It defines:
// - FileSnapshot: an immutable view of one file (content, lines, tokens, tree)
// - Token stream: classified byte spans covering the whole file
// - Node tree: statements and string literals referencing token spans
package pyast

// FileSnapshot is an immutable view of a Python source file at parse time.
// All byte offsets held by tokens and nodes are relative to Content, which
// is never mutated; rewriting always produces a new byte slice.
type FileSnapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo

	// Tokens is the token stream covering every byte of Content.
	Tokens []Token

	// Root is the tree root (Module).
	Root *Node
}

// LineInfo holds offsets for a single line.
type LineInfo struct {
	// Start is the byte index of the first byte of the line.
	Start int

	// NewlineStart is the byte index where the line terminator begins.
	// Equals End for a final line without a terminator.
	NewlineStart int

	// End is the byte index just past the line terminator.
	End int
}

// NewFileSnapshot builds a snapshot with its line index populated.
// Tokens and Root are filled in by the parser.
func NewFileSnapshot(path string, content []byte) *FileSnapshot {
	return &FileSnapshot{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}

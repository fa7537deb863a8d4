package pyast

// SourceRange is a half-open byte range into a snapshot's content.
// The zero value is the "no mapping available" sentinel: callers must
// check IsZero before using a range obtained from a node.
type SourceRange struct {
	// Start is the byte index where the range begins (inclusive).
	Start int

	// End is the byte index where the range ends (exclusive).
	End int
}

// Len returns the length of the range in bytes.
func (r SourceRange) Len() int {
	return r.End - r.Start
}

// IsZero reports whether this is the unmappable-position sentinel.
func (r SourceRange) IsZero() bool {
	return r.Start == 0 && r.End == 0
}

// Contains returns true if the given offset lies within the range.
func (r SourceRange) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Overlaps reports whether two ranges share at least one byte.
func (r SourceRange) Overlaps(other SourceRange) bool {
	return r.Start < other.End && other.Start < r.End
}

// SourceRange returns the byte range covered by this node, resolved through
// its token span. Nodes without a file or token mapping yield the zero
// sentinel.
func (n *Node) SourceRange() SourceRange {
	if n.File == nil || n.FirstToken < 0 || n.LastToken < 0 {
		return SourceRange{}
	}

	tokens := n.File.Tokens
	if n.FirstToken >= len(tokens) || n.LastToken >= len(tokens) {
		return SourceRange{}
	}

	return SourceRange{
		Start: tokens[n.FirstToken].Start,
		End:   tokens[n.LastToken].End,
	}
}

// Text returns the source bytes covered by this node, or nil when the node
// has no mapping.
func (n *Node) Text() []byte {
	if n.File == nil {
		return nil
	}
	r := n.SourceRange()
	if r.IsZero() || r.End > len(n.File.Content) {
		return nil
	}
	return n.File.Content[r.Start:r.End]
}

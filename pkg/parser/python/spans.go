package python

import "github.com/quotefmt/quotefmt/pkg/pyast"

// SpanIndex resolves nodes to byte ranges in one snapshot's content. It is
// built once per snapshot and reused for every lookup during a rewrite
// pass; lookups are O(1) and have no side effects.
type SpanIndex struct {
	snap *pyast.FileSnapshot
}

// NewSpanIndex builds the index for a snapshot.
func NewSpanIndex(snap *pyast.FileSnapshot) *SpanIndex {
	return &SpanIndex{snap: snap}
}

// RangeOf returns the byte range the node's source text occupies, or the
// zero-value sentinel when the node is synthetic, belongs to a different
// snapshot, or has no token mapping. Callers must check IsZero.
func (ix *SpanIndex) RangeOf(n *pyast.Node) pyast.SourceRange {
	if ix == nil || n == nil || n.File != ix.snap {
		return pyast.SourceRange{}
	}
	return n.SourceRange()
}

// TextOf returns the source bytes for a node, or nil when unmappable.
func (ix *SpanIndex) TextOf(n *pyast.Node) []byte {
	r := ix.RangeOf(n)
	if r.IsZero() || r.End > len(ix.snap.Content) {
		return nil
	}
	return ix.snap.Content[r.Start:r.End]
}

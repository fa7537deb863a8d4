// Package fix provides the text-edit arena and splice machinery used by the
// quote rewriter: recording byte-range replacements against an immutable
// source and applying them in one deterministic pass.
package fix

import "sort"

// Edit replaces the bytes [Start, End) of the original content with Text.
type Edit struct {
	// Start is the byte index where the edit begins (inclusive).
	Start int

	// End is the byte index where the edit ends (exclusive).
	End int

	// Text is the replacement text.
	Text string
}

// Len returns the length of the replaced range in bytes.
func (e Edit) Len() int {
	return e.End - e.Start
}

// List accumulates edits for one rewrite pass. The zero value is usable.
type List struct {
	edits []Edit
}

// Replace records an edit replacing bytes [start, end) with text.
func (l *List) Replace(start, end int, text string) {
	l.edits = append(l.edits, Edit{Start: start, End: end, Text: text})
}

// Edits returns the recorded edits in recording order.
func (l *List) Edits() []Edit {
	return l.edits
}

// Len returns the number of recorded edits.
func (l *List) Len() int {
	return len(l.edits)
}

// SortDescending orders edits by start offset descending, the order the
// splice pass consumes them in (bottom of file first).
func SortDescending(edits []Edit) {
	sort.Slice(edits, func(i, j int) bool {
		if edits[i].Start != edits[j].Start {
			return edits[i].Start > edits[j].Start
		}
		return edits[i].End > edits[j].End
	})
}

// SortAscending orders edits by start offset ascending; used by validation
// and diff rendering.
func SortAscending(edits []Edit) {
	sort.Slice(edits, func(i, j int) bool {
		if edits[i].Start != edits[j].Start {
			return edits[i].Start < edits[j].Start
		}
		return edits[i].End < edits[j].End
	})
}

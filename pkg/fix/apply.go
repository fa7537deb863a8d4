package fix

// Apply applies the edits to content and returns the rewritten bytes.
// Content is never mutated; an empty edit list returns content as-is.
//
// Edits are applied bottom-up: sorted by start offset descending, each edit
// splices its replacement into the working text. Since only text at or after
// an applied edit shifts, the recorded offsets of all not-yet-applied
// (lower-offset) edits stay valid, given that edits never overlap.
func Apply(content []byte, edits []Edit) []byte {
	if len(edits) == 0 {
		return content
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	SortDescending(sorted)

	out := content
	for _, e := range sorted {
		next := make([]byte, 0, len(out)+len(e.Text)-e.Len())
		next = append(next, out[:e.Start]...)
		next = append(next, e.Text...)
		next = append(next, out[e.End:]...)
		out = next
	}

	return out
}

package fix

import "fmt"

// RangeError describes an edit whose offsets do not fit the content.
type RangeError struct {
	Edit    Edit
	Message string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.Start, e.Edit.End, e.Message)
}

// OverlapError describes two edits that share bytes.
type OverlapError struct {
	First  Edit
	Second Edit
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d:%d] and [%d:%d]",
		e.First.Start, e.First.End, e.Second.Start, e.Second.End)
}

// Validate checks that every edit fits within contentLen and that no two
// edits overlap. The splice pass requires both: an overlapping pair would
// corrupt offsets of edits applied after it.
func Validate(edits []Edit, contentLen int) error {
	for _, e := range edits {
		if e.Start < 0 {
			return &RangeError{Edit: e, Message: "negative start offset"}
		}
		if e.End < e.Start {
			return &RangeError{Edit: e, Message: "end offset before start offset"}
		}
		if e.End > contentLen {
			return &RangeError{
				Edit:    e,
				Message: fmt.Sprintf("end offset %d exceeds content length %d", e.End, contentLen),
			}
		}
	}

	if len(edits) < 2 {
		return nil
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	SortAscending(sorted)

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start < sorted[i-1].End {
			return &OverlapError{First: sorted[i-1], Second: sorted[i]}
		}
	}

	return nil
}

package fix_test

import (
	"errors"
	"testing"

	"github.com/quotefmt/quotefmt/pkg/fix"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		edits      []fix.Edit
		contentLen int
		wantErr    bool
	}{
		{
			name:       "no edits",
			edits:      nil,
			contentLen: 10,
			wantErr:    false,
		},
		{
			name: "single valid edit",
			edits: []fix.Edit{
				{Start: 0, End: 5, Text: "x"},
			},
			contentLen: 10,
			wantErr:    false,
		},
		{
			name: "adjacent edits do not overlap",
			edits: []fix.Edit{
				{Start: 0, End: 5},
				{Start: 5, End: 8},
			},
			contentLen: 10,
			wantErr:    false,
		},
		{
			name: "negative start",
			edits: []fix.Edit{
				{Start: -1, End: 3},
			},
			contentLen: 10,
			wantErr:    true,
		},
		{
			name: "end before start",
			edits: []fix.Edit{
				{Start: 5, End: 3},
			},
			contentLen: 10,
			wantErr:    true,
		},
		{
			name: "end past content",
			edits: []fix.Edit{
				{Start: 0, End: 11},
			},
			contentLen: 10,
			wantErr:    true,
		},
		{
			name: "overlapping edits",
			edits: []fix.Edit{
				{Start: 0, End: 5},
				{Start: 3, End: 8},
			},
			contentLen: 10,
			wantErr:    true,
		},
		{
			name: "overlap detected regardless of order",
			edits: []fix.Edit{
				{Start: 3, End: 8},
				{Start: 0, End: 5},
			},
			contentLen: 10,
			wantErr:    true,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := fix.Validate(testCase.edits, testCase.contentLen)
			if (err != nil) != testCase.wantErr {
				t.Errorf("Validate: expected error=%v, got %v", testCase.wantErr, err)
			}
		})
	}
}

func TestValidate_ErrorTypes(t *testing.T) {
	t.Parallel()

	var rangeErr *fix.RangeError
	err := fix.Validate([]fix.Edit{{Start: -1, End: 3}}, 10)
	if !errors.As(err, &rangeErr) {
		t.Errorf("expected RangeError, got %T", err)
	}

	var overlapErr *fix.OverlapError
	err = fix.Validate([]fix.Edit{{Start: 0, End: 5}, {Start: 3, End: 8}}, 10)
	if !errors.As(err, &overlapErr) {
		t.Fatalf("expected OverlapError, got %T", err)
	}
	if overlapErr.First.Start != 0 || overlapErr.Second.Start != 3 {
		t.Errorf("overlap pair wrong: %+v", overlapErr)
	}
}

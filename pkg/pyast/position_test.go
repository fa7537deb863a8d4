package pyast_test

import (
	"testing"

	"github.com/quotefmt/quotefmt/pkg/pyast"
)

func TestSourceRange(t *testing.T) {
	t.Parallel()

	r := pyast.SourceRange{Start: 4, End: 9}

	if r.Len() != 5 {
		t.Errorf("Len(): expected 5, got %d", r.Len())
	}
	if r.IsZero() {
		t.Error("non-empty range should not be zero")
	}
	if !(pyast.SourceRange{}).IsZero() {
		t.Error("zero range should report IsZero")
	}

	if !r.Contains(4) || !r.Contains(8) {
		t.Error("Contains should include start and last byte")
	}
	if r.Contains(9) || r.Contains(3) {
		t.Error("Contains should exclude end and bytes before start")
	}
}

func TestSourceRange_Overlaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     pyast.SourceRange
		expected bool
	}{
		{"identical", pyast.SourceRange{0, 5}, pyast.SourceRange{0, 5}, true},
		{"partial overlap", pyast.SourceRange{0, 5}, pyast.SourceRange{3, 8}, true},
		{"contained", pyast.SourceRange{0, 10}, pyast.SourceRange{2, 4}, true},
		{"adjacent", pyast.SourceRange{0, 5}, pyast.SourceRange{5, 10}, false},
		{"disjoint", pyast.SourceRange{0, 3}, pyast.SourceRange{7, 9}, false},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := testCase.a.Overlaps(testCase.b); got != testCase.expected {
				t.Errorf("Overlaps: expected %v, got %v", testCase.expected, got)
			}
			if got := testCase.b.Overlaps(testCase.a); got != testCase.expected {
				t.Errorf("Overlaps (reversed): expected %v, got %v", testCase.expected, got)
			}
		})
	}
}

func TestNode_SourceRangeAndText(t *testing.T) {
	t.Parallel()

	content := []byte(`x = "hello"`)
	snapshot := pyast.NewFileSnapshot("test.py", content)
	snapshot.Tokens = []pyast.Token{
		{Kind: pyast.TokName, Start: 0, End: 1},
		{Kind: pyast.TokWhitespace, Start: 1, End: 2},
		{Kind: pyast.TokOp, Start: 2, End: 3},
		{Kind: pyast.TokWhitespace, Start: 3, End: 4},
		{Kind: pyast.TokString, Start: 4, End: 11},
	}

	node := pyast.NewNode(pyast.NodeStringLiteral)
	node.File = snapshot
	node.FirstToken = 4
	node.LastToken = 4

	r := node.SourceRange()
	if r.Start != 4 || r.End != 11 {
		t.Errorf("SourceRange: expected [4, 11), got [%d, %d)", r.Start, r.End)
	}

	if got := string(node.Text()); got != `"hello"` {
		t.Errorf("Text: expected %q, got %q", `"hello"`, got)
	}
}

func TestNode_SourceRange_Unmapped(t *testing.T) {
	t.Parallel()

	detached := pyast.NewNode(pyast.NodeModule)

	if !detached.SourceRange().IsZero() {
		t.Error("node without token mapping should yield the zero range")
	}
	if detached.Text() != nil {
		t.Error("node without a file should yield nil text")
	}
}

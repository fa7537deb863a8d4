package fix

import (
	"fmt"
	"strings"
)

// diffContext is the number of unchanged lines shown around each change.
const diffContext = 3

// Diff is a unified diff between original and rewritten content.
type Diff struct {
	// Path is the file path used in the diff headers.
	Path string

	// Hunks are the change hunks, in file order.
	Hunks []Hunk

	// Additions and Deletions count changed lines across all hunks.
	Additions int
	Deletions int
}

// Hunk is one unified-diff hunk.
type Hunk struct {
	OrigStart, OrigCount int
	NewStart, NewCount   int
	Lines                []Line
}

// LineKind distinguishes context, added, and removed diff lines.
type LineKind int

const (
	LineContext LineKind = iota
	LineAdd
	LineRemove
)

// Line is a single diff line without its +/-/space prefix.
type Line struct {
	Kind LineKind
	Text string
}

// GenerateDiff builds a unified diff between original and rewritten content.
// Returns nil when the two are line-identical.
func GenerateDiff(path string, original, rewritten []byte) *Diff {
	orig := splitLines(original)
	next := splitLines(rewritten)

	ops := diffOps(orig, next)
	hunks := groupHunks(ops)
	if len(hunks) == 0 {
		return nil
	}

	d := &Diff{Path: path, Hunks: hunks}
	for _, h := range hunks {
		for _, l := range h.Lines {
			switch l.Kind {
			case LineAdd:
				d.Additions++
			case LineRemove:
				d.Deletions++
			}
		}
	}
	return d
}

// HasChanges reports whether the diff contains any hunks.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String renders the diff in unified format with ---/+++ headers.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", path)
	fmt.Fprintf(&b, "+++ b/%s\n", path)

	for _, h := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.OrigStart, h.OrigCount, h.NewStart, h.NewCount)
		for _, l := range h.Lines {
			switch l.Kind {
			case LineContext:
				b.WriteByte(' ')
			case LineAdd:
				b.WriteByte('+')
			case LineRemove:
				b.WriteByte('-')
			}
			b.WriteString(l.Text)
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// diffOps produces the full line-level operation sequence via LCS.
func diffOps(orig, next []string) []Line {
	lcs := longestCommonSubsequence(orig, next)

	var ops []Line
	oi, ni, li := 0, 0, 0
	for oi < len(orig) || ni < len(next) {
		switch {
		case li < len(lcs) && oi < len(orig) && ni < len(next) &&
			orig[oi] == lcs[li] && next[ni] == lcs[li]:
			ops = append(ops, Line{Kind: LineContext, Text: orig[oi]})
			oi++
			ni++
			li++
		case oi < len(orig) && (li >= len(lcs) || orig[oi] != lcs[li]):
			ops = append(ops, Line{Kind: LineRemove, Text: orig[oi]})
			oi++
		default:
			ops = append(ops, Line{Kind: LineAdd, Text: next[ni]})
			ni++
		}
	}
	return ops
}

// groupHunks slices the op sequence into hunks with diffContext lines of
// context, merging changes whose gaps are within 2*diffContext.
func groupHunks(ops []Line) []Hunk {
	type span struct{ start, end int }
	var changes []span

	inChange := false
	start := 0
	for i, op := range ops {
		if op.Kind != LineContext {
			if !inChange {
				start = i
				inChange = true
			}
		} else if inChange {
			changes = append(changes, span{start, i})
			inChange = false
		}
	}
	if inChange {
		changes = append(changes, span{start, len(ops)})
	}
	if len(changes) == 0 {
		return nil
	}

	var hunks []Hunk
	for i := 0; i < len(changes); {
		j := i + 1
		for j < len(changes) && changes[j].start-changes[j-1].end <= 2*diffContext {
			j++
		}

		lo := max(changes[i].start-diffContext, 0)
		hi := min(changes[j-1].end+diffContext, len(ops))

		h := Hunk{OrigStart: 1, NewStart: 1}
		for k := 0; k < lo; k++ {
			if ops[k].Kind != LineAdd {
				h.OrigStart++
			}
			if ops[k].Kind != LineRemove {
				h.NewStart++
			}
		}
		for k := lo; k < hi; k++ {
			h.Lines = append(h.Lines, ops[k])
			switch ops[k].Kind {
			case LineContext:
				h.OrigCount++
				h.NewCount++
			case LineRemove:
				h.OrigCount++
			case LineAdd:
				h.NewCount++
			}
		}
		hunks = append(hunks, h)

		i = j
	}

	return hunks
}

func longestCommonSubsequence(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	out := make([]string, dp[len(a)][len(b)])
	i, j, k := len(a), len(b), len(out)-1
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			out[k] = a[i-1]
			i--
			j--
			k--
		case dp[i-1][j] > dp[i][j-1]:
			i--
		default:
			j--
		}
	}
	return out
}

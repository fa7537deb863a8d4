package rewrite

import (
	"strings"
	"unicode/utf8"

	"github.com/quotefmt/quotefmt/pkg/pyast"
	"github.com/quotefmt/quotefmt/pkg/pystring"
)

// classifyLiteral decides the fate of one string literal and records at
// most one edit. The rules apply in order, first match wins, and every
// literal ends in either "skip" or "one edit"; there is no error path.
func (e *Engine) classifyLiteral(n *pyast.Node) {
	rng := e.spans.RangeOf(n)
	if rng.IsZero() {
		return
	}

	raw := string(e.snap.Content[rng.Start:rng.End])

	if _, ok := e.docstrings[n]; ok {
		// TODO: reformat docstrings to triple double quotes with correct
		// indentation.
		return
	}

	// Empty strings always normalize to the single-quoted spelling.
	if raw == `""` || raw == `''` {
		e.record(rng.Start, rng.End, raw, "''")
		return
	}

	// Spellings that do not open with a bare quote carry a prefix (raw,
	// f-string, bytes) and keep their author's delimiters.
	if raw[0] != '"' && raw[0] != '\'' {
		return
	}

	attrs := n.Str
	if attrs == nil || attrs.Undecodable {
		return
	}
	// A concatenation group may hide an f-string or bytes part behind a
	// plain first part; its value is not a static string, so leave it.
	if attrs.Formatted || attrs.Bytes {
		return
	}
	// Triple-quoted spellings keep their delimiters even on one line.
	if attrs.Triple {
		return
	}

	s := attrs.Value

	// Single characters get the single-quoted minimal spelling.
	if utf8.RuneCountInString(s) == 1 {
		e.record(rng.Start, rng.End, raw, pystring.Repr(s, pystring.PreferSingle))
		return
	}

	// Spellings spanning several lines were written with multiline
	// delimiters; reformatting those is out of scope.
	if strings.ContainsRune(raw, '\n') {
		return
	}

	// Values with line breaks, or spellings with explicit \n escapes, keep
	// the author's choice of line-break style.
	if strings.ContainsRune(s, '\n') || strings.Contains(raw, `\n`) {
		return
	}

	e.record(rng.Start, rng.End, raw, pystring.Repr(s, pystring.PreferDouble))
}

// record appends an edit unless the replacement already equals the source
// spelling, so edit counts reflect literals actually changed.
func (e *Engine) record(start, end int, raw, text string) {
	if raw == text {
		return
	}
	e.edits.Replace(start, end, text)
}

// Package pystring implements the Python string-literal codec used by the
// quote rewriter: parsing a literal's source spelling, decoding its value,
// and rendering a value back to a minimally escaped literal.
package pystring

import "strings"

// Spelling is the parsed form of one string-literal token's source text.
type Spelling struct {
	// Prefix is the lowercased prefix letters ("", "r", "b", "f", "u", "rb", ...).
	Prefix string

	// Quote is the delimiter: `'`, `"`, `'''`, or `"""`.
	Quote string

	// Body is the text between the delimiters, unprocessed.
	Body string

	// Raw is true for r-prefixed spellings.
	Raw bool

	// Formatted is true for f-prefixed spellings.
	Formatted bool

	// Bytes is true for b-prefixed spellings.
	Bytes bool

	// Triple is true for triple-quoted delimiters.
	Triple bool
}

// Plain reports whether the spelling carries no prefix letters.
func (sp Spelling) Plain() bool {
	return sp.Prefix == ""
}

// ValidPrefix reports whether s is a legal Python string-literal prefix.
// Case-insensitive; order-insensitive for two-letter combinations.
func ValidPrefix(s string) bool {
	switch strings.ToLower(s) {
	case "", "r", "b", "f", "u", "br", "rb", "fr", "rf":
		return true
	default:
		return false
	}
}

// ParseSpelling splits a literal's source text into prefix, delimiter, and
// body. It expects text as produced by the tokenizer: a valid prefix, an
// opening delimiter, the body, and (when the literal was terminated) the
// matching closing delimiter. Returns false for text that is not a string
// literal shape at all.
func ParseSpelling(text string) (Spelling, bool) {
	var sp Spelling

	// Split off prefix letters.
	i := 0
	for i < len(text) && text[i] != '\'' && text[i] != '"' {
		i++
	}
	if i >= len(text) {
		return sp, false
	}
	prefix := strings.ToLower(text[:i])
	if !ValidPrefix(prefix) {
		return sp, false
	}
	sp.Prefix = prefix
	sp.Raw = strings.Contains(prefix, "r")
	sp.Bytes = strings.Contains(prefix, "b")
	sp.Formatted = strings.Contains(prefix, "f")

	rest := text[i:]
	q := rest[0]
	if len(rest) >= 3 && rest[1] == q && rest[2] == q {
		sp.Triple = true
		sp.Quote = rest[:3]
	} else {
		sp.Quote = rest[:1]
	}

	body := rest[len(sp.Quote):]
	// Strip the closing delimiter when present. Unterminated literals keep
	// their full tail as body; callers treat them as undecodable anyway.
	if strings.HasSuffix(body, sp.Quote) && len(body) >= len(sp.Quote) {
		body = body[:len(body)-len(sp.Quote)]
	}
	sp.Body = body

	return sp, true
}

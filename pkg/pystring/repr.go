package pystring

import (
	"fmt"
	"strings"
	"unicode"
)

// QuotePreference selects the delimiter Repr reaches for first.
type QuotePreference int

const (
	// PreferSingle matches CPython's repr: single quotes unless the value
	// contains a single quote and no double quote.
	PreferSingle QuotePreference = iota

	// PreferDouble mirrors PreferSingle with the roles of the two quote
	// characters swapped.
	PreferDouble
)

// Repr renders value as a minimally escaped Python string literal using the
// preferred delimiter. The other delimiter is used only when that avoids
// escaping quotes, exactly as CPython's repr switches delimiters.
func Repr(value string, pref QuotePreference) string {
	quote, other := byte('\''), byte('"')
	if pref == PreferDouble {
		quote, other = other, quote
	}
	if strings.IndexByte(value, quote) >= 0 && strings.IndexByte(value, other) < 0 {
		quote, other = other, quote
	}

	var out strings.Builder
	out.Grow(len(value) + 2)
	out.WriteByte(quote)

	for _, r := range value {
		switch r {
		case rune(quote):
			out.WriteByte('\\')
			out.WriteByte(quote)
		case '\\':
			out.WriteString(`\\`)
		case '\n':
			out.WriteString(`\n`)
		case '\r':
			out.WriteString(`\r`)
		case '\t':
			out.WriteString(`\t`)
		default:
			if isPrintable(r) {
				out.WriteRune(r)
			} else {
				out.WriteString(escapeRune(r))
			}
		}
	}

	out.WriteByte(quote)
	return out.String()
}

// isPrintable follows str.isprintable: everything except the Unicode
// "Other" and "Separator" categories, with the exception of ASCII space.
func isPrintable(r rune) bool {
	if r == ' ' {
		return true
	}
	return !unicode.In(r, unicode.C, unicode.Z)
}

// escapeRune renders a non-printable rune the way repr does: \xXX for
// values up to 0xFF, then \uXXXX, then \UXXXXXXXX.
func escapeRune(r rune) string {
	switch {
	case r <= 0xFF:
		return fmt.Sprintf(`\x%02x`, r)
	case r <= 0xFFFF:
		return fmt.Sprintf(`\u%04x`, r)
	default:
		return fmt.Sprintf(`\U%08x`, r)
	}
}

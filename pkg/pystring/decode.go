package pystring

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUndecodable is returned for spellings whose value cannot be recovered
// without a Unicode name database or full f-string evaluation.
var ErrUndecodable = errors.New("undecodable string literal")

// Decode returns the string value of a spelling.
//
// Raw spellings decode to their body verbatim. Plain spellings have the
// CPython escape set processed; unknown escapes keep the backslash, matching
// CPython. \N{...} escapes make the spelling undecodable since resolving
// them needs the Unicode name table.
func (sp Spelling) Decode() (string, error) {
	if sp.Raw {
		return sp.Body, nil
	}
	return decodeEscapes(sp.Body)
}

func decodeEscapes(body string) (string, error) {
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}

	var out strings.Builder
	out.Grow(len(body))

	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			out.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(body) {
			// Trailing backslash only occurs in unterminated literals.
			return "", fmt.Errorf("%w: trailing backslash", ErrUndecodable)
		}

		esc := body[i+1]
		i += 2

		switch esc {
		case '\n':
			// Line continuation inside the literal: produces nothing.
		case '\\':
			out.WriteByte('\\')
		case '\'':
			out.WriteByte('\'')
		case '"':
			out.WriteByte('"')
		case 'a':
			out.WriteByte('\a')
		case 'b':
			out.WriteByte('\b')
		case 'f':
			out.WriteByte('\f')
		case 'n':
			out.WriteByte('\n')
		case 'r':
			out.WriteByte('\r')
		case 't':
			out.WriteByte('\t')
		case 'v':
			out.WriteByte('\v')
		case '0', '1', '2', '3', '4', '5', '6', '7':
			// Octal escape: up to three digits including the first.
			val := int(esc - '0')
			for n := 0; n < 2 && i < len(body) && body[i] >= '0' && body[i] <= '7'; n++ {
				val = val*8 + int(body[i]-'0')
				i++
			}
			out.WriteRune(rune(val))
		case 'x':
			r, next, err := decodeHex(body, i, 2)
			if err != nil {
				return "", err
			}
			out.WriteRune(r)
			i = next
		case 'u':
			r, next, err := decodeHex(body, i, 4)
			if err != nil {
				return "", err
			}
			out.WriteRune(r)
			i = next
		case 'U':
			r, next, err := decodeHex(body, i, 8)
			if err != nil {
				return "", err
			}
			if r > 0x10FFFF {
				return "", fmt.Errorf("%w: code point out of range", ErrUndecodable)
			}
			out.WriteRune(r)
			i = next
		case 'N':
			return "", fmt.Errorf("%w: \\N{...} escape", ErrUndecodable)
		case '\r':
			// CRLF continuation.
			if i < len(body) && body[i] == '\n' {
				i++
			}
		default:
			// Unknown escape: CPython keeps the backslash.
			out.WriteByte('\\')
			out.WriteByte(esc)
		}
	}

	return out.String(), nil
}

// decodeHex decodes exactly width hex digits starting at body[i].
func decodeHex(body string, i, width int) (rune, int, error) {
	if i+width > len(body) {
		return 0, 0, fmt.Errorf("%w: truncated hex escape", ErrUndecodable)
	}
	var val rune
	for _, c := range []byte(body[i : i+width]) {
		var d rune
		switch {
		case c >= '0' && c <= '9':
			d = rune(c - '0')
		case c >= 'a' && c <= 'f':
			d = rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = rune(c-'A') + 10
		default:
			return 0, 0, fmt.Errorf("%w: invalid hex escape", ErrUndecodable)
		}
		val = val*16 + d
	}
	return val, i + width, nil
}

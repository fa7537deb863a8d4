package python

import (
	"unicode"
	"unicode/utf8"

	"github.com/quotefmt/quotefmt/pkg/pyast"
	"github.com/quotefmt/quotefmt/pkg/pystring"
)

// tokenizer performs a single-pass tokenization of Python source.
// It produces a contiguous, non-overlapping token stream covering
// [0, len(content)). It never panics on malformed input; the first
// unterminated string literal is reported through errOffset.
type tokenizer struct {
	content     []byte
	tokens      []pyast.Token
	pos         int
	atLineStart bool

	// errOffset/errMsg record the first tokenization error, or -1.
	errOffset int
	errMsg    string
}

// tokenize scans content into a full-coverage token stream.
func tokenize(content []byte) ([]pyast.Token, int, string) {
	t := &tokenizer{
		content:     content,
		tokens:      make([]pyast.Token, 0, len(content)/4),
		atLineStart: true,
		errOffset:   -1,
	}

	for t.pos < len(t.content) {
		t.next()
	}

	return t.tokens, t.errOffset, t.errMsg
}

func (t *tokenizer) next() {
	if t.atLineStart {
		t.atLineStart = false
		if t.scanRun(pyast.TokIndent, isBlank) {
			return
		}
	}

	c := t.content[t.pos]

	switch {
	case c == '\n' || c == '\r':
		t.scanNewline()
	case c == '#':
		t.scanComment()
	case c == '\\' && t.isNewlineAt(t.pos+1):
		t.scanContinuation()
	case isBlank(c):
		t.scanRun(pyast.TokWhitespace, isBlank)
	case c == '\'' || c == '"':
		t.scanString(t.pos)
	case isIdentStart(c):
		t.scanNameOrPrefixedString()
	case c >= '0' && c <= '9':
		t.scanNumber()
	case c == '.' && t.pos+1 < len(t.content) && isDigit(t.content[t.pos+1]):
		t.scanNumber()
	default:
		t.emit(pyast.TokOp, t.pos, t.pos+1)
		t.pos++
	}
}

func (t *tokenizer) emit(kind pyast.TokenKind, start, end int) {
	t.tokens = append(t.tokens, pyast.Token{Kind: kind, Start: start, End: end})
}

func (t *tokenizer) fail(offset int, msg string) {
	if t.errOffset < 0 {
		t.errOffset = offset
		t.errMsg = msg
	}
}

func (t *tokenizer) isNewlineAt(pos int) bool {
	return pos < len(t.content) && (t.content[pos] == '\n' || t.content[pos] == '\r')
}

// scanRun consumes a run of bytes matching pred; returns false for an
// empty run (no token emitted).
func (t *tokenizer) scanRun(kind pyast.TokenKind, pred func(byte) bool) bool {
	start := t.pos
	for t.pos < len(t.content) && pred(t.content[t.pos]) {
		t.pos++
	}
	if t.pos == start {
		return false
	}
	t.emit(kind, start, t.pos)
	return true
}

func (t *tokenizer) scanNewline() {
	start := t.pos
	if t.content[t.pos] == '\r' {
		t.pos++
	}
	if t.pos < len(t.content) && t.content[t.pos] == '\n' {
		t.pos++
	}
	t.emit(pyast.TokNewline, start, t.pos)
	t.atLineStart = true
}

func (t *tokenizer) scanComment() {
	start := t.pos
	for t.pos < len(t.content) && t.content[t.pos] != '\n' && t.content[t.pos] != '\r' {
		t.pos++
	}
	t.emit(pyast.TokComment, start, t.pos)
}

func (t *tokenizer) scanContinuation() {
	start := t.pos
	t.pos++ // backslash
	if t.pos < len(t.content) && t.content[t.pos] == '\r' {
		t.pos++
	}
	if t.pos < len(t.content) && t.content[t.pos] == '\n' {
		t.pos++
	}
	t.emit(pyast.TokContinuation, start, t.pos)
}

// scanNameOrPrefixedString scans an identifier and, when it turns out to be
// a valid string prefix directly followed by a quote, rescans as a string
// literal including the prefix.
func (t *tokenizer) scanNameOrPrefixedString() {
	start := t.pos
	for t.pos < len(t.content) {
		r, size := utf8.DecodeRune(t.content[t.pos:])
		if !isIdentPart(r) {
			break
		}
		t.pos += size
	}

	name := string(t.content[start:t.pos])
	if t.pos < len(t.content) && (t.content[t.pos] == '\'' || t.content[t.pos] == '"') &&
		pystring.ValidPrefix(name) {
		t.scanString(start)
		return
	}

	if pythonKeywords[name] {
		t.emit(pyast.TokKeyword, start, t.pos)
	} else {
		t.emit(pyast.TokName, start, t.pos)
	}
}

// scanString scans a string literal whose prefix begins at start and whose
// opening quote is at t.pos. Raw-ness does not change scanning: a backslash
// always guards the following character against terminating the literal,
// even in raw strings.
func (t *tokenizer) scanString(start int) {
	quote := t.content[t.pos]
	triple := t.pos+2 < len(t.content) && t.content[t.pos+1] == quote && t.content[t.pos+2] == quote

	if triple {
		t.pos += 3
		t.scanTripleBody(start, quote)
	} else {
		t.pos++
		t.scanSingleBody(start, quote)
	}
}

func (t *tokenizer) scanSingleBody(start int, quote byte) {
	for t.pos < len(t.content) {
		c := t.content[t.pos]
		switch {
		case c == quote:
			t.pos++
			t.emit(pyast.TokString, start, t.pos)
			return
		case c == '\\':
			t.pos++
			if t.pos < len(t.content) {
				if t.content[t.pos] == '\r' && t.pos+1 < len(t.content) && t.content[t.pos+1] == '\n' {
					t.pos++
				}
				t.pos++
			}
		case c == '\n' || c == '\r':
			t.fail(start, "unterminated string literal")
			t.emit(pyast.TokString, start, t.pos)
			return
		default:
			t.pos++
		}
	}
	t.fail(start, "unterminated string literal")
	t.emit(pyast.TokString, start, t.pos)
}

func (t *tokenizer) scanTripleBody(start int, quote byte) {
	for t.pos < len(t.content) {
		c := t.content[t.pos]
		switch {
		case c == quote && t.pos+2 < len(t.content) &&
			t.content[t.pos+1] == quote && t.content[t.pos+2] == quote:
			t.pos += 3
			t.emit(pyast.TokString, start, t.pos)
			return
		case c == '\\':
			t.pos++
			if t.pos < len(t.content) {
				t.pos++
			}
		default:
			t.pos++
		}
	}
	t.fail(start, "unterminated triple-quoted string literal")
	t.emit(pyast.TokString, start, t.pos)
}

func (t *tokenizer) scanNumber() {
	start := t.pos
	for t.pos < len(t.content) {
		c := t.content[t.pos]
		if isDigit(c) || isIdentByte(c) || c == '.' {
			t.pos++
			continue
		}
		// Exponent sign: 1e+5, 0x1p-3.
		if (c == '+' || c == '-') && t.pos > start {
			prev := t.content[t.pos-1]
			if (prev == 'e' || prev == 'E' || prev == 'p' || prev == 'P') &&
				t.pos+1 < len(t.content) && isDigit(t.content[t.pos+1]) {
				t.pos++
				continue
			}
		}
		break
	}
	t.emit(pyast.TokNumber, start, t.pos)
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || isDigit(c)
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= utf8.RuneSelf
}

func isIdentPart(r rune) bool {
	if r < utf8.RuneSelf {
		return isIdentByte(byte(r))
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// pythonKeywords is the Python 3 keyword set (hard keywords only; soft
// keywords like "match" stay TokName to avoid misclassifying assignments).
var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true,
	"and": true, "as": true, "assert": true, "async": true, "await": true,
	"break": true, "class": true, "continue": true, "def": true, "del": true,
	"elif": true, "else": true, "except": true, "finally": true, "for": true,
	"from": true, "global": true, "if": true, "import": true, "in": true,
	"is": true, "lambda": true, "nonlocal": true, "not": true, "or": true,
	"pass": true, "raise": true, "return": true, "try": true, "while": true,
	"with": true, "yield": true,
}

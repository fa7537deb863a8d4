package pyast

// TokenKind classifies a span of bytes in Python source.
type TokenKind uint8

// Token kinds cover every byte of a file, including trivia.
const (
	TokString TokenKind = iota
	TokName
	TokKeyword
	TokNumber
	TokOp
	TokComment
	TokNewline      // logical or physical line terminator
	TokIndent       // leading whitespace of a line
	TokWhitespace   // interior spaces and tabs
	TokContinuation // backslash-newline
	TokOther
)

var tokenKindNames = [...]string{
	TokString:       "String",
	TokName:         "Name",
	TokKeyword:      "Keyword",
	TokNumber:       "Number",
	TokOp:           "Op",
	TokComment:      "Comment",
	TokNewline:      "Newline",
	TokIndent:       "Indent",
	TokWhitespace:   "Whitespace",
	TokContinuation: "Continuation",
	TokOther:        "Other",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "Unknown"
}

// Token is a classified byte span. Tokens are contiguous and non-overlapping,
// covering [0, len(Content)).
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// Start is the byte index where the token begins (inclusive).
	Start int

	// End is the byte index where the token ends (exclusive).
	End int
}

// Text returns the source bytes of this token.
func (t Token) Text(content []byte) []byte {
	if t.Start < 0 || t.End > len(content) || t.Start > t.End {
		return nil
	}
	return content[t.Start:t.End]
}

// Len returns the token length in bytes.
func (t Token) Len() int {
	return t.End - t.Start
}

// ValidateTokens checks that tokens are contiguous, non-overlapping, and
// cover the full content range [0, contentLen).
func ValidateTokens(tokens []Token, contentLen int) bool {
	if len(tokens) == 0 {
		return contentLen == 0
	}
	if tokens[0].Start != 0 || tokens[len(tokens)-1].End != contentLen {
		return false
	}
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Start != tokens[i-1].End {
			return false
		}
	}
	return true
}

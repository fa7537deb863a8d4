// Package python provides the Python tokenizer and structural parser behind
// the quote rewriter. It does not build a full expression AST: it recovers
// exactly the structure the rewriter consumes (statements, definition
// suites, and string-literal groups), with every node mapped to its token
// span in the source.
package python

import (
	"fmt"
	"strings"

	"github.com/quotefmt/quotefmt/pkg/pyast"
	"github.com/quotefmt/quotefmt/pkg/pystring"
)

// ParseError describes source the tokenizer could not make sense of.
type ParseError struct {
	Path string
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Col, e.Msg)
}

// Parse tokenizes and parses Python source into a snapshot. The returned
// snapshot owns the token stream and node tree; the rewriter only reads it.
// A tokenization failure (an unterminated string literal) returns a
// *ParseError and no snapshot.
func Parse(path string, content []byte) (*pyast.FileSnapshot, error) {
	snap := pyast.NewFileSnapshot(path, content)

	tokens, errOff, errMsg := tokenize(content)
	snap.Tokens = tokens
	if errOff >= 0 {
		line, col := snap.LineAt(errOff)
		return nil, &ParseError{Path: path, Line: line, Col: col, Msg: errMsg}
	}

	p := &parser{snap: snap}
	p.splitLines()
	snap.Root = p.parseModule()

	return snap, nil
}

// logicalLine is one Python logical line: physical lines joined by bracket
// nesting or backslash continuations. tokens holds indices into the
// snapshot's token stream, trivia included.
type logicalLine struct {
	tokens []int
	indent int
	blank  bool
}

type parser struct {
	snap  *pyast.FileSnapshot
	lines []logicalLine
	pos   int
}

func (p *parser) text(i int) string {
	tk := p.snap.Tokens[i]
	return string(p.snap.Content[tk.Start:tk.End])
}

func isTrivia(kind pyast.TokenKind) bool {
	switch kind {
	case pyast.TokIndent, pyast.TokWhitespace, pyast.TokComment,
		pyast.TokNewline, pyast.TokContinuation:
		return true
	default:
		return false
	}
}

// splitLines groups the token stream into logical lines. A newline ends the
// line only at bracket depth zero; continuations never end it.
func (p *parser) splitLines() {
	toks := p.snap.Tokens
	depth := 0
	var cur []int

	flush := func() {
		if len(cur) == 0 {
			return
		}
		ln := logicalLine{tokens: cur, blank: true}
		for _, i := range cur {
			if !isTrivia(toks[i].Kind) {
				ln.blank = false
				break
			}
		}
		if toks[cur[0]].Kind == pyast.TokIndent {
			ln.indent = indentWidth(toks[cur[0]].Text(p.snap.Content))
		}
		p.lines = append(p.lines, ln)
		cur = nil
	}

	for i, tk := range toks {
		cur = append(cur, i)
		switch tk.Kind {
		case pyast.TokOp:
			switch p.snap.Content[tk.Start] {
			case '(', '[', '{':
				depth++
			case ')', ']', '}':
				if depth > 0 {
					depth--
				}
			}
		case pyast.TokNewline:
			if depth == 0 {
				flush()
			}
		}
	}
	flush()
}

// indentWidth expands tabs to the next multiple of eight, as the CPython
// tokenizer does when comparing indentation.
func indentWidth(indent []byte) int {
	w := 0
	for _, b := range indent {
		if b == '\t' {
			w = w/8*8 + 8
		} else {
			w++
		}
	}
	return w
}

func (p *parser) parseModule() *pyast.Node {
	root := pyast.NewNode(pyast.NodeModule)
	root.File = p.snap
	if len(p.snap.Tokens) > 0 {
		root.FirstToken = 0
		root.LastToken = len(p.snap.Tokens) - 1
	}

	p.parseBlock(root, -1)
	return root
}

// parseBlock parses the suite belonging to parent: consecutive logical
// lines indented deeper than parentIndent. The first such line fixes the
// block's indentation; a dedent below it ends the suite.
func (p *parser) parseBlock(parent *pyast.Node, parentIndent int) {
	blockIndent := -1

	for p.pos < len(p.lines) {
		ln := p.lines[p.pos]
		if ln.blank {
			p.pos++
			continue
		}
		if ln.indent <= parentIndent {
			return
		}
		if blockIndent < 0 {
			blockIndent = ln.indent
		}
		if ln.indent < blockIndent {
			return
		}
		p.parseStatement(parent)
	}
}

// compoundKeywords lead statements that own an indented suite.
var compoundKeywords = map[string]bool{
	"if": true, "elif": true, "else": true, "for": true, "while": true,
	"try": true, "except": true, "finally": true, "with": true,
	"class": true, "def": true, "async": true,
}

func (p *parser) parseStatement(parent *pyast.Node) {
	ln := p.lines[p.pos]
	sig := p.significant(ln)
	if len(sig) == 0 {
		p.pos++
		return
	}

	kind, compound := p.classify(sig)
	if !compound {
		p.pos++
		p.addSimpleStatements(parent, sig)
		return
	}

	node := pyast.NewNode(kind)
	node.File = p.snap
	node.FirstToken = sig[0]
	node.LastToken = sig[len(sig)-1]
	pyast.AppendChild(parent, node)

	headerSig := sig
	var suiteSig []int
	if ci := headerColon(p, sig); ci >= 0 {
		headerSig = sig[:ci]
		suiteSig = sig[ci+1:]
	}

	// Header literals (decorator-free header: defaults, base classes,
	// context managers) become children ahead of the body statements.
	p.addStringGroups(node, headerSig)

	p.pos++
	if len(suiteSig) > 0 {
		// Inline suite on the header line: def f(): return 1
		p.addSimpleStatements(node, suiteSig)
	} else {
		p.parseBlock(node, ln.indent)
	}

	for c := node.FirstChild; c != nil; c = c.Next {
		if c.LastToken > node.LastToken {
			node.LastToken = c.LastToken
		}
	}
}

// significant filters a line's token indices down to non-trivia.
func (p *parser) significant(ln logicalLine) []int {
	var sig []int
	for _, i := range ln.tokens {
		if !isTrivia(p.snap.Tokens[i].Kind) {
			sig = append(sig, i)
		}
	}
	return sig
}

// classify decides the node kind of a keyword-led line and whether it opens
// a suite.
func (p *parser) classify(sig []int) (pyast.NodeKind, bool) {
	first := sig[0]
	if p.snap.Tokens[first].Kind != pyast.TokKeyword {
		return pyast.NodeOtherStmt, false
	}

	word := p.text(first)
	if !compoundKeywords[word] {
		return pyast.NodeOtherStmt, false
	}

	switch word {
	case "def":
		return pyast.NodeFunctionDef, true
	case "class":
		return pyast.NodeClassDef, true
	case "async":
		if len(sig) > 1 && p.text(sig[1]) == "def" {
			return pyast.NodeAsyncFunctionDef, true
		}
		return pyast.NodeOtherStmt, true
	default:
		return pyast.NodeOtherStmt, true
	}
}

// headerColon finds the suite-opening colon in sig, returning its index
// within sig or -1. Colons inside brackets belong to annotations, dicts, or
// slices; a depth-zero colon after a pending lambda closes that lambda
// instead of the header.
func headerColon(p *parser, sig []int) int {
	depth := 0
	lambdas := 0

	for i, ti := range sig {
		tk := p.snap.Tokens[ti]
		switch tk.Kind {
		case pyast.TokOp:
			switch p.snap.Content[tk.Start] {
			case '(', '[', '{':
				depth++
			case ')', ']', '}':
				if depth > 0 {
					depth--
				}
			case ':':
				if depth > 0 {
					continue
				}
				if lambdas > 0 {
					lambdas--
					continue
				}
				return i
			}
		case pyast.TokKeyword:
			if depth == 0 && p.text(ti) == "lambda" {
				lambdas++
			}
		}
	}
	return -1
}

// addSimpleStatements appends one statement node per semicolon-separated
// segment of sig. A segment consisting solely of string tokens is a bare
// string expression statement; everything else is an opaque statement that
// still owns its string-literal groups.
func (p *parser) addSimpleStatements(parent *pyast.Node, sig []int) {
	depth := 0
	start := 0

	emit := func(seg []int) {
		if len(seg) == 0 {
			return
		}
		kind := pyast.NodeExprStmt
		for _, ti := range p.unwrapParens(seg) {
			if p.snap.Tokens[ti].Kind != pyast.TokString {
				kind = pyast.NodeOtherStmt
				break
			}
		}

		node := pyast.NewNode(kind)
		node.File = p.snap
		node.FirstToken = seg[0]
		node.LastToken = seg[len(seg)-1]
		pyast.AppendChild(parent, node)
		p.addStringGroups(node, seg)
	}

	for i, ti := range sig {
		tk := p.snap.Tokens[ti]
		if tk.Kind == pyast.TokOp {
			switch p.snap.Content[tk.Start] {
			case '(', '[', '{':
				depth++
			case ')', ']', '}':
				if depth > 0 {
					depth--
				}
			case ';':
				if depth == 0 {
					emit(sig[start:i])
					start = i + 1
				}
			}
		}
	}
	emit(sig[start:])
}

// unwrapParens strips matching outer parentheses from a statement segment.
// A lone string wrapped in grouping parentheses is still a bare string
// expression statement, so the docstring check has to look through them.
func (p *parser) unwrapParens(seg []int) []int {
	for len(seg) >= 2 {
		first := p.snap.Tokens[seg[0]]
		last := p.snap.Tokens[seg[len(seg)-1]]
		if first.Kind != pyast.TokOp || p.snap.Content[first.Start] != '(' ||
			last.Kind != pyast.TokOp || p.snap.Content[last.Start] != ')' {
			return seg
		}

		depth := 0
		for _, ti := range seg[1 : len(seg)-1] {
			tk := p.snap.Tokens[ti]
			if tk.Kind != pyast.TokOp {
				continue
			}
			switch p.snap.Content[tk.Start] {
			case '(', '[', '{':
				depth++
			case ')', ']', '}':
				depth--
			}
			if depth < 0 {
				return seg
			}
		}
		if depth != 0 {
			return seg
		}
		seg = seg[1 : len(seg)-1]
	}
	return seg
}

// addStringGroups appends a StringLiteral child for every maximal run of
// adjacent string tokens in sig. Adjacency in sig means the tokens are
// separated only by trivia in the source, which is exactly Python's
// implicit string concatenation.
func (p *parser) addStringGroups(parent *pyast.Node, sig []int) {
	for i := 0; i < len(sig); {
		if p.snap.Tokens[sig[i]].Kind != pyast.TokString {
			i++
			continue
		}
		j := i
		for j < len(sig) && p.snap.Tokens[sig[j]].Kind == pyast.TokString {
			j++
		}

		node := pyast.NewNode(pyast.NodeStringLiteral)
		node.File = p.snap
		node.FirstToken = sig[i]
		node.LastToken = sig[j-1]
		node.Str = p.stringAttrs(sig[i:j])
		pyast.AppendChild(parent, node)

		i = j
	}
}

// stringAttrs decodes a string-literal group. The value concatenates the
// parts; the flags are the union over them. The prefix reported is the
// first part's, which is what the plain-spelling check inspects.
func (p *parser) stringAttrs(group []int) *pyast.StringAttrs {
	attrs := &pyast.StringAttrs{}
	var value strings.Builder

	for gi, ti := range group {
		sp, ok := pystring.ParseSpelling(p.text(ti))
		if !ok {
			attrs.Undecodable = true
			continue
		}
		if gi == 0 {
			attrs.Prefix = sp.Prefix
		}
		attrs.Raw = attrs.Raw || sp.Raw
		attrs.Formatted = attrs.Formatted || sp.Formatted
		attrs.Bytes = attrs.Bytes || sp.Bytes
		attrs.Triple = attrs.Triple || sp.Triple

		v, err := sp.Decode()
		if err != nil {
			attrs.Undecodable = true
			continue
		}
		value.WriteString(v)
	}

	attrs.Value = value.String()
	return attrs
}

// Package rewrite implements the quote-normalization engine. It walks a
// parsed snapshot once, decides per string literal whether and how to
// rewrite its delimiters, and applies the recorded edits back onto the
// original source in a single bottom-up pass.
//
// The rules:
//   - Use double quotes where possible.
//   - Use single quotes for empty strings and single characters.
//   - Leave multiline strings, f-strings, raw strings, and docstrings alone.
package rewrite

import (
	"fmt"

	"github.com/quotefmt/quotefmt/pkg/fix"
	"github.com/quotefmt/quotefmt/pkg/parser/python"
	"github.com/quotefmt/quotefmt/pkg/pyast"
)

// Result is the outcome of one rewrite pass.
type Result struct {
	// Content is the rewritten source. Equal to the input bytes when no
	// literal needed rewriting.
	Content []byte

	// Edits are the applied replacements, in recording order.
	Edits []fix.Edit

	// Changed reports whether Content differs from the input.
	Changed bool
}

// Engine performs one rewrite pass over one snapshot. Engines are
// single-use: each pass builds its own edit list and docstring table and
// discards them with the engine. Separate engines over separate snapshots
// are safe to run concurrently.
type Engine struct {
	snap       *pyast.FileSnapshot
	spans      *python.SpanIndex
	edits      fix.List
	docstrings map[*pyast.Node]struct{}
}

// NewEngine creates an engine for the given snapshot.
func NewEngine(snap *pyast.FileSnapshot) *Engine {
	return &Engine{
		snap:       snap,
		spans:      python.NewSpanIndex(snap),
		docstrings: make(map[*pyast.Node]struct{}),
	}
}

// Rewrite walks the tree, records the edits, and applies them, returning
// the rewritten source. Classification never fails; the only error path is
// the edit validation ahead of the splice pass.
func (e *Engine) Rewrite() (*Result, error) {
	e.visit(e.snap.Root)

	edits := e.edits.Edits()
	if err := fix.Validate(edits, len(e.snap.Content)); err != nil {
		return nil, fmt.Errorf("rewrite %s: %w", e.snap.Path, err)
	}

	return &Result{
		Content: fix.Apply(e.snap.Content, edits),
		Edits:   edits,
		Changed: len(edits) > 0,
	}, nil
}

// visit traverses the tree depth-first, parent before children, so that a
// definition marks its docstring before the literal itself is classified.
func (e *Engine) visit(n *pyast.Node) {
	if n == nil {
		return
	}

	if n.Kind.IsDefinition() {
		e.markDocstring(n)
	}

	if n.Kind == pyast.NodeStringLiteral {
		e.classifyLiteral(n)
		return
	}

	for child := n.FirstChild; child != nil; child = child.Next {
		e.visit(child)
	}
}

// markDocstring records the literal of a definition's leading bare string
// expression statement in the engine's side table. The tree itself is
// never mutated.
func (e *Engine) markDocstring(def *pyast.Node) {
	body := def.Body()
	if len(body) == 0 {
		return
	}

	first := body[0]
	if first.Kind != pyast.NodeExprStmt {
		return
	}
	if lit := first.FirstChild; lit != nil && lit.Kind == pyast.NodeStringLiteral {
		e.docstrings[lit] = struct{}{}
	}
}

// Source parses and rewrites content in one call. This is the whole-file
// entry point used by the runner and the stdin path.
func Source(path string, content []byte) (*Result, error) {
	snap, err := python.Parse(path, content)
	if err != nil {
		return nil, err
	}
	return NewEngine(snap).Rewrite()
}

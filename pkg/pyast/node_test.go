package pyast_test

import (
	"testing"

	"github.com/quotefmt/quotefmt/pkg/pyast"
)

func TestNodeKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     pyast.NodeKind
		expected string
	}{
		{pyast.NodeModule, "Module"},
		{pyast.NodeClassDef, "ClassDef"},
		{pyast.NodeFunctionDef, "FunctionDef"},
		{pyast.NodeAsyncFunctionDef, "AsyncFunctionDef"},
		{pyast.NodeExprStmt, "ExprStmt"},
		{pyast.NodeOtherStmt, "OtherStmt"},
		{pyast.NodeStringLiteral, "StringLiteral"},
		{pyast.NodeKind(200), "Unknown"},
	}

	for _, testCase := range tests {
		if got := testCase.kind.String(); got != testCase.expected {
			t.Errorf("NodeKind(%d).String(): expected %q, got %q", testCase.kind, testCase.expected, got)
		}
	}
}

func TestNodeKind_IsDefinition(t *testing.T) {
	t.Parallel()

	definitions := []pyast.NodeKind{
		pyast.NodeClassDef,
		pyast.NodeFunctionDef,
		pyast.NodeAsyncFunctionDef,
	}
	for _, kind := range definitions {
		if !kind.IsDefinition() {
			t.Errorf("%s.IsDefinition(): expected true", kind)
		}
	}

	others := []pyast.NodeKind{
		pyast.NodeModule,
		pyast.NodeExprStmt,
		pyast.NodeOtherStmt,
		pyast.NodeStringLiteral,
	}
	for _, kind := range others {
		if kind.IsDefinition() {
			t.Errorf("%s.IsDefinition(): expected false", kind)
		}
	}
}

func TestNodeKind_IsStatement(t *testing.T) {
	t.Parallel()

	statements := []pyast.NodeKind{
		pyast.NodeClassDef,
		pyast.NodeFunctionDef,
		pyast.NodeAsyncFunctionDef,
		pyast.NodeExprStmt,
		pyast.NodeOtherStmt,
	}
	for _, kind := range statements {
		if !kind.IsStatement() {
			t.Errorf("%s.IsStatement(): expected true", kind)
		}
	}

	if pyast.NodeModule.IsStatement() {
		t.Error("Module is not a statement")
	}
	if pyast.NodeStringLiteral.IsStatement() {
		t.Error("StringLiteral is not a statement")
	}
}

func TestAppendChild(t *testing.T) {
	t.Parallel()

	module := pyast.NewNode(pyast.NodeModule)

	if module.HasChildren() {
		t.Error("new node should have no children")
	}

	first := pyast.NewNode(pyast.NodeExprStmt)
	second := pyast.NewNode(pyast.NodeOtherStmt)
	third := pyast.NewNode(pyast.NodeFunctionDef)

	pyast.AppendChild(module, first)
	pyast.AppendChild(module, second)
	pyast.AppendChild(module, third)

	if !module.HasChildren() {
		t.Fatal("expected children after AppendChild")
	}

	if module.FirstChild != first || module.LastChild != third {
		t.Error("FirstChild/LastChild pointers wrong after append")
	}
	if first.Next != second || second.Next != third || third.Next != nil {
		t.Error("Next pointers wrong after append")
	}
	if third.Prev != second || second.Prev != first || first.Prev != nil {
		t.Error("Prev pointers wrong after append")
	}
	for _, child := range []*pyast.Node{first, second, third} {
		if child.Parent != module {
			t.Errorf("%s: Parent not set", child.Kind)
		}
	}

	children := module.Children()
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}
	if children[0] != first || children[1] != second || children[2] != third {
		t.Error("Children() out of order")
	}
}

func TestNode_Body(t *testing.T) {
	t.Parallel()

	// A function whose suite opens with a string literal header node
	// followed by two statements. Body must skip the literal.
	fn := pyast.NewNode(pyast.NodeFunctionDef)

	docstring := pyast.NewNode(pyast.NodeExprStmt)
	literal := pyast.NewNode(pyast.NodeStringLiteral)
	pyast.AppendChild(docstring, literal)

	stmt := pyast.NewNode(pyast.NodeOtherStmt)

	pyast.AppendChild(fn, docstring)
	pyast.AppendChild(fn, stmt)

	body := fn.Body()
	if len(body) != 2 {
		t.Fatalf("expected 2 body statements, got %d", len(body))
	}
	if body[0] != docstring || body[1] != stmt {
		t.Error("Body() returned wrong statements")
	}

	// String literal children are not statements.
	if len(docstring.Body()) != 0 {
		t.Error("expression statement body should exclude string literal children")
	}
}

func TestStringAttrs_Plain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prefix   string
		expected bool
	}{
		{"", true},
		{"r", false},
		{"b", false},
		{"f", false},
		{"rb", false},
	}

	for _, testCase := range tests {
		attrs := &pyast.StringAttrs{Prefix: testCase.prefix}
		if got := attrs.Plain(); got != testCase.expected {
			t.Errorf("Plain() with prefix %q: expected %v, got %v", testCase.prefix, testCase.expected, got)
		}
	}
}

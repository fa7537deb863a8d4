package pyast

// NodeKind classifies the type of a tree node. The set is closed: the
// rewriter only needs to distinguish definitions, expression statements,
// and string literals; everything else is NodeOtherStmt.
type NodeKind uint8

const (
	NodeModule NodeKind = iota
	NodeClassDef
	NodeFunctionDef
	NodeAsyncFunctionDef
	NodeExprStmt
	NodeOtherStmt
	NodeStringLiteral
)

var nodeKindNames = [...]string{
	NodeModule:           "Module",
	NodeClassDef:         "ClassDef",
	NodeFunctionDef:      "FunctionDef",
	NodeAsyncFunctionDef: "AsyncFunctionDef",
	NodeExprStmt:         "ExprStmt",
	NodeOtherStmt:        "OtherStmt",
	NodeStringLiteral:    "StringLiteral",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "Unknown"
}

// IsDefinition reports whether the kind is a function, class, or async
// function definition, i.e. a construct whose suite can open with a docstring.
func (k NodeKind) IsDefinition() bool {
	switch k {
	case NodeClassDef, NodeFunctionDef, NodeAsyncFunctionDef:
		return true
	default:
		return false
	}
}

// IsStatement reports whether the kind is a statement-level node.
func (k NodeKind) IsStatement() bool {
	switch k {
	case NodeClassDef, NodeFunctionDef, NodeAsyncFunctionDef, NodeExprStmt, NodeOtherStmt:
		return true
	default:
		return false
	}
}

// StringAttrs holds the decoded value and spelling properties of a string
// literal. A literal node may cover several adjacent string tokens (implicit
// concatenation); Value is the concatenated decoded value and the flags are
// the union over the parts.
type StringAttrs struct {
	// Value is the decoded string value. Meaningless when Undecodable is set.
	Value string

	// Prefix is the lowercased prefix of the first part ("", "r", "b", "f",
	// "u", "rb", "fr", ...).
	Prefix string

	// Raw is true for r-prefixed spellings.
	Raw bool

	// Formatted is true for f-prefixed (interpolated) spellings.
	Formatted bool

	// Bytes is true for b-prefixed spellings.
	Bytes bool

	// Triple is true when any part uses a triple-quoted delimiter.
	Triple bool

	// Undecodable marks spellings whose value could not be recovered
	// (for example \N{...} escapes). Such literals are never rewritten.
	Undecodable bool
}

// Plain reports whether the spelling begins with a bare quote character,
// carrying no prefix letters at all.
func (s *StringAttrs) Plain() bool {
	return s.Prefix == ""
}

// Node is a single node in the source tree. Nodes form a tree with
// parent/child/sibling pointers, in source order. The tree is built once by
// the parser and only read afterwards.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Token span (indices into FileSnapshot.Tokens).
	// Both are -1 for synthetic nodes with no source mapping.
	FirstToken int
	LastToken  int

	// File is a back-reference to the containing FileSnapshot.
	File *FileSnapshot

	// Str holds string-literal attributes; non-nil only for NodeStringLiteral.
	Str *StringAttrs
}

// NewNode creates a detached node of the given kind with no source mapping.
func NewNode(kind NodeKind) *Node {
	return &Node{
		Kind:       kind,
		FirstToken: -1,
		LastToken:  -1,
	}
}

// AppendChild attaches child as the last child of parent.
func AppendChild(parent, child *Node) {
	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}
	parent.LastChild = child
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// Body returns the statement children of a definition or module node,
// skipping non-statement children such as header string literals.
func (n *Node) Body() []*Node {
	var body []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		if child.Kind.IsStatement() {
			body = append(body, child)
		}
	}
	return body
}

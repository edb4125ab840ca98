package syntax

// NodeFlags is a small bitset carried by every node, set during parsing and
// consulted by diagnostics/driver code; it never influences parsing itself.
type NodeFlags uint8

const (
	// NodeHasError marks a node that the parser could not fully build.
	// It is set only on the empty placeholder Identifier that
	// parseOperand substitutes when no expression is found.
	NodeHasError NodeFlags = 1 << iota
	// NodeChildHasError marks a node one of whose descendants carries
	// NodeHasError. Nothing currently sets it: the parser aborts at the
	// first error rather than continuing to build a tree to fold flags
	// into, so there is no later node to mark. Reserved for a future
	// error-recovery mode that keeps parsing past the first failure.
	NodeChildHasError
)

// Node is the interface implemented by every AST node: every node knows its
// own kind, its exact source extent, its flags, and its parent.
type Node interface {
	Kind() SyntaxKind
	Pos() Position
	Flags() NodeFlags
	Parent() Node
	setParent(Node)
	setFlags(NodeFlags)
	setLength(int)
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is implemented by every declaration node.
type Decl interface {
	Node
	declNode()
}

// nodeBase is embedded by every concrete node type. It supplies the Node
// interface's bookkeeping (kind, position, flags, parent) so individual node
// structs only declare their own semantic fields, following the source-of-truth
// enum's node/expr/stmt/decl embedding idiom, generalized with an explicit Kind
// field since the node set needs range-checkable kinds, not just a Go type
// switch.
type nodeBase struct {
	kind   SyntaxKind
	pos    Position
	flags  NodeFlags
	parent Node
}

func (n *nodeBase) Kind() SyntaxKind    { return n.kind }
func (n *nodeBase) Pos() Position       { return n.pos }
func (n *nodeBase) Flags() NodeFlags    { return n.flags }
func (n *nodeBase) Parent() Node        { return n.parent }
func (n *nodeBase) setParent(p Node)    { n.parent = p }
func (n *nodeBase) setFlags(f NodeFlags) { n.flags |= f }
func (n *nodeBase) setLength(l int)     { n.pos = n.pos.withLength(l) }

type exprBase struct{ nodeBase }

func (*exprBase) exprNode() {}

type stmtBase struct{ nodeBase }

func (*stmtBase) stmtNode() {}

type declBase struct{ nodeBase }

func (*declBase) declNode() {}

// NodeArray is a parsed list of nodes together with the Position where the
// list starts (captured when the list's opening token is consumed), so an
// empty list still carries a meaningful position for diagnostics. Its
// length is left at 0.
type NodeArray[T Node] struct {
	Position Position
	Nodes    []T
}

// ---------------------------------------------------------------------
// Leaf expressions. Identifier, IntegerLiteral, and BoolLiteral reuse their
// token/keyword's SyntaxKind rather than getting a dedicated node-kind
// value (see kind.go's design note).
// ---------------------------------------------------------------------

// Identifier is a leaf expression naming a variable, function, or
// parameter. Its Kind() is always IdentifierToken.
type IdentifierNode struct {
	exprBase
	Text string
}

// IntegerLiteralNode is a leaf expression holding an integer constant. Its
// Kind() is always IntegerLiteralToken.
type IntegerLiteralNode struct {
	exprBase
	Text string
}

// BoolLiteralNode is a leaf expression holding a boolean constant. Its
// Kind() is TrueKeyword or FalseKeyword.
type BoolLiteralNode struct {
	exprBase
}

// KeywordTypeNode denotes a primitive type written as a bare keyword
// (bool, int, void). Its Kind() is BoolKeyword, IntKeyword, or VoidKeyword.
type KeywordTypeNode struct {
	nodeBase
}

func (*KeywordTypeNode) typeNode() {}

// TokenNode wraps a single operator token that appears as a node in its own
// right (e.g. BinaryExpression.OperatorToken). Its Kind() is the wrapped
// operator's token kind.
type TokenNode struct {
	nodeBase
}

// ---------------------------------------------------------------------
// Composite expressions
// ---------------------------------------------------------------------

// BinaryExpressionNode is `Left OperatorToken Right`, built by the
// precedence-climbing parser. Kind() is always BinaryExpression.
type BinaryExpressionNode struct {
	exprBase
	Left          Expr
	OperatorToken *TokenNode
	Right         Expr
}

// CallExpressionNode is `Callee(Args...)`. Kind() is always CallExpression.
type CallExpressionNode struct {
	exprBase
	Callee Expr
	Args   NodeArray[Expr]
}

// ---------------------------------------------------------------------
// Declarations
// ---------------------------------------------------------------------

// VarDeclarationNode is `let Name (: Type)? (= Initializer)?`. Kind() is
// always VarDeclaration.
type VarDeclarationNode struct {
	declBase
	Name        *IdentifierNode
	Type        Node // a KeywordTypeNode, or nil if no type was written
	Initializer Expr // nil if there is no initializer
}

// ParameterDeclarationNode is one `Name : Type` entry in a function's
// parameter list. Kind() is always ParameterDeclaration.
type ParameterDeclarationNode struct {
	declBase
	Name *IdentifierNode
	Type Node // a KeywordTypeNode
}

// FuncDeclarationNode is a full function definition: `func Name(Params) :
// ReturnType { Body }`. Kind() is always FuncDeclaration.
type FuncDeclarationNode struct {
	declBase
	Name       *IdentifierNode
	Parameters NodeArray[*ParameterDeclarationNode]
	ReturnType Node // a KeywordTypeNode
	Body       *BlockStatementNode
}

// ---------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------

// BlockStatementNode is `{ Statements... }`. Kind() is always
// BlockStatement.
type BlockStatementNode struct {
	stmtBase
	Statements NodeArray[Stmt]
}

// VarDeclarationStatementNode wraps a VarDeclarationNode ending in `;` as a
// statement. Kind() is always VarDeclarationStatement.
type VarDeclarationStatementNode struct {
	stmtBase
	Declaration *VarDeclarationNode
}

// FuncDeclarationStatementNode wraps a FuncDeclarationNode used as a
// top-level statement (function declarations are rejected anywhere else).
// Kind() is always FuncDeclarationStatement.
type FuncDeclarationStatementNode struct {
	stmtBase
	Declaration *FuncDeclarationNode
}

// ExpressionStatementNode is `Expression ;`. Kind() is always
// ExpressionStatement.
type ExpressionStatementNode struct {
	stmtBase
	Expression Expr
}

// IfStatementNode is `if ( Condition ) Then (else Else)?`. Then and Else
// are general statements, not necessarily blocks — parseIfStatement never
// consumes `{` itself. Kind() is always IfStatement.
type IfStatementNode struct {
	stmtBase
	Condition Expr
	Then      Stmt
	Else      Stmt // nil if there is no else clause
}

// ReturnStatementNode is `return Expression? ;`. Kind() is always
// ReturnStatement.
type ReturnStatementNode struct {
	stmtBase
	Expression Expr // nil for a bare `return;`
}

// ---------------------------------------------------------------------
// Root
// ---------------------------------------------------------------------

// SourceFileNode is the root of a parsed file: a flat sequence of top-level
// statements (variable declarations, function declarations, and blocks).
// Kind() is always SourceFile.
type SourceFileNode struct {
	nodeBase
	Filename   string
	Statements NodeArray[Stmt]
}

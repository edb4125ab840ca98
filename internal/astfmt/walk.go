package astfmt

import "github.com/unholy-lang/unholy/internal/syntax"

// Visitor is called for each node during Walk. If it returns false, the
// node's children are not visited.
type Visitor func(node syntax.Node) bool

// Walk traverses an AST in depth-first, pre-order.
func Walk(node syntax.Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}
	switch n := node.(type) {
	case *syntax.SourceFileNode:
		for _, s := range n.Statements.Nodes {
			Walk(s, v)
		}
	case *syntax.BinaryExpressionNode:
		Walk(n.Left, v)
		Walk(n.OperatorToken, v)
		Walk(n.Right, v)
	case *syntax.CallExpressionNode:
		Walk(n.Callee, v)
		for _, a := range n.Args.Nodes {
			Walk(a, v)
		}
	case *syntax.VarDeclarationNode:
		Walk(n.Name, v)
		if n.Type != nil {
			Walk(n.Type, v)
		}
		if n.Initializer != nil {
			Walk(n.Initializer, v)
		}
	case *syntax.ParameterDeclarationNode:
		Walk(n.Name, v)
		Walk(n.Type, v)
	case *syntax.FuncDeclarationNode:
		Walk(n.Name, v)
		for _, param := range n.Parameters.Nodes {
			Walk(param, v)
		}
		Walk(n.ReturnType, v)
		Walk(n.Body, v)
	case *syntax.BlockStatementNode:
		for _, s := range n.Statements.Nodes {
			Walk(s, v)
		}
	case *syntax.VarDeclarationStatementNode:
		Walk(n.Declaration, v)
	case *syntax.FuncDeclarationStatementNode:
		Walk(n.Declaration, v)
	case *syntax.ExpressionStatementNode:
		Walk(n.Expression, v)
	case *syntax.IfStatementNode:
		Walk(n.Condition, v)
		Walk(n.Then, v)
		if n.Else != nil {
			Walk(n.Else, v)
		}
	case *syntax.ReturnStatementNode:
		if n.Expression != nil {
			Walk(n.Expression, v)
		}
	}
}

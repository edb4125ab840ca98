package astfmt

import (
	"encoding/json"
	"io"

	"github.com/unholy-lang/unholy/internal/syntax"
)

// FprintJSON writes a JSON representation of node to w.
func FprintJSON(w io.Writer, node syntax.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node syntax.Node) any {
	if node == nil {
		return nil
	}

	base := map[string]any{
		"kind": node.Kind().String(),
		"pos":  node.Pos().String(),
	}

	switch n := node.(type) {
	case *syntax.SourceFileNode:
		base["filename"] = n.Filename
		base["statements"] = mapSlice(n.Statements.Nodes)
	case *syntax.IdentifierNode:
		base["text"] = n.Text
	case *syntax.IntegerLiteralNode:
		base["text"] = n.Text
	case *syntax.BinaryExpressionNode:
		base["left"] = toJSON(n.Left)
		base["operator"] = n.OperatorToken.Kind().String()
		base["right"] = toJSON(n.Right)
	case *syntax.CallExpressionNode:
		base["callee"] = toJSON(n.Callee)
		base["args"] = mapSlice(n.Args.Nodes)
	case *syntax.VarDeclarationNode:
		base["name"] = toJSON(n.Name)
		if n.Type != nil {
			base["varType"] = toJSON(n.Type)
		}
		if n.Initializer != nil {
			base["initializer"] = toJSON(n.Initializer)
		}
	case *syntax.ParameterDeclarationNode:
		base["name"] = toJSON(n.Name)
		base["paramType"] = toJSON(n.Type)
	case *syntax.FuncDeclarationNode:
		base["name"] = toJSON(n.Name)
		base["params"] = mapSlice(n.Parameters.Nodes)
		base["returnType"] = toJSON(n.ReturnType)
		base["body"] = toJSON(n.Body)
	case *syntax.BlockStatementNode:
		base["statements"] = mapSlice(n.Statements.Nodes)
	case *syntax.VarDeclarationStatementNode:
		base["declaration"] = toJSON(n.Declaration)
	case *syntax.FuncDeclarationStatementNode:
		base["declaration"] = toJSON(n.Declaration)
	case *syntax.ExpressionStatementNode:
		base["expression"] = toJSON(n.Expression)
	case *syntax.IfStatementNode:
		base["condition"] = toJSON(n.Condition)
		base["then"] = toJSON(n.Then)
		if n.Else != nil {
			base["else"] = toJSON(n.Else)
		}
	case *syntax.ReturnStatementNode:
		if n.Expression != nil {
			base["expression"] = toJSON(n.Expression)
		}
	}
	return base
}

func mapSlice[T syntax.Node](nodes []T) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		out[i] = toJSON(n)
	}
	return out
}

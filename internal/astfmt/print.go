// Package astfmt formats a parsed Unholy AST for human and machine
// consumption: an indented text dump, a JSON dump, and a generic
// depth-first walker. None of this lives in internal/syntax — the AST
// printer and tree walker are external collaborators to the core scanner
// and parser, consumed only by the driver.
package astfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/unholy-lang/unholy/internal/syntax"
)

// Fprint writes an indented textual representation of node to w.
func Fprint(w io.Writer, node syntax.Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node syntax.Node) {
	if node == nil {
		return
	}
	p.printf("%s %s\n", node.Kind(), node.Pos())
	p.indent++
	defer func() { p.indent-- }()

	switch n := node.(type) {
	case *syntax.SourceFileNode:
		for _, s := range n.Statements.Nodes {
			p.print(s)
		}
	case *syntax.IdentifierNode:
		p.printf("Text: %s\n", n.Text)
	case *syntax.IntegerLiteralNode:
		p.printf("Text: %s\n", n.Text)
	case *syntax.BinaryExpressionNode:
		p.printf("Left:\n")
		p.indent++
		p.print(n.Left)
		p.indent--
		p.printf("Operator: %s\n", n.OperatorToken.Kind())
		p.printf("Right:\n")
		p.indent++
		p.print(n.Right)
		p.indent--
	case *syntax.CallExpressionNode:
		p.printf("Callee:\n")
		p.indent++
		p.print(n.Callee)
		p.indent--
		for _, a := range n.Args.Nodes {
			p.print(a)
		}
	case *syntax.VarDeclarationNode:
		p.print(n.Name)
		if n.Type != nil {
			p.print(n.Type)
		}
		if n.Initializer != nil {
			p.print(n.Initializer)
		}
	case *syntax.ParameterDeclarationNode:
		p.print(n.Name)
		p.print(n.Type)
	case *syntax.FuncDeclarationNode:
		p.print(n.Name)
		for _, param := range n.Parameters.Nodes {
			p.print(param)
		}
		p.print(n.ReturnType)
		p.print(n.Body)
	case *syntax.BlockStatementNode:
		for _, s := range n.Statements.Nodes {
			p.print(s)
		}
	case *syntax.VarDeclarationStatementNode:
		p.print(n.Declaration)
	case *syntax.FuncDeclarationStatementNode:
		p.print(n.Declaration)
	case *syntax.ExpressionStatementNode:
		p.print(n.Expression)
	case *syntax.IfStatementNode:
		p.printf("Condition:\n")
		p.indent++
		p.print(n.Condition)
		p.indent--
		p.printf("Then:\n")
		p.indent++
		p.print(n.Then)
		p.indent--
		if n.Else != nil {
			p.printf("Else:\n")
			p.indent++
			p.print(n.Else)
			p.indent--
		}
	case *syntax.ReturnStatementNode:
		if n.Expression != nil {
			p.print(n.Expression)
		}
	}
}

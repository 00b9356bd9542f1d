// Package ast defines the abstract syntax tree consumed by the marmoset
// compiler.
//
// The tree has three root shapes: a whole [Program], a single [Stmt], or a
// single [Expr]. Statement and expression variants form closed sets: the
// marker methods are unexported, so only types declared in this package can
// satisfy [Stmt] or [Expr].
package ast

import (
	"bytes"

	"github.com/cloudcmds/marmoset/internal/token"
)

// Node represents a portion of the syntax tree.
type Node interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() token.Position

	// String returns a human friendly representation of the Node. This should
	// be similar to the source code, but not necessarily identical.
	String() string
}

// Stmt represents a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression node. Expressions evaluate to a value
// and may be embedded within other expressions.
type Expr interface {
	Node
	exprNode()
}

// Program represents a complete program: an ordered sequence of statements.
type Program struct {
	Stmts []Stmt
}

func (p *Program) Pos() token.Position {
	if len(p.Stmts) > 0 {
		return pos(p.Stmts[0])
	}
	return token.NoPos
}

func (p *Program) String() string {
	var out bytes.Buffer
	for i, stmt := range p.Stmts {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(str(stmt))
	}
	return out.String()
}

// str renders a child node that may be missing from a hand-built tree.
func str(n Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.String()
}

// pos returns the position of a child node that may be missing.
func pos(n Node) token.Position {
	if n == nil {
		return token.NoPos
	}
	return n.Pos()
}

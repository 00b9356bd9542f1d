package ast

import (
	"bytes"

	"github.com/cloudcmds/marmoset/internal/token"
)

// ExprStmt is a statement that evaluates an expression and discards its
// value, for example "1 + 2;".
type ExprStmt struct {
	X Expr
}

func (s *ExprStmt) stmtNode() {}

func (s *ExprStmt) Pos() token.Position { return pos(s.X) }

func (s *ExprStmt) String() string { return str(s.X) + ";" }

// Return is a statement that yields a value.
type Return struct {
	Return token.Position // position of "return" keyword
	Value  Expr
}

func (s *Return) stmtNode() {}

func (s *Return) Pos() token.Position { return s.Return }

func (s *Return) String() string {
	return "return " + str(s.Value) + ";"
}

// Assign binds a value to a name, for example "let x = 5;".
type Assign struct {
	Let   token.Position // position of "let" keyword
	Name  *Ident
	Value Expr
}

func (s *Assign) stmtNode() {}

func (s *Assign) Pos() token.Position { return s.Let }

func (s *Assign) String() string {
	var out bytes.Buffer
	out.WriteString("let ")
	out.WriteString(s.Name.String())
	out.WriteString(" = ")
	out.WriteString(str(s.Value))
	out.WriteString(";")
	return out.String()
}

// Block holds a sequence of statements. It is the body of a conditional
// branch or a function, and may also stand on its own as an expression.
type Block struct {
	Lbrace token.Position // position of "{"
	Stmts  []Stmt
}

func (x *Block) exprNode() {}

func (x *Block) Pos() token.Position {
	if x == nil {
		return token.NoPos
	}
	return x.Lbrace
}

func (x *Block) String() string {
	if x == nil || len(x.Stmts) == 0 {
		return "{}"
	}
	var out bytes.Buffer
	out.WriteString("{ ")
	for i, stmt := range x.Stmts {
		if i > 0 {
			out.WriteString(" ")
		}
		out.WriteString(str(stmt))
	}
	out.WriteString(" }")
	return out.String()
}

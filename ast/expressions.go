package ast

import (
	"bytes"
	"strings"

	"github.com/cloudcmds/marmoset/internal/token"
)

// Ident is an expression node that refers to a variable by name.
type Ident struct {
	NamePos token.Position // position of identifier
	Name    string         // identifier name
}

func (x *Ident) exprNode() {}

func (x *Ident) Pos() token.Position { return x.NamePos }

func (x *Ident) String() string {
	if x == nil {
		return "<nil>"
	}
	return x.Name
}

// Prefix is an operator expression where the operator precedes the operand.
// Examples include "!false" and "-x".
type Prefix struct {
	OpPos token.Position // position of operator
	Op    string         // operator: "!", "-"
	X     Expr           // operand
}

func (x *Prefix) exprNode() {}

func (x *Prefix) Pos() token.Position { return x.OpPos }

func (x *Prefix) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.Op)
	out.WriteString(str(x.X))
	out.WriteString(")")
	return out.String()
}

// Infix is an operator expression where the operator is between the operands.
// Examples include "x + y" and "5 - 1".
type Infix struct {
	X     Expr           // left operand
	OpPos token.Position // position of operator
	Op    string         // operator: "+", "-", "*", "/", "<", ">", "==", "!="
	Y     Expr           // right operand
}

func (x *Infix) exprNode() {}

func (x *Infix) Pos() token.Position {
	if x.X == nil {
		return x.OpPos
	}
	return x.X.Pos()
}

func (x *Infix) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(str(x.X))
	out.WriteString(" " + x.Op + " ")
	out.WriteString(str(x.Y))
	out.WriteString(")")
	return out.String()
}

// If is a conditional expression. The value of the expression is the value
// of whichever branch runs.
type If struct {
	If          token.Position // position of "if" keyword
	Cond        Expr           // condition
	Consequence *Block         // then branch
	Alternative *Block         // else branch; nil if no else
}

func (x *If) exprNode() {}

func (x *If) Pos() token.Position { return x.If }

func (x *If) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(str(x.Cond))
	out.WriteString(") ")
	out.WriteString(x.Consequence.String())
	if x.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(x.Alternative.String())
	}
	return out.String()
}

// Call is an expression node that describes the invocation of a function.
type Call struct {
	Fun  Expr   // function expression
	Args []Expr // function arguments
}

func (x *Call) exprNode() {}

func (x *Call) Pos() token.Position { return pos(x.Fun) }

func (x *Call) String() string {
	args := make([]string, 0, len(x.Args))
	for _, a := range x.Args {
		args = append(args, str(a))
	}
	return str(x.Fun) + "(" + strings.Join(args, ", ") + ")"
}

// Index is an expression node that describes indexing on an object,
// for example "arr[0]".
type Index struct {
	X     Expr // expression being indexed
	Index Expr // index expression
}

func (x *Index) exprNode() {}

func (x *Index) Pos() token.Position { return pos(x.X) }

func (x *Index) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(str(x.X))
	out.WriteString("[")
	out.WriteString(str(x.Index))
	out.WriteString("])")
	return out.String()
}

package ast

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/cloudcmds/marmoset/internal/token"
)

// Int is an expression node that holds a 64-bit signed integer literal.
type Int struct {
	ValuePos token.Position // position of the literal
	Value    int64
}

func (x *Int) exprNode() {}

func (x *Int) Pos() token.Position { return x.ValuePos }

func (x *Int) String() string { return strconv.FormatInt(x.Value, 10) }

// Float is an expression node that holds a floating point literal.
type Float struct {
	ValuePos token.Position
	Value    float64
}

func (x *Float) exprNode() {}

func (x *Float) Pos() token.Position { return x.ValuePos }

func (x *Float) String() string { return strconv.FormatFloat(x.Value, 'g', -1, 64) }

// Bool is an expression node that holds a boolean literal.
type Bool struct {
	ValuePos token.Position
	Value    bool
}

func (x *Bool) exprNode() {}

func (x *Bool) Pos() token.Position { return x.ValuePos }

func (x *Bool) String() string { return strconv.FormatBool(x.Value) }

// String is an expression node that holds a string literal.
type String struct {
	ValuePos token.Position
	Value    string
}

func (x *String) exprNode() {}

func (x *String) Pos() token.Position { return x.ValuePos }

func (x *String) String() string { return fmt.Sprintf("%q", x.Value) }

// List is an array literal, for example "[1, 2, 3]".
type List struct {
	Lbrack token.Position // position of "["
	Items  []Expr
}

func (x *List) exprNode() {}

func (x *List) Pos() token.Position { return x.Lbrack }

func (x *List) String() string {
	items := make([]string, 0, len(x.Items))
	for _, item := range x.Items {
		items = append(items, str(item))
	}
	return "[" + strings.Join(items, ", ") + "]"
}

// Func is a function literal, for example "fn(x, y) { x + y }".
type Func struct {
	Fn     token.Position // position of "fn" keyword
	Params []*Ident
	Body   *Block
}

func (x *Func) exprNode() {}

func (x *Func) Pos() token.Position { return x.Fn }

func (x *Func) String() string {
	params := make([]string, 0, len(x.Params))
	for _, p := range x.Params {
		params = append(params, p.String())
	}
	var out bytes.Buffer
	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	out.WriteString(x.Body.String())
	return out.String()
}

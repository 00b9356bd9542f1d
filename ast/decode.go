package ast

import (
	"fmt"

	"github.com/cloudcmds/marmoset/internal/token"
	"gopkg.in/yaml.v3"
)

// document is the interchange form of a syntax tree node. The parser writes
// trees in this shape as JSON or YAML; since YAML is a superset of JSON, one
// decoder handles both.
//
//	{"type": "infix", "op": "+",
//	 "left": {"type": "int", "value": 1},
//	 "right": {"type": "int", "value": 2}}
type document struct {
	Type   string `yaml:"type"`
	Line   int    `yaml:"line"`
	Column int    `yaml:"column"`

	Value yaml.Node `yaml:"value"`
	Name  string    `yaml:"name"`
	Op    string    `yaml:"op"`

	Left        *document   `yaml:"left"`
	Right       *document   `yaml:"right"`
	Operand     *document   `yaml:"operand"`
	Expression  *document   `yaml:"expression"`
	Condition   *document   `yaml:"condition"`
	Consequence *document   `yaml:"consequence"`
	Alternative *document   `yaml:"alternative"`
	Function    *document   `yaml:"function"`
	Index       *document   `yaml:"index"`
	Body        *document   `yaml:"body"`
	Statements  []*document `yaml:"statements"`
	Items       []*document `yaml:"items"`
	Args        []*document `yaml:"args"`
	Params      []string    `yaml:"params"`

	file string
}

// Decode reads a syntax tree from a JSON or YAML document. The root may be a
// program, a statement or an expression.
func Decode(data []byte) (Node, error) {
	return DecodeFile("", data)
}

// DecodeFile is like Decode, but node positions that carry a line number
// are attributed to filename.
func DecodeFile(filename string, data []byte) (Node, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("ast: decode document: %w", err)
	}
	doc.setFile(filename)
	return doc.node()
}

func (d *document) setFile(name string) {
	if d == nil || name == "" {
		return
	}
	d.file = name
	for _, child := range []*document{
		d.Left, d.Right, d.Operand, d.Expression, d.Condition,
		d.Consequence, d.Alternative, d.Function, d.Index, d.Body,
	} {
		child.setFile(name)
	}
	for _, list := range [][]*document{d.Statements, d.Items, d.Args} {
		for _, child := range list {
			child.setFile(name)
		}
	}
}

func (d *document) pos() token.Position {
	var pos token.Position
	if d.Line > 0 {
		pos.Line = d.Line - 1
		pos.File = d.file
	}
	if d.Column > 0 {
		pos.Column = d.Column - 1
	}
	return pos
}

func (d *document) node() (Node, error) {
	switch d.Type {
	case "program":
		stmts, err := decodeStmts(d.Statements)
		if err != nil {
			return nil, err
		}
		return &Program{Stmts: stmts}, nil
	case "expression_statement", "return", "let":
		return d.stmt()
	default:
		return d.expr()
	}
}

func (d *document) stmt() (Stmt, error) {
	switch d.Type {
	case "expression_statement":
		x, err := d.Expression.required("expression_statement", "expression")
		if err != nil {
			return nil, err
		}
		return &ExprStmt{X: x}, nil
	case "return":
		x, err := d.Expression.required("return", "expression")
		if err != nil {
			return nil, err
		}
		return &Return{Return: d.pos(), Value: x}, nil
	case "let":
		if d.Name == "" {
			return nil, fmt.Errorf("ast: let: missing name")
		}
		x, err := d.Expression.required("let", "expression")
		if err != nil {
			return nil, err
		}
		return &Assign{Let: d.pos(), Name: &Ident{NamePos: d.pos(), Name: d.Name}, Value: x}, nil
	case "":
		return nil, fmt.Errorf("ast: statement: missing type")
	default:
		return nil, fmt.Errorf("ast: unknown statement type %q", d.Type)
	}
}

func (d *document) expr() (Expr, error) {
	switch d.Type {
	case "int":
		var v int64
		if err := d.value("int", &v); err != nil {
			return nil, err
		}
		return &Int{ValuePos: d.pos(), Value: v}, nil
	case "float":
		var v float64
		if err := d.value("float", &v); err != nil {
			return nil, err
		}
		return &Float{ValuePos: d.pos(), Value: v}, nil
	case "bool":
		var v bool
		if err := d.value("bool", &v); err != nil {
			return nil, err
		}
		return &Bool{ValuePos: d.pos(), Value: v}, nil
	case "string":
		var v string
		if err := d.value("string", &v); err != nil {
			return nil, err
		}
		return &String{ValuePos: d.pos(), Value: v}, nil
	case "ident":
		if d.Name == "" {
			return nil, fmt.Errorf("ast: ident: missing name")
		}
		return &Ident{NamePos: d.pos(), Name: d.Name}, nil
	case "list":
		items, err := decodeExprs(d.Items)
		if err != nil {
			return nil, err
		}
		return &List{Lbrack: d.pos(), Items: items}, nil
	case "prefix":
		x, err := d.Operand.required("prefix", "operand")
		if err != nil {
			return nil, err
		}
		return &Prefix{OpPos: d.pos(), Op: d.Op, X: x}, nil
	case "infix":
		left, err := d.Left.required("infix", "left")
		if err != nil {
			return nil, err
		}
		right, err := d.Right.required("infix", "right")
		if err != nil {
			return nil, err
		}
		return &Infix{X: left, OpPos: d.pos(), Op: d.Op, Y: right}, nil
	case "if":
		cond, err := d.Condition.required("if", "condition")
		if err != nil {
			return nil, err
		}
		if d.Consequence == nil {
			return nil, fmt.Errorf("ast: if: missing consequence")
		}
		consequence, err := d.Consequence.block()
		if err != nil {
			return nil, err
		}
		node := &If{If: d.pos(), Cond: cond, Consequence: consequence}
		if d.Alternative != nil {
			if node.Alternative, err = d.Alternative.block(); err != nil {
				return nil, err
			}
		}
		return node, nil
	case "block":
		return d.block()
	case "fn":
		params := make([]*Ident, 0, len(d.Params))
		for _, p := range d.Params {
			params = append(params, &Ident{NamePos: d.pos(), Name: p})
		}
		body := &Block{Lbrace: d.pos()}
		if d.Body != nil {
			var err error
			if body, err = d.Body.block(); err != nil {
				return nil, err
			}
		}
		return &Func{Fn: d.pos(), Params: params, Body: body}, nil
	case "call":
		fun, err := d.Function.required("call", "function")
		if err != nil {
			return nil, err
		}
		args, err := decodeExprs(d.Args)
		if err != nil {
			return nil, err
		}
		return &Call{Fun: fun, Args: args}, nil
	case "index":
		x, err := d.Left.required("index", "left")
		if err != nil {
			return nil, err
		}
		index, err := d.Index.required("index", "index")
		if err != nil {
			return nil, err
		}
		return &Index{X: x, Index: index}, nil
	case "":
		return nil, fmt.Errorf("ast: expression: missing type")
	default:
		return nil, fmt.Errorf("ast: unknown expression type %q", d.Type)
	}
}

func (d *document) block() (*Block, error) {
	if d.Type != "block" {
		return nil, fmt.Errorf("ast: expected block (got %q)", d.Type)
	}
	stmts, err := decodeStmts(d.Statements)
	if err != nil {
		return nil, err
	}
	return &Block{Lbrace: d.pos(), Stmts: stmts}, nil
}

// value decodes the literal value of a node into out.
func (d *document) value(kind string, out any) error {
	if d.Value.Kind == 0 {
		return fmt.Errorf("ast: %s: missing value", kind)
	}
	if err := d.Value.Decode(out); err != nil {
		return fmt.Errorf("ast: %s: %w", kind, err)
	}
	return nil
}

// required decodes a mandatory child expression of a parent node.
func (d *document) required(parent, field string) (Expr, error) {
	if d == nil {
		return nil, fmt.Errorf("ast: %s: missing %s", parent, field)
	}
	return d.expr()
}

func decodeStmts(docs []*document) ([]Stmt, error) {
	stmts := make([]Stmt, 0, len(docs))
	for _, doc := range docs {
		if doc == nil {
			return nil, fmt.Errorf("ast: empty statement")
		}
		stmt, err := doc.stmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func decodeExprs(docs []*document) ([]Expr, error) {
	exprs := make([]Expr, 0, len(docs))
	for _, doc := range docs {
		if doc == nil {
			return nil, fmt.Errorf("ast: empty expression")
		}
		expr, err := doc.expr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

package ast

import (
	"testing"

	"github.com/cloudcmds/marmoset/internal/token"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	input := `{
		"type": "program",
		"statements": [
			{"type": "expression_statement", "expression": {
				"type": "infix", "op": "+", "line": 1, "column": 3,
				"left": {"type": "int", "value": 1, "line": 1, "column": 1},
				"right": {"type": "int", "value": 2, "line": 1, "column": 5}
			}}
		]
	}`
	node, err := Decode([]byte(input))
	require.Nil(t, err)
	program, ok := node.(*Program)
	require.True(t, ok)
	require.Len(t, program.Stmts, 1)
	stmt, ok := program.Stmts[0].(*ExprStmt)
	require.True(t, ok)
	infix, ok := stmt.X.(*Infix)
	require.True(t, ok)
	require.Equal(t, "+", infix.Op)
	require.Equal(t, token.Position{Line: 0, Column: 2}, infix.OpPos)
	require.Equal(t, &Int{ValuePos: token.Position{Line: 0, Column: 0}, Value: 1}, infix.X)
	require.Equal(t, "1 + 2", program.String()[1:6])
}

func TestDecodeYAML(t *testing.T) {
	input := `
type: if
condition:
  type: infix
  op: ">"
  left: {type: ident, name: x}
  right: {type: int, value: 5}
consequence:
  type: block
  statements:
    - type: expression_statement
      expression: {type: int, value: 10}
alternative:
  type: block
  statements:
    - type: return
      expression: {type: bool, value: false}
`
	node, err := Decode([]byte(input))
	require.Nil(t, err)
	require.Equal(t, "if ((x > 5)) { 10; } else { return false; }", node.String())
	ifNode, ok := node.(*If)
	require.True(t, ok)
	require.NotNil(t, ifNode.Alternative)
}

func TestDecodeAllExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`{type: float, value: 2.5}`, "2.5"},
		{`{type: string, value: "hey"}`, `"hey"`},
		{`{type: list, items: [{type: int, value: 1}, {type: bool, value: true}]}`, "[1, true]"},
		{`{type: prefix, op: "-", operand: {type: int, value: 3}}`, "(-3)"},
		{`{type: fn, params: [a], body: {type: block, statements: [{type: return, expression: {type: ident, name: a}}]}}`, "fn(a) { return a; }"},
		{`{type: fn}`, "fn() {}"},
		{`{type: call, function: {type: ident, name: f}, args: [{type: int, value: 1}]}`, "f(1)"},
		{`{type: index, left: {type: ident, name: a}, index: {type: int, value: 0}}`, "(a[0])"},
		{`{type: let, name: x, expression: {type: int, value: 5}}`, "let x = 5;"},
		{`{type: block, statements: []}`, "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			node, err := Decode([]byte(tt.input))
			require.Nil(t, err)
			require.Equal(t, tt.expected, node.String())
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		input  string
		errMsg string
	}{
		{`{type: banana}`, `ast: unknown expression type "banana"`},
		{`{}`, "ast: expression: missing type"},
		{`{type: int}`, "ast: int: missing value"},
		{`{type: infix, op: "+", left: {type: int, value: 1}}`, "ast: infix: missing right"},
		{`{type: if, condition: {type: bool, value: true}}`, "ast: if: missing consequence"},
		{`{type: if, condition: {type: bool, value: true}, consequence: {type: int, value: 1}}`, `ast: expected block (got "int")`},
		{`{type: program, statements: [{type: int, value: 1}]}`, `ast: unknown statement type "int"`},
		{`{type: ident}`, "ast: ident: missing name"},
		{`{type: let, expression: {type: int, value: 1}}`, "ast: let: missing name"},
		{`{type: return}`, "ast: return: missing expression"},
	}
	for _, tt := range tests {
		t.Run(tt.errMsg, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			require.NotNil(t, err)
			require.Equal(t, tt.errMsg, err.Error())
		})
	}
}

func TestDecodeInvalidDocument(t *testing.T) {
	_, err := Decode([]byte("type: [unclosed"))
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "ast: decode document")
}

func TestDecodeFile(t *testing.T) {
	input := `
type: expression_statement
expression:
  type: infix
  op: "+"
  line: 1
  column: 3
  left: {type: int, value: 1, line: 1, column: 1}
  right: {type: int, value: 2}
`
	node, err := DecodeFile("add.yaml", []byte(input))
	require.Nil(t, err)
	infix := node.(*ExprStmt).X.(*Infix)
	require.Equal(t, token.Position{File: "add.yaml", Line: 0, Column: 2}, infix.OpPos)
	require.Equal(t, token.Position{File: "add.yaml"}, infix.X.Pos())
	require.True(t, infix.X.Pos().IsValid())
	require.False(t, infix.Y.Pos().IsValid())
}

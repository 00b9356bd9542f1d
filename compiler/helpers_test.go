package compiler

import "github.com/cloudcmds/marmoset/ast"

func concat(instructions ...[]byte) []byte {
	var out []byte
	for _, ins := range instructions {
		out = append(out, ins...)
	}
	return out
}

func intLit(v int64) *ast.Int { return &ast.Int{Value: v} }

func boolLit(v bool) *ast.Bool { return &ast.Bool{Value: v} }

func infix(x ast.Expr, operator string, y ast.Expr) *ast.Infix {
	return &ast.Infix{X: x, Op: operator, Y: y}
}

func prefix(operator string, x ast.Expr) *ast.Prefix {
	return &ast.Prefix{Op: operator, X: x}
}

func exprStmt(x ast.Expr) *ast.ExprStmt { return &ast.ExprStmt{X: x} }

func block(stmts ...ast.Stmt) *ast.Block { return &ast.Block{Stmts: stmts} }

func program(stmts ...ast.Stmt) *ast.Program { return &ast.Program{Stmts: stmts} }

package compiler

import (
	"slices"

	"github.com/cloudcmds/marmoset/ast"
	"github.com/cloudcmds/marmoset/errors"
	"github.com/hashicorp/go-multierror"
)

// Check reports every construct in node that Compile cannot lower. Unlike
// Compile it does not stop at the first one, and it produces no bytecode.
// The returned error is a *multierror.Error holding one *errors.CompileError
// per construct, or nil if the whole tree compiles.
func Check(node ast.Node, cfg *Config) error {
	c := New(cfg)
	var result *multierror.Error
	if node == nil {
		return multierror.Append(result, errors.Unimplemented("empty node", "")).ErrorOrNil()
	}
	ast.Inspect(node, func(n ast.Node) bool {
		if !supported(n) {
			result = multierror.Append(result, c.unimplemented(n))
			// The children of an unsupported construct are not reported.
			return false
		}
		if what := missingChild(n); what != "" {
			result = multierror.Append(result, c.locate(errors.Unimplemented(what, ""), n))
		}
		return true
	})
	return result.ErrorOrNil()
}

// missingChild names a required child that is absent from a supported node,
// matching the error Compile returns for it.
func missingChild(node ast.Node) string {
	switch node := node.(type) {
	case *ast.Program:
		if slices.Contains(node.Stmts, nil) {
			return "empty statement"
		}
	case *ast.Block:
		if slices.Contains(node.Stmts, nil) {
			return "empty statement"
		}
	case *ast.ExprStmt:
		if node.X == nil {
			return "empty expression"
		}
	case *ast.Return:
		if node.Value == nil {
			return "empty expression"
		}
	case *ast.Prefix:
		if node.X == nil {
			return "empty expression"
		}
	case *ast.Infix:
		if node.X == nil || node.Y == nil {
			return "empty expression"
		}
	case *ast.If:
		if node.Cond == nil {
			return "empty expression"
		}
		if node.Consequence == nil {
			return "empty block"
		}
	}
	return ""
}

// supported reports whether the compiler lowers the node itself. Children
// are checked separately.
func supported(node ast.Node) bool {
	switch node := node.(type) {
	case *ast.Program, *ast.ExprStmt, *ast.Return, *ast.Block, *ast.If, *ast.Int, *ast.Bool:
		return true
	case *ast.Prefix:
		_, ok := prefixOps[node.Op]
		return ok
	case *ast.Infix:
		_, ok := infixOps[node.Op]
		return ok
	default:
		return false
	}
}

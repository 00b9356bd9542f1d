// Package compiler lowers a marmoset abstract syntax tree (AST) into a flat
// bytecode instruction stream and its constant pool.
//
// # Forward Jumps
//
// A conditional needs to jump past code that has not been emitted yet. The
// compiler emits the jump with a Placeholder operand, remembers the jump's
// offset and patches the operand in place once the target is known. Operands
// have a fixed width per opcode, so patching never moves other instructions.
//
// An if expression is lowered as:
//
//	<condition>
//	JUMP_IF_NOT_TRUTHY else
//	<consequence>          // trailing POP_TOP removed
//	JUMP end
//	else:
//	<alternative>          // trailing POP_TOP removed
//	end:
//
// The JUMP is emitted even when there is no alternative, in which case it
// targets the instruction right after itself. Without an alternative nothing
// is pushed on the false path, so the two paths leave the stack at different
// depths when the if is used as a value.
//
// # Failure
//
// Compilation stops at the first construct the compiler cannot lower and
// returns a *errors.CompileError. A Compiler undoes everything the failed
// call appended, so its buffers are exactly as they were before the call.
package compiler

import (
	"fmt"

	"github.com/cloudcmds/marmoset/ast"
	"github.com/cloudcmds/marmoset/bytecode"
	"github.com/cloudcmds/marmoset/errors"
	"github.com/cloudcmds/marmoset/object"
	"github.com/cloudcmds/marmoset/op"
	"github.com/rs/zerolog"
)

var infixOps = map[string]op.Code{
	"+":  op.Add,
	"-":  op.Subtract,
	"*":  op.Multiply,
	"/":  op.Divide,
	">":  op.GreaterThan,
	"<":  op.GreaterThan, // operands swapped
	"==": op.Equal,
	"!=": op.NotEqual,
}

var prefixOps = map[string]op.Code{
	"!": op.UnaryNot,
	"-": op.UnaryNegative,
}

// Compiler is used to compile marmoset AST into its corresponding bytecode.
// A Compiler may be used for several calls to Compile, each appending to the
// same instruction stream and constant pool.
type Compiler struct {
	code     *code
	filename string
	log      zerolog.Logger
}

// Config holds compiler configuration options.
type Config struct {
	// Filename is the source filename, used for error messages.
	Filename string

	// Logger receives debug events for every emitted, patched and removed
	// instruction. If nil, nothing is logged.
	Logger *zerolog.Logger
}

// Compile compiles the given AST node and returns immutable bytecode.
// The node may be a whole program, a single statement or a single
// expression. Pass nil for cfg to use default settings.
func Compile(node ast.Node, cfg *Config) (*bytecode.Code, error) {
	return New(cfg).Compile(node)
}

// New creates and returns a new Compiler. Pass nil for cfg to use defaults.
func New(cfg *Config) *Compiler {
	c := &Compiler{
		code: &code{},
		log:  zerolog.Nop(),
	}
	if cfg != nil {
		c.filename = cfg.Filename
		if cfg.Logger != nil {
			c.log = *cfg.Logger
		}
	}
	return c
}

// Compile appends the bytecode for node to the compiler's buffers and
// returns everything compiled so far. On failure the buffers are restored
// to their state before the call.
func (c *Compiler) Compile(node ast.Node) (*bytecode.Code, error) {
	saved := c.code.snapshot()
	if err := c.compile(node); err != nil {
		c.code.rollback(saved)
		c.log.Debug().Err(err).Int("length", saved.instructionCount).Msg("compile failed, rolled back")
		return nil, err
	}
	return c.code.bytecode(), nil
}

// Bytecode returns an immutable copy of everything compiled so far.
func (c *Compiler) Bytecode() *bytecode.Code {
	return c.code.bytecode()
}

func (c *Compiler) compile(node ast.Node) error {
	switch node := node.(type) {
	case nil:
		return errors.Unimplemented("empty node", "")
	case *ast.Program:
		for _, stmt := range node.Stmts {
			if err := c.compileStatement(stmt); err != nil {
				return err
			}
		}
		return nil
	case ast.Stmt:
		return c.compileStatement(node)
	case ast.Expr:
		return c.compileExpression(node)
	default:
		return c.unimplemented(node)
	}
}

func (c *Compiler) compileStatement(stmt ast.Stmt) error {
	switch stmt := stmt.(type) {
	case *ast.ExprStmt:
		if err := c.compileExpression(stmt.X); err != nil {
			return err
		}
		c.emit(op.PopTop)
		return nil
	case *ast.Return:
		return c.compileExpression(stmt.Value)
	case nil:
		return errors.Unimplemented("empty statement", "")
	default:
		return c.unimplemented(stmt)
	}
}

func (c *Compiler) compileExpression(expr ast.Expr) error {
	switch expr := expr.(type) {
	case *ast.Int:
		return c.compileInt(expr)
	case *ast.Bool:
		return c.compileBool(expr)
	case *ast.Prefix:
		return c.compilePrefix(expr)
	case *ast.Infix:
		return c.compileInfix(expr)
	case *ast.If:
		return c.compileIf(expr)
	case *ast.Block:
		return c.compileBlock(expr)
	case nil:
		return errors.Unimplemented("empty expression", "")
	default:
		return c.unimplemented(expr)
	}
}

func (c *Compiler) compileInt(node *ast.Int) error {
	index, err := c.code.addConstant(object.NewInt(node.Value))
	if err != nil {
		return c.locate(err, node)
	}
	c.emit(op.LoadConst, index)
	return nil
}

func (c *Compiler) compileBool(node *ast.Bool) error {
	if node.Value {
		c.emit(op.True)
	} else {
		c.emit(op.False)
	}
	return nil
}

// Operands are compiled before the operator is looked up, so a missing or
// unsupported operand is reported ahead of an unknown operator.
func (c *Compiler) compilePrefix(node *ast.Prefix) error {
	if err := c.compileExpression(node.X); err != nil {
		return err
	}
	opcode, ok := prefixOps[node.Op]
	if !ok {
		return c.unimplemented(node)
	}
	c.emit(opcode)
	return nil
}

func (c *Compiler) compileInfix(node *ast.Infix) error {
	// "a < b" is compiled as "b > a".
	left, right := node.X, node.Y
	if node.Op == "<" {
		left, right = right, left
	}
	if err := c.compileExpression(left); err != nil {
		return err
	}
	if err := c.compileExpression(right); err != nil {
		return err
	}
	opcode, ok := infixOps[node.Op]
	if !ok {
		return c.unimplemented(node)
	}
	c.emit(opcode)
	return nil
}

func (c *Compiler) compileIf(node *ast.If) error {
	if err := c.compileExpression(node.Cond); err != nil {
		return err
	}
	jumpIfNotTruthyPos := c.emit(op.JumpIfNotTruthy, Placeholder)
	if err := c.compileBranch(node.Consequence); err != nil {
		return err
	}
	jumpPos := c.emit(op.Jump, Placeholder)
	if err := c.patchJump(jumpIfNotTruthyPos, node); err != nil {
		return err
	}
	if node.Alternative == nil {
		if err := c.patchJump(jumpIfNotTruthyPos, node); err != nil {
			return err
		}
	} else if err := c.compileBranch(node.Alternative); err != nil {
		return err
	}
	return c.patchJump(jumpPos, node)
}

// compileBranch compiles one arm of an if expression. The arm's value must
// stay on the stack, so a trailing POP_TOP is removed.
func (c *Compiler) compileBranch(block *ast.Block) error {
	if err := c.compileBlock(block); err != nil {
		return err
	}
	if c.code.lastInstructionIs(op.PopTop) {
		c.log.Debug().Int("offset", c.code.last.position).Msg("remove POP_TOP")
		c.code.removeLast()
	}
	return nil
}

func (c *Compiler) compileBlock(block *ast.Block) error {
	if block == nil {
		return errors.Unimplemented("empty block", "")
	}
	for _, stmt := range block.Stmts {
		if err := c.compileStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compiler) emit(opcode op.Code, operands ...int) int {
	pos := c.code.emit(opcode, operands...)
	c.log.Debug().Int("offset", pos).Stringer("op", opcode).Ints("operands", operands).Msg("emit")
	return pos
}

// patchJump points the jump instruction at pos to the current end of the
// instruction stream.
func (c *Compiler) patchJump(pos int, node ast.Node) error {
	target := len(c.code.instructions)
	if target > MaxJumpTarget {
		err := &errors.CompileError{
			Code:    errors.E2012,
			Message: fmt.Sprintf("jump destination is too far away (offset %d, max %d)", target, MaxJumpTarget),
		}
		return c.locate(err, node)
	}
	c.code.changeOperand(pos, target)
	c.log.Debug().Int("offset", pos).Int("target", target).Msg("patch jump")
	return nil
}

func (c *Compiler) unimplemented(node ast.Node) error {
	return c.locate(errors.Unimplemented(describe(node), node.String()), node)
}

// locate attaches the filename and the position of node to a compile error
// that does not have a location yet.
func (c *Compiler) locate(err error, node ast.Node) error {
	compileErr, ok := err.(*errors.CompileError)
	if !ok || compileErr.Line > 0 {
		return err
	}
	pos := node.Pos()
	if compileErr.Construct == "" {
		compileErr.Construct = node.String()
	}
	compileErr.Filename = c.filename
	if compileErr.Filename == "" {
		compileErr.Filename = pos.File
	}
	if pos.IsValid() {
		compileErr.Line = pos.LineNumber()
		compileErr.Column = pos.ColumnNumber()
	}
	return compileErr
}

// describe names the kind of syntax a node represents, for error messages.
func describe(node ast.Node) string {
	switch node := node.(type) {
	case *ast.Assign:
		return "assignment statement"
	case *ast.Float:
		return "float literal"
	case *ast.String:
		return "string literal"
	case *ast.List:
		return "array literal"
	case *ast.Ident:
		return "identifier"
	case *ast.Func:
		return "function literal"
	case *ast.Call:
		return "call expression"
	case *ast.Index:
		return "index expression"
	case *ast.Prefix:
		return fmt.Sprintf("prefix operator %q", node.Op)
	case *ast.Infix:
		return fmt.Sprintf("infix operator %q", node.Op)
	default:
		return fmt.Sprintf("%T", node)
	}
}

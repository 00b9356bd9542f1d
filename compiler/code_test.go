package compiler

import (
	"testing"

	"github.com/cloudcmds/marmoset/errors"
	"github.com/cloudcmds/marmoset/object"
	"github.com/cloudcmds/marmoset/op"
	"github.com/stretchr/testify/require"
)

func TestEmitReturnsOffset(t *testing.T) {
	c := &code{}
	require.Equal(t, 0, c.emit(op.LoadConst, 0))
	require.Equal(t, 3, c.emit(op.True))
	require.Equal(t, 4, c.emit(op.PopTop))
	require.Equal(t, concat(op.Make(op.LoadConst, 0), op.Make(op.True), op.Make(op.PopTop)), c.instructions)
	require.Equal(t, &emittedInstruction{opcode: op.PopTop, position: 4}, c.last)
	require.Equal(t, &emittedInstruction{opcode: op.True, position: 3}, c.previous)
}

func TestAddConstantDoesNotDeduplicate(t *testing.T) {
	c := &code{}
	first, err := c.addConstant(object.NewInt(7))
	require.NoError(t, err)
	second, err := c.addConstant(object.NewInt(7))
	require.NoError(t, err)
	require.Equal(t, 0, first)
	require.Equal(t, 1, second)
	require.Len(t, c.constants, 2)
}

func TestAddConstantLimit(t *testing.T) {
	c := &code{constants: make([]object.Object, MaxConstants-1)}
	index, err := c.addConstant(object.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, MaxConstants-1, index)

	_, err = c.addConstant(object.NewInt(2))
	require.True(t, errors.Is(err, errors.ErrTooManyConstants))
	require.Len(t, c.constants, MaxConstants)
}

func TestChangeOperand(t *testing.T) {
	c := &code{}
	c.emit(op.True)
	pos := c.emit(op.JumpIfNotTruthy, Placeholder)
	c.emit(op.False)
	before := len(c.instructions)

	c.changeOperand(pos, 0x0102)
	require.Len(t, c.instructions, before)
	require.Equal(t, concat(op.Make(op.True), []byte{byte(op.JumpIfNotTruthy), 0x01, 0x02}, op.Make(op.False)), c.instructions)
}

func TestChangeOperandPanics(t *testing.T) {
	c := &code{}
	pos := c.emit(op.Jump, Placeholder)
	c.removeLast()
	require.Panics(t, func() { c.changeOperand(pos, 0) })

	c = &code{instructions: []byte{byte(op.Jump), 0}}
	require.Panics(t, func() { c.changeOperand(0, 1) })

	c = &code{}
	c.emit(op.True)
	require.Panics(t, func() { c.changeOperand(0, 1) })
}

func TestLastInstructionIs(t *testing.T) {
	c := &code{}
	require.False(t, c.lastInstructionIs(op.PopTop))
	c.emit(op.True)
	require.True(t, c.lastInstructionIs(op.True))
	c.emit(op.PopTop)
	require.True(t, c.lastInstructionIs(op.PopTop))
	require.False(t, c.lastInstructionIs(op.True))
}

func TestRemoveLast(t *testing.T) {
	c := &code{}
	c.emit(op.LoadConst, 0)
	c.emit(op.PopTop)

	c.removeLast()
	require.Equal(t, op.Make(op.LoadConst, 0), c.instructions)
	require.True(t, c.lastInstructionIs(op.LoadConst))
	require.Nil(t, c.previous)

	c.emit(op.PopTop)
	require.True(t, c.lastInstructionIs(op.PopTop))
	require.Equal(t, &emittedInstruction{opcode: op.LoadConst, position: 0}, c.previous)
}

func TestRemoveLastPanicsWhenEmpty(t *testing.T) {
	require.Panics(t, func() { (&code{}).removeLast() })
}

func TestRollback(t *testing.T) {
	c := &code{}
	c.emit(op.True)
	_, err := c.addConstant(object.NewInt(1))
	require.NoError(t, err)
	saved := c.snapshot()

	c.emit(op.LoadConst, 1)
	c.emit(op.PopTop)
	_, err = c.addConstant(object.NewInt(2))
	require.NoError(t, err)

	c.rollback(saved)
	require.Equal(t, op.Make(op.True), c.instructions)
	require.Equal(t, []object.Object{object.NewInt(1)}, c.constants)
	require.True(t, c.lastInstructionIs(op.True))
	require.Nil(t, c.previous)
}

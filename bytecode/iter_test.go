package bytecode

import (
	"testing"

	"github.com/cloudcmds/marmoset/op"
	"github.com/stretchr/testify/require"
)

func TestInstructionIter(t *testing.T) {
	instructions, err := NewInstructionIter(addProgram()).All()
	require.NoError(t, err)
	require.Equal(t, []Instruction{
		{Offset: 0, Op: op.LoadConst, Operands: []int{0}},
		{Offset: 3, Op: op.LoadConst, Operands: []int{1}},
		{Offset: 6, Op: op.Add, Operands: []int{}},
		{Offset: 7, Op: op.PopTop, Operands: []int{}},
	}, instructions)
	require.Equal(t, 3, instructions[0].Width())
	require.Equal(t, 1, instructions[2].Width())
}

func TestInstructionIterEmpty(t *testing.T) {
	iter := NewInstructionIter(NewCode(CodeParams{}))
	_, ok := iter.Next()
	require.False(t, ok)
	require.NoError(t, iter.Err())
}

func TestInstructionIterTruncated(t *testing.T) {
	iter := NewInstructionIter(NewCode(CodeParams{Instructions: []byte{byte(op.Jump), 0}}))
	instructions, err := iter.All()
	require.Empty(t, instructions)
	require.EqualError(t, err, "offset 0: JUMP truncated")
}

func TestInstructionString(t *testing.T) {
	instr := Instruction{Offset: 12, Op: op.JumpIfNotTruthy, Operands: []int{300}}
	require.Equal(t, "0012 JUMP_IF_NOT_TRUTHY 300", instr.String())
}

package bytecode

import (
	"testing"

	"github.com/cloudcmds/marmoset/object"
	"github.com/cloudcmds/marmoset/op"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		instructions []byte
		constants    []object.Object
		err          string
	}{
		{
			name:         "valid",
			instructions: concat(op.Make(op.True), op.Make(op.JumpIfNotTruthy, 7), op.Make(op.Jump, 8), op.Make(op.False)),
		},
		{
			name:         "jump to end",
			instructions: op.Make(op.Jump, 3),
		},
		{
			name:         "undefined opcode",
			instructions: []byte{99},
			err:          "bytecode: offset 0: opcode 99 undefined",
		},
		{
			name:         "constant out of range",
			instructions: op.Make(op.LoadConst, 1),
			constants:    []object.Object{object.NewInt(1)},
			err:          "bytecode: offset 0: constant index 1 out of range (pool size 1)",
		},
		{
			name:         "jump into operand",
			instructions: concat(op.Make(op.Jump, 1)),
			err:          "bytecode: offset 0: invalid jump target 1",
		},
		{
			name:         "jump past end",
			instructions: concat(op.Make(op.True), op.Make(op.JumpIfNotTruthy, 10)),
			err:          "bytecode: offset 1: invalid jump target 10",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(NewCode(CodeParams{Instructions: tt.instructions, Constants: tt.constants}))
			if tt.err == "" {
				require.NoError(t, err)
			} else {
				require.EqualError(t, err, tt.err)
			}
		})
	}
}

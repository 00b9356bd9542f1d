package bytecode

import (
	"fmt"

	"github.com/cloudcmds/marmoset/op"
)

// Validate checks that the instruction stream is well formed: every opcode
// is defined and complete, every LOAD_CONST operand indexes the constant
// pool and every jump lands on an instruction boundary or at the end of the
// stream.
func Validate(code *Code) error {
	instructions, err := NewInstructionIter(code).All()
	if err != nil {
		return fmt.Errorf("bytecode: %w", err)
	}
	boundaries := make(map[int]bool, len(instructions)+1)
	for _, instr := range instructions {
		boundaries[instr.Offset] = true
	}
	boundaries[code.InstructionCount()] = true

	for _, instr := range instructions {
		switch instr.Op {
		case op.LoadConst:
			if idx := instr.Operands[0]; idx >= code.ConstantCount() {
				return fmt.Errorf("bytecode: offset %d: constant index %d out of range (pool size %d)",
					instr.Offset, idx, code.ConstantCount())
			}
		case op.Jump, op.JumpIfNotTruthy:
			if target := instr.Operands[0]; !boundaries[target] {
				return fmt.Errorf("bytecode: offset %d: invalid jump target %d", instr.Offset, target)
			}
		}
	}
	return nil
}

package bytecode

import "github.com/cloudcmds/marmoset/op"

// Stats contains statistics about compiled bytecode.
type Stats struct {
	// InstructionCount is the number of decoded instructions.
	InstructionCount int

	// ByteCount is the length of the instruction stream in bytes.
	ByteCount int

	// ConstantCount is the number of constants in the constant pool.
	ConstantCount int

	// JumpCount is the number of JUMP and JUMP_IF_NOT_TRUTHY instructions.
	JumpCount int
}

// Stats decodes the instruction stream and summarizes it. A malformed
// stream is summarized up to the first undecodable instruction.
func (c *Code) Stats() Stats {
	stats := Stats{
		ByteCount:     len(c.instructions),
		ConstantCount: len(c.constants),
	}
	iter := NewInstructionIter(c)
	for {
		instr, ok := iter.Next()
		if !ok {
			break
		}
		stats.InstructionCount++
		if instr.Op == op.Jump || instr.Op == op.JumpIfNotTruthy {
			stats.JumpCount++
		}
	}
	return stats
}

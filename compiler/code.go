package compiler

import (
	"fmt"
	"math"

	"github.com/cloudcmds/marmoset/bytecode"
	"github.com/cloudcmds/marmoset/errors"
	"github.com/cloudcmds/marmoset/object"
	"github.com/cloudcmds/marmoset/op"
)

const (
	// Placeholder is a temporary operand written for a forward jump, which is
	// always replaced before compilation is complete.
	Placeholder = math.MaxUint16

	// MaxConstants is the number of constants addressable by the 16-bit
	// LOAD_CONST operand.
	MaxConstants = math.MaxUint16 + 1

	// MaxJumpTarget is the largest byte offset a jump operand can hold.
	MaxJumpTarget = math.MaxUint16
)

// emittedInstruction records the opcode and starting offset of an
// instruction that was appended to the stream.
type emittedInstruction struct {
	opcode   op.Code
	position int
}

// code is the mutable buffer a compilation writes into. Only the two most
// recent emissions are remembered, which is enough to retract a single
// trailing POP_TOP.
type code struct {
	instructions []byte
	constants    []object.Object
	last         *emittedInstruction
	previous     *emittedInstruction
}

// snapshot captures the extent of a code buffer so that a failed
// compilation can be undone.
type snapshot struct {
	instructionCount int
	constantCount    int
	last             *emittedInstruction
	previous         *emittedInstruction
}

func (c *code) snapshot() snapshot {
	return snapshot{
		instructionCount: len(c.instructions),
		constantCount:    len(c.constants),
		last:             c.last,
		previous:         c.previous,
	}
}

// rollback discards everything appended since s was taken. Instructions
// before the snapshot are never patched or retracted by a later
// compilation, so truncating is sufficient.
func (c *code) rollback(s snapshot) {
	c.instructions = c.instructions[:s.instructionCount]
	clear(c.constants[s.constantCount:])
	c.constants = c.constants[:s.constantCount]
	c.last = s.last
	c.previous = s.previous
}

// emit encodes an instruction, appends it and returns its starting offset.
func (c *code) emit(opcode op.Code, operands ...int) int {
	ins := op.Make(opcode, operands...)
	pos := len(c.instructions)
	c.instructions = append(c.instructions, ins...)
	c.previous = c.last
	c.last = &emittedInstruction{opcode: opcode, position: pos}
	return pos
}

// addConstant appends obj to the constant pool and returns its index. Equal
// values added twice occupy two slots.
func (c *code) addConstant(obj object.Object) (int, error) {
	if len(c.constants) >= MaxConstants {
		return 0, &errors.CompileError{
			Code:    errors.E2008,
			Message: fmt.Sprintf("number of constants exceeded limits (max %d)", MaxConstants),
		}
	}
	c.constants = append(c.constants, obj)
	return len(c.constants) - 1, nil
}

// changeOperand re-encodes the operand of the instruction at pos in place.
// The opcode is kept, so the encoded width does not change.
func (c *code) changeOperand(pos, operand int) {
	if pos < 0 || pos >= len(c.instructions) {
		panic(fmt.Sprintf("change operand: offset %d outside instruction stream of length %d",
			pos, len(c.instructions)))
	}
	ins := op.Make(op.Code(c.instructions[pos]), operand)
	if pos+len(ins) > len(c.instructions) {
		panic(fmt.Sprintf("change operand: instruction at offset %d is incomplete", pos))
	}
	copy(c.instructions[pos:], ins)
}

// lastInstructionIs reports whether the most recently emitted instruction
// has the given opcode.
func (c *code) lastInstructionIs(opcode op.Code) bool {
	return c.last != nil && c.last.opcode == opcode
}

// removeLast truncates the most recently emitted instruction and restores
// the one before it as the last. Only one instruction can be removed between
// emissions.
func (c *code) removeLast() {
	if c.last == nil {
		panic("remove last: no instruction to remove")
	}
	c.instructions = c.instructions[:c.last.position]
	c.last = c.previous
	c.previous = nil
}

// bytecode returns an immutable copy of the buffer.
func (c *code) bytecode() *bytecode.Code {
	return bytecode.NewCode(bytecode.CodeParams{
		Instructions: c.instructions,
		Constants:    c.constants,
	})
}

package bytecode

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cloudcmds/marmoset/object"
)

// Code is an immutable compiled instruction stream and its constant pool.
type Code struct {
	instructions []byte
	constants    []object.Object
}

// CodeParams contains the parameters for creating a new Code.
type CodeParams struct {
	Instructions []byte
	Constants    []object.Object
}

// NewCode creates a Code from the given parameters. The slices are copied,
// so the caller may keep using its own buffers.
func NewCode(params CodeParams) *Code {
	return &Code{
		instructions: copyBytes(params.Instructions),
		constants:    copyObjects(params.Constants),
	}
}

// InstructionCount returns the length of the instruction stream in bytes.
func (c *Code) InstructionCount() int {
	return len(c.instructions)
}

// InstructionAt returns the byte at the given offset of the stream.
func (c *Code) InstructionAt(offset int) byte {
	return c.instructions[offset]
}

// Instructions returns a copy of the instruction stream.
func (c *Code) Instructions() []byte {
	return copyBytes(c.instructions)
}

// ConstantCount returns the number of entries in the constant pool.
func (c *Code) ConstantCount() int {
	return len(c.constants)
}

// ConstantAt returns the constant at the given pool index.
func (c *Code) ConstantAt(index int) object.Object {
	return c.constants[index]
}

// Constants returns a copy of the constant pool. The objects themselves are
// shared.
func (c *Code) Constants() []object.Object {
	return copyObjects(c.constants)
}

// Equals reports whether two Code values hold the same bytes and equal
// constants in the same order.
func (c *Code) Equals(other *Code) bool {
	if other == nil {
		return false
	}
	if !bytes.Equal(c.instructions, other.instructions) {
		return false
	}
	if len(c.constants) != len(other.constants) {
		return false
	}
	for i, constant := range c.constants {
		if !constant.Equals(other.constants[i]) {
			return false
		}
	}
	return true
}

// String renders the instruction stream one instruction per line: the
// zero-padded byte offset, the mnemonic and any operands.
//
//	0000 LOAD_CONST 0
//	0003 LOAD_CONST 1
//	0006 BINARY_ADD
//	0007 POP_TOP
func (c *Code) String() string {
	var out strings.Builder
	iter := NewInstructionIter(c)
	for {
		instr, ok := iter.Next()
		if !ok {
			break
		}
		out.WriteString(instr.String())
		out.WriteString("\n")
	}
	if err := iter.Err(); err != nil {
		fmt.Fprintf(&out, "ERROR: %s\n", err)
	}
	return out.String()
}

func copyBytes(src []byte) []byte {
	if src == nil {
		return nil
	}
	dst := make([]byte, len(src))
	copy(dst, src)
	return dst
}

func copyObjects(src []object.Object) []object.Object {
	if src == nil {
		return nil
	}
	dst := make([]object.Object, len(src))
	copy(dst, src)
	return dst
}

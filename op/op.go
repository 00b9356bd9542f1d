// Package op defines opcodes used by the marmoset compiler and virtual machine.
package op

import (
	"encoding/binary"
	"fmt"
)

// Code is a one byte opcode that indicates an operation to execute.
type Code byte

const (
	Invalid Code = 0

	// Load
	LoadConst Code = 1

	// Stack
	PopTop Code = 2

	// Arithmetic
	Add      Code = 3
	Subtract Code = 4
	Multiply Code = 5
	Divide   Code = 6

	// Comparison
	GreaterThan Code = 7
	Equal       Code = 8
	NotEqual    Code = 9

	// Push constants
	True  Code = 10
	False Code = 11

	// Unary
	UnaryNegative Code = 12
	UnaryNot      Code = 13

	// Jump
	Jump            Code = 14
	JumpIfNotTruthy Code = 15
)

// String returns the mnemonic for the opcode, for example "LOAD_CONST".
func (c Code) String() string {
	if info := infos[c]; info.Name != "" {
		return info.Name
	}
	return fmt.Sprintf("OP(%d)", byte(c))
}

// Info contains information about an opcode. The operand widths are fixed
// per opcode, which is what allows an operand to be rewritten in place.
type Info struct {
	Code          Code
	Name          string
	OperandWidths []int
}

// OperandCount returns the number of operands the opcode takes.
func (i Info) OperandCount() int {
	return len(i.OperandWidths)
}

// Width returns the encoded size of the instruction in bytes, including the
// opcode byte itself.
func (i Info) Width() int {
	width := 1
	for _, w := range i.OperandWidths {
		width += w
	}
	return width
}

var infos = make([]Info, 256)

func init() {
	type opInfo struct {
		op     Code
		name   string
		widths []int
	}
	ops := []opInfo{
		{Add, "BINARY_ADD", nil},
		{Divide, "BINARY_DIVIDE", nil},
		{Equal, "COMPARE_EQUAL", nil},
		{False, "FALSE", nil},
		{GreaterThan, "COMPARE_GREATER_THAN", nil},
		{Jump, "JUMP", []int{2}},
		{JumpIfNotTruthy, "JUMP_IF_NOT_TRUTHY", []int{2}},
		{LoadConst, "LOAD_CONST", []int{2}},
		{Multiply, "BINARY_MULTIPLY", nil},
		{NotEqual, "COMPARE_NOT_EQUAL", nil},
		{PopTop, "POP_TOP", nil},
		{Subtract, "BINARY_SUBTRACT", nil},
		{True, "TRUE", nil},
		{UnaryNegative, "UNARY_NEGATIVE", nil},
		{UnaryNot, "UNARY_NOT", nil},
	}
	for _, o := range ops {
		infos[o.op] = Info{
			Name:          o.name,
			Code:          o.op,
			OperandWidths: o.widths,
		}
	}
}

// GetInfo returns information about the given opcode.
func GetInfo(op Code) Info {
	return infos[op]
}

// Lookup maps the leading byte of an instruction back to its opcode.
func Lookup(b byte) (Code, error) {
	code := Code(b)
	if infos[code].Name == "" {
		return Invalid, fmt.Errorf("opcode %d undefined", b)
	}
	return code, nil
}

// Make encodes an instruction. Operands are written big-endian using the
// widths declared for the opcode. Passing the wrong number of operands is a
// bug in the caller and panics.
func Make(code Code, operands ...int) []byte {
	info := infos[code]
	if info.Name == "" {
		panic(fmt.Sprintf("make instruction: undefined opcode %d", byte(code)))
	}
	if len(operands) != info.OperandCount() {
		panic(fmt.Sprintf("make instruction: %s takes %d operands (got %d)",
			info.Name, info.OperandCount(), len(operands)))
	}
	instruction := make([]byte, info.Width())
	instruction[0] = byte(code)
	offset := 1
	for i, o := range operands {
		width := info.OperandWidths[i]
		switch width {
		case 1:
			instruction[offset] = byte(o)
		case 2:
			binary.BigEndian.PutUint16(instruction[offset:], uint16(o))
		}
		offset += width
	}
	return instruction
}

// ReadOperands decodes the operands of an instruction described by info from
// ins, which starts immediately after the opcode byte. It returns the operands
// and the number of bytes read.
func ReadOperands(info Info, ins []byte) ([]int, int) {
	operands := make([]int, info.OperandCount())
	offset := 0
	for i, width := range info.OperandWidths {
		switch width {
		case 1:
			operands[i] = int(ins[offset])
		case 2:
			operands[i] = int(ReadUint16(ins[offset:]))
		}
		offset += width
	}
	return operands, offset
}

// ReadUint16 reads a big-endian two byte operand.
func ReadUint16(ins []byte) uint16 {
	return binary.BigEndian.Uint16(ins)
}

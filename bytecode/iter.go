package bytecode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cloudcmds/marmoset/op"
)

// Instruction is a single decoded instruction.
type Instruction struct {
	Offset   int
	Op       op.Code
	Operands []int
}

// Width returns the encoded size of the instruction in bytes.
func (i Instruction) Width() int {
	return op.GetInfo(i.Op).Width()
}

func (i Instruction) String() string {
	var out strings.Builder
	fmt.Fprintf(&out, "%04d %s", i.Offset, i.Op)
	for _, operand := range i.Operands {
		out.WriteString(" ")
		out.WriteString(strconv.Itoa(operand))
	}
	return out.String()
}

// InstructionIter iterates over the instructions in a Code object.
type InstructionIter struct {
	code *Code
	pos  int
	err  error
}

// NewInstructionIter creates a new instruction iterator for the given code.
func NewInstructionIter(code *Code) *InstructionIter {
	return &InstructionIter{code: code}
}

// Next decodes the next instruction. It returns false at the end of the
// stream or when the stream is malformed; Err distinguishes the two.
func (i *InstructionIter) Next() (Instruction, bool) {
	if i.err != nil || i.pos >= len(i.code.instructions) {
		return Instruction{}, false
	}
	offset := i.pos
	code, err := op.Lookup(i.code.instructions[offset])
	if err != nil {
		i.err = fmt.Errorf("offset %d: %w", offset, err)
		return Instruction{}, false
	}
	info := op.GetInfo(code)
	if offset+info.Width() > len(i.code.instructions) {
		i.err = fmt.Errorf("offset %d: %s truncated", offset, code)
		return Instruction{}, false
	}
	operands, read := op.ReadOperands(info, i.code.instructions[offset+1:])
	i.pos = offset + 1 + read
	return Instruction{Offset: offset, Op: code, Operands: operands}, true
}

// Err returns the decoding error that stopped iteration, if any.
func (i *InstructionIter) Err() error {
	return i.err
}

// All returns all remaining instructions as a newly allocated slice.
func (i *InstructionIter) All() ([]Instruction, error) {
	var results []Instruction
	for {
		instr, ok := i.Next()
		if !ok {
			break
		}
		results = append(results, instr)
	}
	return results, i.err
}

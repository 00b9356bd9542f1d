// Package dis supports analysis of marmoset bytecode by disassembling it.
// This works with the opcodes defined in the `op` package and uses the
// InstructionIter type from the `bytecode` package.
package dis

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cloudcmds/marmoset/bytecode"
	"github.com/cloudcmds/marmoset/internal/table"
	"github.com/cloudcmds/marmoset/object"
	"github.com/cloudcmds/marmoset/op"
	"github.com/fatih/color"
)

// Instruction represents a single bytecode instruction and its operands.
type Instruction struct {
	Offset     int
	Name       string
	Opcode     op.Code
	Operands   []int
	Annotation string
	Constant   object.Object
}

// Disassemble returns a parsed representation of the given bytecode.
func Disassemble(code *bytecode.Code) ([]Instruction, error) {
	var instructions []Instruction
	iter := bytecode.NewInstructionIter(code)
	for {
		instr, ok := iter.Next()
		if !ok {
			break
		}
		var constant object.Object
		var annotation string
		switch instr.Op {
		case op.LoadConst:
			var err error
			constant, err = getConstantValue(code, instr.Operands[0])
			if err != nil {
				return nil, err
			}
			annotation = constant.Inspect()
		case op.Jump, op.JumpIfNotTruthy:
			annotation = fmt.Sprintf("to %04d", instr.Operands[0])
		}
		instructions = append(instructions, Instruction{
			Offset:     instr.Offset,
			Name:       instr.Op.String(),
			Opcode:     instr.Op,
			Operands:   instr.Operands,
			Annotation: annotation,
			Constant:   constant,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return instructions, nil
}

var (
	intColor      = color.New(color.FgYellow)
	stringColor   = color.New(color.FgGreen)
	functionColor = color.New(color.FgMagenta)
	boolColor     = color.New(color.FgBlue)
	jumpColor     = color.New(color.FgHiCyan)
	plainColor    = color.New(color.Bold)
)

// Print a string representation of the given instructions to the given
// writer. Colors follow the fatih/color global settings.
func Print(instructions []Instruction, writer io.Writer) {
	var lines [][]string
	for _, instr := range instructions {
		values := []string{
			strconv.Itoa(instr.Offset),
			instr.Name,
			formatOperands(instr.Operands),
		}
		switch {
		case instr.Constant != nil:
			values = append(values, formatConstant(instr.Constant))
		case instr.Annotation != "":
			values = append(values, jumpColor.Sprint(instr.Annotation))
		default:
			values = append(values, "")
		}
		lines = append(lines, values)
	}

	table.NewTable(writer).
		WithHeader([]string{"OFFSET", "OPCODE", "OPERANDS", "INFO"}).
		WithColumnAlignment([]table.Alignment{
			table.AlignRight,
			table.AlignLeft,
			table.AlignRight,
			table.AlignLeft,
		}).
		WithHeaderAlignment([]table.Alignment{
			table.AlignCenter,
			table.AlignCenter,
			table.AlignCenter,
			table.AlignCenter,
		}).
		WithRows(lines).
		Render()
}

// PrintConstants writes the constant pool of code as a table of index,
// type and value.
func PrintConstants(code *bytecode.Code, writer io.Writer) {
	var lines [][]string
	for i, constant := range code.Constants() {
		lines = append(lines, []string{
			strconv.Itoa(i),
			string(constant.Type()),
			formatConstant(constant),
		})
	}
	table.NewTable(writer).
		WithHeader([]string{"INDEX", "TYPE", "VALUE"}).
		WithColumnAlignment([]table.Alignment{table.AlignRight, table.AlignLeft, table.AlignLeft}).
		WithHeaderAlignment([]table.Alignment{table.AlignCenter, table.AlignCenter, table.AlignCenter}).
		WithRows(lines).
		Render()
}

func formatConstant(constant object.Object) string {
	switch c := constant.(type) {
	case *object.Int:
		return intColor.Sprint(c.Inspect())
	case *object.Bool:
		return boolColor.Sprint(c.Inspect())
	case *object.String:
		s := c.Value()
		if len(s) > 80 {
			s = s[:77] + "..."
		}
		return stringColor.Sprintf("%q", s)
	case *object.Function:
		name := c.Name()
		if name == "" {
			name = "<anonymous>"
		}
		return functionColor.Sprintf("fn:%s", name)
	default:
		return plainColor.Sprint(c.Inspect())
	}
}

func formatOperands(operands []int) string {
	parts := make([]string, len(operands))
	for i, operand := range operands {
		parts[i] = strconv.Itoa(operand)
	}
	return strings.Join(parts, ", ")
}

func getConstantValue(code *bytecode.Code, index int) (object.Object, error) {
	if code.ConstantCount() <= index {
		return nil, fmt.Errorf("constant index out of range: %d", index)
	}
	return code.ConstantAt(index), nil
}

// Package bytecode provides the immutable output of compilation.
//
// A [Code] pairs a flat instruction stream with the constant pool that its
// LOAD_CONST operands index into. Instructions are one opcode byte followed
// by fixed-width big-endian operands, as described by the op package. Jump
// operands are absolute byte offsets into the same stream.
//
// # Immutability
//
// A Code is built once by the compiler and never changes afterwards:
//
//   - All fields are unexported
//   - [NewCode] copies the slices it is given
//   - Accessors return single elements or copies
//
// Constants are shared rather than copied. Objects are immutable, so a
// constant held by a Code and the same value held elsewhere at run time are
// one instance.
//
// # Usage
//
//	code, err := compiler.Compile(node, nil)
//	if err != nil {
//	    return err
//	}
//	fmt.Print(code)
//
//	data, err := bytecode.Marshal(code)
package bytecode

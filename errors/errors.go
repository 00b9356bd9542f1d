// Package errors defines the errors reported by the marmoset compiler.
package errors

import stderrors "errors"

var (
	// ErrUnimplemented is matched by compile errors for syntax the compiler
	// does not lower yet.
	ErrUnimplemented = stderrors.New("unimplemented")

	// ErrTooManyConstants is matched when the constant pool outgrows the
	// 16-bit operand of LOAD_CONST.
	ErrTooManyConstants = stderrors.New("too many constants")

	// ErrJumpTooFar is matched when a jump target does not fit in a 16-bit
	// operand.
	ErrJumpTooFar = stderrors.New("jump destination too far")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

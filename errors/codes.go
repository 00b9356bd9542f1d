package errors

// ErrorCode represents a unique identifier for error types.
// Compile errors use the E2xxx range.
type ErrorCode string

const (
	E2008 ErrorCode = "E2008" // Too many constants
	E2011 ErrorCode = "E2011" // Unimplemented construct
	E2012 ErrorCode = "E2012" // Jump destination too far
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E2008: "too many constants",
	E2011: "unimplemented construct",
	E2012: "jump destination too far",
}

// Description returns a short description of the error code.
func (c ErrorCode) Description() string {
	return codeDescriptions[c]
}

// sentinel returns the sentinel error matched by errors.Is for the code.
func (c ErrorCode) sentinel() error {
	switch c {
	case E2008:
		return ErrTooManyConstants
	case E2011:
		return ErrUnimplemented
	case E2012:
		return ErrJumpTooFar
	}
	return nil
}

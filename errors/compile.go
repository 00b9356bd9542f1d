package errors

import (
	"fmt"
	"strings"
)

// CompileError represents a compilation error with its source location.
type CompileError struct {
	Code      ErrorCode
	Message   string
	Construct string // the offending syntax, rendered as source
	Filename  string
	Line      int
	Column    int
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	var b strings.Builder
	b.WriteString("compile error: ")
	b.WriteString(e.Message)
	if e.Filename != "" || e.Line > 0 {
		b.WriteString("\n\nlocation: ")
		b.WriteString(e.Filename)
		if e.Line > 0 {
			if e.Filename != "" {
				b.WriteString(":")
			}
			fmt.Fprintf(&b, "%d:%d", e.Line, e.Column)
			fmt.Fprintf(&b, " (line %d, column %d)", e.Line, e.Column)
		}
	}
	return b.String()
}

// Unwrap returns the sentinel error for the error code, so that callers may
// use errors.Is(err, ErrUnimplemented).
func (e *CompileError) Unwrap() error {
	return e.Code.sentinel()
}

// FriendlyErrorMessage returns a human-friendly error message.
func (e *CompileError) FriendlyErrorMessage() string {
	return NewFormatter(false).Format(e.ToFormatted())
}

// ToFormatted converts to the FormattedError type for display.
func (e *CompileError) ToFormatted() *FormattedError {
	fe := &FormattedError{
		Code:     e.Code,
		Kind:     "compile error",
		Message:  e.Message,
		Filename: e.Filename,
		Line:     e.Line,
		Column:   e.Column,
	}
	if e.Construct != "" {
		fe.Note = "in: " + e.Construct
	}
	return fe
}

// Unimplemented returns an E2011 error for a construct the compiler does not
// lower. What names the kind of construct, for example "string literal".
func Unimplemented(what, construct string) *CompileError {
	return &CompileError{
		Code:      E2011,
		Message:   fmt.Sprintf("unimplemented: %s", what),
		Construct: construct,
	}
}

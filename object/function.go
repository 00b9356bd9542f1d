package object

import (
	"fmt"
	"strings"
)

// Function is a function value in source form: its parameter names and the
// text of its body.
type Function struct {
	name       string
	parameters []string
	body       string
}

// FunctionOpts contains options for creating a new Function.
type FunctionOpts struct {
	Name       string
	Parameters []string
	Body       string
}

func NewFunction(opts FunctionOpts) *Function {
	params := make([]string, len(opts.Parameters))
	copy(params, opts.Parameters)
	return &Function{
		name:       opts.Name,
		parameters: params,
		body:       opts.Body,
	}
}

func (f *Function) Type() Type {
	return FUNCTION
}

func (f *Function) Name() string {
	return f.name
}

func (f *Function) Parameters() []string {
	params := make([]string, len(f.parameters))
	copy(params, f.parameters)
	return params
}

func (f *Function) Body() string {
	return f.body
}

func (f *Function) Inspect() string {
	return fmt.Sprintf("fn(%s) %s", strings.Join(f.parameters, ", "), f.body)
}

func (f *Function) String() string {
	if f.name != "" {
		return fmt.Sprintf("function(%s)", f.name)
	}
	return "function(<anonymous>)"
}

func (f *Function) Interface() interface{} {
	return nil
}

// Equals reports identity: two function values are equal only if they are
// the same instance.
func (f *Function) Equals(other Object) bool {
	return f == other
}

func (f *Function) IsTruthy() bool {
	return true
}

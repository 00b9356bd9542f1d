// Package object provides the runtime values that a compiled program may
// embed in its constant pool.
//
// Objects are immutable and referenced through pointers, so a constant pool
// entry and any runtime structure that holds the same value share a single
// instance. The garbage collector keeps a value alive for as long as its
// longest holder.
//
// For example:
//
//	switch obj := obj.(type) {
//	case *object.Int:
//		// do something with obj.Value()
//	case *object.String:
//		// do something with obj.Value()
//	}
package object

// Type of an object as a string.
type Type string

// Type constants
const (
	BOOL     Type = "bool"
	FUNCTION Type = "function"
	INT      Type = "int"
	LIST     Type = "list"
	NIL      Type = "nil"
	STRING   Type = "string"
)

var (
	Nil   = &NilType{}
	True  = &Bool{value: true}
	False = &Bool{value: false}
)

// Object is the interface that all marmoset values implement.
type Object interface {
	// Type of the object.
	Type() Type

	// Inspect returns a string representation of the given object.
	Inspect() string

	// Interface converts the given object to a native Go value.
	Interface() interface{}

	// Returns true if the given object is equal to this object.
	Equals(other Object) bool

	// IsTruthy returns true if the object is considered "truthy".
	IsTruthy() bool
}

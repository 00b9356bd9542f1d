package object

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt(t *testing.T) {
	i := NewInt(42)
	require.Equal(t, INT, i.Type())
	require.Equal(t, int64(42), i.Value())
	require.Equal(t, "42", i.Inspect())
	require.Equal(t, int64(42), i.Interface())
	require.True(t, i.Equals(NewInt(42)))
	require.False(t, i.Equals(NewInt(41)))
	require.False(t, i.Equals(NewString("42")))
	require.True(t, i.IsTruthy())
	require.False(t, NewInt(0).IsTruthy())
}

func TestBool(t *testing.T) {
	require.Same(t, True, NewBool(true))
	require.Same(t, False, NewBool(false))
	require.Equal(t, "true", True.Inspect())
	require.True(t, True.Equals(NewBool(true)))
	require.False(t, True.Equals(False))
	require.False(t, False.IsTruthy())
}

func TestNil(t *testing.T) {
	require.Equal(t, NIL, Nil.Type())
	require.Equal(t, "nil", Nil.Inspect())
	require.Nil(t, Nil.Interface())
	require.True(t, Nil.Equals(&NilType{}))
	require.False(t, Nil.IsTruthy())
}

func TestString(t *testing.T) {
	s := NewString("hello")
	require.Equal(t, `"hello"`, s.Inspect())
	require.Equal(t, "hello", s.String())
	require.True(t, s.Equals(NewString("hello")))
	require.False(t, NewString("").IsTruthy())
}

func TestList(t *testing.T) {
	shared := NewInt(1)
	items := []Object{shared, NewString("a"), True}
	ls := NewList(items)
	items[0] = Nil
	require.Equal(t, 3, ls.Len())
	require.Same(t, shared, ls.Items()[0])
	require.Equal(t, `[1, "a", true]`, ls.Inspect())
	require.Equal(t, []interface{}{int64(1), "a", true}, ls.Interface())
	require.True(t, ls.Equals(NewList([]Object{NewInt(1), NewString("a"), True})))
	require.False(t, ls.Equals(NewList([]Object{NewInt(1)})))
	require.False(t, NewList(nil).IsTruthy())
}

func TestFunction(t *testing.T) {
	params := []string{"a", "b"}
	fn := NewFunction(FunctionOpts{Parameters: params, Body: "{ (a + b); }"})
	params[0] = "z"
	require.Equal(t, []string{"a", "b"}, fn.Parameters())
	require.Equal(t, "fn(a, b) { (a + b); }", fn.Inspect())
	require.Equal(t, "function(<anonymous>)", fn.String())
	require.True(t, fn.Equals(fn))
	require.False(t, fn.Equals(NewFunction(FunctionOpts{Parameters: []string{"a", "b"}})))

	named := NewFunction(FunctionOpts{Name: "add"})
	require.Equal(t, "function(add)", named.String())
}

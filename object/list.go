package object

import "strings"

// List is an ordered sequence of objects. Items are shared, not copied.
type List struct {
	items []Object
}

func (ls *List) Type() Type {
	return LIST
}

// Items returns a copy of the list's item slice. The items themselves are
// shared with the list.
func (ls *List) Items() []Object {
	items := make([]Object, len(ls.items))
	copy(items, ls.items)
	return items
}

func (ls *List) Len() int {
	return len(ls.items)
}

func (ls *List) Inspect() string {
	items := make([]string, 0, len(ls.items))
	for _, item := range ls.items {
		items = append(items, item.Inspect())
	}
	return "[" + strings.Join(items, ", ") + "]"
}

func (ls *List) String() string {
	return ls.Inspect()
}

func (ls *List) Interface() interface{} {
	items := make([]interface{}, 0, len(ls.items))
	for _, item := range ls.items {
		items = append(items, item.Interface())
	}
	return items
}

func (ls *List) Equals(other Object) bool {
	otherList, ok := other.(*List)
	if !ok || len(ls.items) != len(otherList.items) {
		return false
	}
	for i, item := range ls.items {
		if !item.Equals(otherList.items[i]) {
			return false
		}
	}
	return true
}

func (ls *List) IsTruthy() bool {
	return len(ls.items) > 0
}

func NewList(items []Object) *List {
	owned := make([]Object, len(items))
	copy(owned, items)
	return &List{items: owned}
}

// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over the structure of a value tree.
package cursor

import (
	"fmt"

	"github.com/creachadair/vtree/value"
)

// Path traverses a sequential path into the structure of v where path elements
// are as documented for the Cursor.Down method.  This is a convenience wrapper
// for creating a cursor, applying path, and retrieving its value.
func Path[T value.Value](v value.Value, path ...any) (T, error) {
	c := New(v).Down(path...)
	var zero T
	if err := c.Err(); err != nil {
		return zero, err
	}
	t, ok := c.Value().(T)
	if !ok {
		return zero, fmt.Errorf("wrong value type %T", c.Value())
	}
	return t, nil
}

// A Cursor is a pointer that navigates into the structure of a value.Value.
type Cursor struct {
	org value.Value
	stk []value.Value
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin value.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() value.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() value.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of values from the origin to the current
// location in c.
func (c *Cursor) Path() []value.Value {
	return append([]value.Value{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current value, where path elements are strings (object keys), integers
// (offsets into arrays or objects), or functions.  If the path cannot be
// completely consumed, traversal stops at the last value reached and an
// error is recorded. Use Err to recover the error.
//
// An integer applied to an object selects the value of the member at that
// position in the object's iteration order, so the result depends on the
// order policy of the object. Negative indices count backward from the end
// (-1 is last, -2 second last).
//
// If a path element is a function, it must have the signature
//
//	func(value.Value) (value.Value, error)
//
// and its result becomes the next value in the sequence. If the function
// reports an error, traversal stops and the error is recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	cur := c.Value()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			obj, ok := cur.(*value.Object)
			if !ok {
				return c.setErrorf("cannot traverse %v with %q", value.KindOf(cur), t)
			}
			next, ok := obj.Get(t)
			if !ok {
				return c.setErrorf("key %q not found", t)
			}
			cur = c.push(next)

		case int:
			switch e := cur.(type) {
			case value.Array:
				i, ok := fixBound(len(e), t)
				if !ok {
					return c.setErrorf("array index %d out of bounds (n=%d)", t, len(e))
				}
				cur = c.push(e[i])
			case *value.Object:
				i, ok := fixBound(e.Len(), t)
				if !ok {
					return c.setErrorf("object index %d out of bounds (n=%d)", t, e.Len())
				}
				cur = c.push(e.At(i).Value)
			default:
				return c.setErrorf("cannot traverse %v with %d", value.KindOf(cur), t)
			}

		case func(value.Value) (value.Value, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(v value.Value) value.Value { c.stk = append(c.stk, v); return v }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package vtree

import (
	"fmt"

	"github.com/creachadair/mds/stack"
	"github.com/creachadair/vtree/value"
)

// A Builder is a Sink that assembles the events of a single document into a
// value.Value. After the outermost container is closed, or after a single
// top-level scalar, the finished value is available from Result.
//
// A Builder trusts its caller to deliver a well-nested event sequence. It
// checks only what it must consult anyway, and panics with a *ContractError
// if an event arrives in a state where it has no meaning.
//
// The zero value is ready for use, and creates objects with value.KeyOrder.
// A Builder is not safe for concurrent use.
type Builder struct {
	order  value.Order
	stk    *stack.Stack[*frame]
	result value.Value
	done   bool
}

// A frame is one in-progress container. Exactly one of obj and arr is
// meaningful, according to isObj. The pending key belongs to the frame, so
// that an object nested under a key does not disturb its parent's key.
type frame struct {
	isObj  bool
	obj    *value.Object
	arr    value.Array
	key    string // pending object key
	hasKey bool   // key is valid
}

// NewBuilder constructs a new Builder. If preserveOrder is true, every
// object the builder creates iterates its keys in insertion order; otherwise
// keys iterate in lexicographic order.
func NewBuilder(preserveOrder bool) *Builder {
	b := &Builder{stk: stack.New[*frame]()}
	if preserveOrder {
		b.order = value.InsertionOrder
	}
	return b
}

// Order reports the order policy b stamps on the objects it creates.
func (b *Builder) Order() value.Order { return b.order }

// Done reports whether b holds a complete value.
func (b *Builder) Done() bool { return b.done }

// Depth reports the number of containers currently open.
func (b *Builder) Depth() int {
	if b.stk == nil {
		return 0
	}
	return b.stk.Len()
}

// Result returns the completed value. The caller receives an independent
// copy; modifying it does not affect b or later calls to Result. If no
// complete value has been assembled, Result returns value.Null.
func (b *Builder) Result() value.Value {
	if !b.done {
		return value.Null
	}
	return value.Clone(b.result)
}

// Reset discards all state in b, so that it can be used to assemble another
// document. The order policy is unchanged.
func (b *Builder) Reset() {
	b.stk = stack.New[*frame]()
	b.result, b.done = nil, false
}

// BeginObject implements part of the Sink interface.
func (b *Builder) BeginObject() {
	b.checkLive("BeginObject")
	b.push(&frame{isObj: true, obj: value.NewObject(b.order)})
}

// EndObject implements part of the Sink interface.
func (b *Builder) EndObject() {
	f := b.pop("EndObject", true)
	b.place("EndObject", f.obj)
}

// BeginArray implements part of the Sink interface.
func (b *Builder) BeginArray() {
	b.checkLive("BeginArray")
	b.push(&frame{arr: value.Array{}})
}

// EndArray implements part of the Sink interface.
func (b *Builder) EndArray() {
	f := b.pop("EndArray", false)
	b.place("EndArray", f.arr)
}

// Key implements part of the Sink interface.
func (b *Builder) Key(k string) {
	b.checkLive("Key")
	top, ok := b.top()
	if !ok || !top.isObj {
		panic(b.contractf("Key", "key %q outside an object", k))
	}
	top.key, top.hasKey = k, true
}

// Value implements part of the Sink interface.
func (b *Builder) Value(v value.Scalar) {
	b.checkLive("Value")
	if v == nil {
		v = value.Null
	}
	b.place("Value", v)
}

// place routes a completed value to its destination: the pending key of the
// enclosing object, the end of the enclosing array, or the result if there
// is no enclosing container.
func (b *Builder) place(op string, v value.Value) {
	top, ok := b.top()
	if !ok {
		b.result, b.done = v, true
		return
	}
	if top.isObj {
		if !top.hasKey {
			panic(b.contractf(op, "%v value in object without a key", v.Kind()))
		}
		top.obj.Set(top.key, v)
		top.key, top.hasKey = "", false
	} else {
		top.arr = append(top.arr, v)
	}
}

func (b *Builder) push(f *frame) {
	if b.stk == nil {
		b.stk = stack.New[*frame]()
	}
	b.stk.Push(f)
}

func (b *Builder) top() (*frame, bool) {
	if b.stk == nil {
		return nil, false
	}
	return b.stk.Peek(0)
}

// pop removes and returns the top frame, which must be an object if isObj
// is true, or an array otherwise.
func (b *Builder) pop(op string, isObj bool) *frame {
	b.checkLive(op)
	top, ok := b.top()
	if !ok {
		panic(b.contractf(op, "no open container"))
	} else if top.isObj != isObj {
		panic(b.contractf(op, "innermost open container is %v", top.kind()))
	} else if isObj && top.hasKey {
		panic(b.contractf(op, "key %q has no value", top.key))
	}
	b.stk.Pop()
	return top
}

func (b *Builder) checkLive(op string) {
	if b.done {
		panic(b.contractf(op, "document is already complete"))
	}
}

func (b *Builder) contractf(op, msg string, args ...any) *ContractError {
	return &ContractError{Op: op, Depth: b.Depth(), Message: fmt.Sprintf(msg, args...)}
}

func (f *frame) kind() value.Kind {
	if f.isObj {
		return value.ObjectKind
	}
	return value.ArrayKind
}

// ContractError is the concrete type of the value a Builder panics with when
// an event violates the nesting contract of the Sink interface.
type ContractError struct {
	Op      string // the event that violated the contract
	Depth   int    // the number of open containers when it arrived
	Message string
}

// Error satisfies the error interface.
func (c *ContractError) Error() string {
	return fmt.Sprintf("%s at depth %d: %s", c.Op, c.Depth, c.Message)
}

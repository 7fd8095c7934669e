// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/creachadair/vtree/internal/escape"
	"go4.org/mem"
)

// Order is the iteration order policy of an Object.
type Order byte

const (
	// KeyOrder iterates keys in lexicographic byte order. This is the default.
	KeyOrder Order = iota

	// InsertionOrder iterates keys in the order they were first inserted.
	InsertionOrder
)

func (o Order) String() string {
	if o == InsertionOrder {
		return "insertion"
	}
	return "key"
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// An Object is a mapping from string keys to values. The order policy of an
// object is fixed when it is created, and governs the iteration order of its
// keys. Setting an existing key replaces its value without changing its
// position.
//
// The zero value is an empty object with KeyOrder.
type Object struct {
	order   Order
	members []Member

	// Position of each key in members. Used only for InsertionOrder; KeyOrder
	// objects search the sorted members directly.
	index map[string]int
}

// NewObject constructs a new empty object with the given order policy.
func NewObject(order Order) *Object { return &Object{order: order} }

// ObjectOf constructs an object with the given order policy and members.
// Later members replace earlier members with the same key.
func ObjectOf(order Order, ms ...Member) *Object {
	o := NewObject(order)
	for _, m := range ms {
		o.Set(m.Key, m.Value)
	}
	return o
}

// Field constructs a Member with the given key and value.
func Field(key string, v Value) Member { return Member{Key: key, Value: v} }

func (*Object) Kind() Kind { return ObjectKind }
func (*Object) isValue()   {}

// Order reports the order policy of o. A nil *Object has KeyOrder.
func (o *Object) Order() Order {
	if o == nil {
		return KeyOrder
	}
	return o.order
}

// Len reports the number of members in o. A nil *Object is empty.
func (o *Object) Len() int { return len(o.list()) }

// list returns the members of o, or nil if o == nil.
func (o *Object) list() []Member {
	if o == nil {
		return nil
	}
	return o.members
}

// find reports the position of key in o.members, and whether it is present.
// If key is not present, the position is where it belongs under o's policy.
func (o *Object) find(key string) (int, bool) {
	if o == nil {
		return 0, false
	} else if o.order == KeyOrder {
		return slices.BinarySearchFunc(o.members, key, func(m Member, k string) int {
			return strings.Compare(m.Key, k)
		})
	}
	if i, ok := o.index[key]; ok {
		return i, true
	}
	return len(o.members), false
}

// Set sets the value of key in o to v. It reports whether key was newly
// added (true) or an existing value was replaced (false).
func (o *Object) Set(key string, v Value) bool {
	i, ok := o.find(key)
	if ok {
		o.members[i].Value = v
		return false
	}
	if o.order == KeyOrder {
		o.members = slices.Insert(o.members, i, Member{Key: key, Value: v})
		return true
	}
	if o.index == nil {
		o.index = make(map[string]int)
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: v})
	return true
}

// Get returns the value of key in o, and reports whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	if i, ok := o.find(key); ok {
		return o.members[i].Value, true
	}
	return nil, false
}

// Has reports whether key is present in o.
func (o *Object) Has(key string) bool { _, ok := o.find(key); return ok }

// Delete removes key from o, and reports whether it was present.
func (o *Object) Delete(key string) bool {
	i, ok := o.find(key)
	if !ok {
		return false
	}
	o.members = slices.Delete(o.members, i, i+1)
	if o.order == InsertionOrder {
		delete(o.index, key)
		for j := i; j < len(o.members); j++ {
			o.index[o.members[j].Key] = j
		}
	}
	return true
}

// At returns the member of o at position i in iteration order.
// It panics if i is out of range.
func (o *Object) At(i int) Member { return o.members[i] }

// Keys returns the keys of o in iteration order.
func (o *Object) Keys() []string {
	keys := make([]string, o.Len())
	for i, m := range o.list() {
		keys[i] = m.Key
	}
	return keys
}

// All is a range function over the members of o in iteration order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, m := range o.list() {
			if !yield(m.Key, m.Value) {
				return
			}
		}
	}
}

// Clone returns a deep copy of o with the same order policy.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	cp := &Object{order: o.order, members: make([]Member, len(o.members))}
	for i, m := range o.members {
		cp.members[i] = Member{Key: m.Key, Value: Clone(m.Value)}
	}
	cp.index = maps.Clone(o.index)
	return cp
}

func (o *Object) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o.list() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.Write(escape.Quote(mem.S(m.Key)))
		sb.WriteByte(':')
		sb.WriteString(stringOf(m.Value))
	}
	sb.WriteByte('}')
	return sb.String()
}

// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package value defines a dynamic value type for documents assembled from
// parser events. A Value is one of Null, Bool, Int, Uint, Float, String,
// Array, or *Object; no other implementations are possible.
package value

import (
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/vtree/internal/escape"
	"go4.org/mem"
)

// A Value is an arbitrary dynamic value.
type Value interface {
	// Kind reports the variant of the value.
	Kind() Kind

	// String renders the value in a compact JSON-like form for diagnostics.
	String() string

	isValue()
}

// A Scalar is a Value that is not a container.
// The concrete type is one of Null, Bool, Int, Uint, Float, or String.
type Scalar interface {
	Value
	isScalar()
}

// Kind enumerates the variants of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	InvalidKind Kind = iota // a nil Value
	NullKind
	BoolKind
	IntKind
	UintKind
	FloatKind
	StringKind
	ArrayKind
	ObjectKind
)

var kindStr = [...]string{
	InvalidKind: "invalid",
	NullKind:    "null",
	BoolKind:    "bool",
	IntKind:     "int",
	UintKind:    "uint",
	FloatKind:   "float",
	StringKind:  "string",
	ArrayKind:   "array",
	ObjectKind:  "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[InvalidKind]
	}
	return kindStr[k]
}

// KindOf reports the kind of v. It returns InvalidKind if v == nil.
func KindOf(v Value) Kind {
	if v == nil {
		return InvalidKind
	}
	return v.Kind()
}

// NullType is the type of the Null constant.
type NullType struct{}

// Null is the null value.
var Null NullType

func (NullType) Kind() Kind     { return NullKind }
func (NullType) String() string { return "null" }
func (NullType) isValue()       {}
func (NullType) isScalar()      {}

// A Bool is a Boolean value, true or false.
type Bool bool

func (Bool) Kind() Kind { return BoolKind }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (Bool) isValue()  {}
func (Bool) isScalar() {}

// An Int is a signed 64-bit integer value.
type Int int64

func (Int) Kind() Kind       { return IntKind }
func (z Int) String() string { return strconv.FormatInt(int64(z), 10) }
func (Int) isValue()         {}
func (Int) isScalar()        {}

// A Uint is an unsigned 64-bit integer value. Parsers report a Uint only for
// integers too large to represent as an Int.
type Uint uint64

func (Uint) Kind() Kind       { return UintKind }
func (u Uint) String() string { return strconv.FormatUint(uint64(u), 10) }
func (Uint) isValue()         {}
func (Uint) isScalar()        {}

// A Float is a double-precision floating-point value.
type Float float64

func (Float) Kind() Kind { return FloatKind }
func (f Float) String() string {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
func (Float) isValue()  {}
func (Float) isScalar() {}

// A String is a string value.
type String string

func (String) Kind() Kind       { return StringKind }
func (s String) String() string { return string(escape.Quote(mem.S(string(s)))) }
func (String) isValue()         {}
func (String) isScalar()        {}

// An Array is an ordered sequence of values.
type Array []Value

func (Array) Kind() Kind { return ArrayKind }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

func (a Array) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(stringOf(v))
	}
	sb.WriteByte(']')
	return sb.String()
}
func (Array) isValue() {}

// stringOf renders v, treating a nil Value as null.
func stringOf(v Value) string {
	if v == nil {
		return "null"
	}
	return v.String()
}

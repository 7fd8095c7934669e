// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package value

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Equal reports whether a and b are structurally equal. Objects are equal if
// they have the same keys with equal values, regardless of order policy.
// Arrays are equal if they have equal elements in the same positions. A nil
// Value is equal only to another nil Value.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case Array:
		y, ok := b.(Array)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Object:
		y, ok := b.(*Object)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for key, xv := range x.All() {
			yv, ok := y.Get(key)
			if !ok || !Equal(xv, yv) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// Clone returns a deep copy of v. Scalars are returned as-is.
func Clone(v Value) Value {
	switch t := v.(type) {
	case Array:
		if t == nil {
			return t
		}
		cp := make(Array, len(t))
		for i, elt := range t {
			cp[i] = Clone(elt)
		}
		return cp
	case *Object:
		return t.Clone()
	default:
		return v
	}
}

// ParseNumber classifies the text of a JSON number literal. An integer
// literal is an Int if it fits in 64 bits, otherwise a Uint if it is
// non-negative and fits in 64 bits, otherwise a Float. A literal with a
// fraction or exponent is a Float.
func ParseNumber(text string) (Scalar, error) {
	if !strings.ContainsAny(text, ".eE") {
		z, err := strconv.ParseInt(text, 10, 64)
		if err == nil {
			return Int(z), nil
		} else if !errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("invalid number %q: %w", text, err)
		}
		if !strings.HasPrefix(text, "-") {
			if u, err := strconv.ParseUint(text, 10, 64); err == nil {
				return Uint(u), nil
			}
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("invalid number %q: %w", text, err)
	}
	return Float(f), nil
}

// FromAny converts a plain Go value into a Value. Objects are created with
// the given order policy; since Go maps are unordered, the resulting order
// under InsertionOrder is unspecified.
//
// The supported types are nil, bool, string, the built-in integer and
// floating-point types, json.Number, []any, map[string]any, and Value.
func FromAny(x any, order Order) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null, nil
	case Value:
		return Clone(t), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case int:
		return Int(t), nil
	case int8:
		return Int(t), nil
	case int16:
		return Int(t), nil
	case int32:
		return Int(t), nil
	case int64:
		return Int(t), nil
	case uint:
		return fromUint64(uint64(t)), nil
	case uint8:
		return Int(t), nil
	case uint16:
		return Int(t), nil
	case uint32:
		return Int(t), nil
	case uint64:
		return fromUint64(t), nil
	case float32:
		return Float(t), nil
	case float64:
		return Float(t), nil
	case json.Number:
		return ParseNumber(t.String())
	case []any:
		arr := make(Array, len(t))
		for i, elt := range t {
			v, err := FromAny(elt, order)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr[i] = v
		}
		return arr, nil
	case map[string]any:
		obj := NewObject(order)
		for key, elt := range t {
			v, err := FromAny(elt, order)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			obj.Set(key, v)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported type %T", x)
	}
}

func fromUint64(u uint64) Value {
	if u <= 1<<63-1 {
		return Int(u)
	}
	return Uint(u)
}

// ToAny converts v into a plain Go value: nil, bool, int64, uint64, float64,
// string, []any, or map[string]any.
func ToAny(v Value) any {
	switch t := v.(type) {
	case nil, NullType:
		return nil
	case Bool:
		return bool(t)
	case Int:
		return int64(t)
	case Uint:
		return uint64(t)
	case Float:
		return float64(t)
	case String:
		return string(t)
	case Array:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = ToAny(elt)
		}
		return out
	case *Object:
		out := make(map[string]any, t.Len())
		for key, elt := range t.All() {
			out[key] = ToAny(elt)
		}
		return out
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package value_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/creachadair/vtree/value"
	"github.com/google/go-cmp/cmp"
)

func TestString(t *testing.T) {
	tests := []struct {
		input value.Value
		want  string
	}{
		{value.Null, "null"},

		{value.Bool(false), "false"},
		{value.Bool(true), "true"},

		{value.String(""), `""`},
		{value.String("a \t b"), `"a \t b"`},

		{value.Float(-0.00239), `-0.00239`},
		{value.Float(math.Inf(-1)), `-Infinity`},

		{value.Int(0), `0`},
		{value.Int(-25), `-25`},
		{value.Uint(math.MaxUint64), `18446744073709551615`},

		{value.Array{}, `[]`},
		{value.Array{value.Bool(true), value.Int(199)}, `[true,199]`},
		{value.Array{nil}, `[null]`},

		{value.NewObject(value.KeyOrder), `{}`},
		{value.ObjectOf(value.InsertionOrder,
			value.Field("name", value.String("Dennis")),
			value.Field("age", value.Int(37)),
			value.Field("isOld", value.Bool(false)),
		), `{"name":"Dennis","age":37,"isOld":false}`},
		{value.ObjectOf(value.KeyOrder,
			value.Field("name", value.String("Dennis")),
			value.Field("age", value.Int(37)),
			value.Field("isOld", value.Bool(false)),
		), `{"age":37,"isOld":false,"name":"Dennis"}`},
	}
	for _, test := range tests {
		if got := test.input.String(); got != test.want {
			t.Errorf("Input: %#v\nGot:  %s\nWant: %s", test.input, got, test.want)
		}
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		input value.Value
		want  value.Kind
	}{
		{nil, value.InvalidKind},
		{value.Null, value.NullKind},
		{value.Bool(true), value.BoolKind},
		{value.Int(1), value.IntKind},
		{value.Uint(1), value.UintKind},
		{value.Float(1), value.FloatKind},
		{value.String("1"), value.StringKind},
		{value.Array{}, value.ArrayKind},
		{new(value.Object), value.ObjectKind},
	}
	for _, test := range tests {
		if got := value.KindOf(test.input); got != test.want {
			t.Errorf("KindOf(%v): got %v, want %v", test.input, got, test.want)
		}
	}
	if got := value.Kind(200).String(); got != "invalid" {
		t.Errorf("Kind(200): got %q, want invalid", got)
	}
}

func TestObjectOrder(t *testing.T) {
	keys := []string{"delta", "alpha", "charlie", "alpha", "bravo", "Zulu"}
	tests := []struct {
		order value.Order
		want  []string
	}{
		{value.InsertionOrder, []string{"delta", "alpha", "charlie", "bravo", "Zulu"}},
		{value.KeyOrder, []string{"Zulu", "alpha", "bravo", "charlie", "delta"}},
	}
	for _, tc := range tests {
		t.Run(tc.order.String(), func(t *testing.T) {
			o := value.NewObject(tc.order)
			for i, k := range keys {
				o.Set(k, value.Int(i))
			}
			if diff := cmp.Diff(tc.want, o.Keys()); diff != "" {
				t.Errorf("Keys (-want, +got):\n%s", diff)
			}
			if v, ok := o.Get("alpha"); !ok || v != value.Int(3) {
				t.Errorf(`Get("alpha"): got %v, %v; want 3, true`, v, ok)
			}

			var iterKeys []string
			for k := range o.All() {
				iterKeys = append(iterKeys, k)
				if len(iterKeys) == 2 {
					break
				}
			}
			if diff := cmp.Diff(tc.want[:2], iterKeys); diff != "" {
				t.Errorf("All (-want, +got):\n%s", diff)
			}
			if m := o.At(0); m.Key != tc.want[0] {
				t.Errorf("At(0): got key %q, want %q", m.Key, tc.want[0])
			}
		})
	}
}

func TestObjectSetDelete(t *testing.T) {
	for _, order := range []value.Order{value.InsertionOrder, value.KeyOrder} {
		t.Run(order.String(), func(t *testing.T) {
			o := value.NewObject(order)
			if !o.Set("a", value.Int(1)) {
				t.Error(`Set("a") should report a new key`)
			}
			if o.Set("a", value.Int(2)) {
				t.Error(`Set("a") again should report a replacement`)
			}
			o.Set("b", value.Int(3))
			o.Set("c", value.Int(4))

			if !o.Delete("b") {
				t.Error(`Delete("b") should report true`)
			}
			if o.Delete("b") {
				t.Error(`Delete("b") again should report false`)
			}
			if o.Has("b") {
				t.Error(`Has("b") after Delete`)
			}
			if v, ok := o.Get("c"); !ok || v != value.Int(4) {
				t.Errorf(`Get("c"): got %v, %v; want 4, true`, v, ok)
			}
			o.Set("b", value.Null)
			if got, want := o.Len(), 3; got != want {
				t.Errorf("Len: got %d, want %d", got, want)
			}
			if _, ok := o.Get("nonesuch"); ok {
				t.Error(`Get("nonesuch") reported present`)
			}
		})
	}
}

func TestObjectDeleteReindex(t *testing.T) {
	o := value.ObjectOf(value.InsertionOrder,
		value.Field("x", value.Int(1)),
		value.Field("y", value.Int(2)),
		value.Field("z", value.Int(3)),
	)
	o.Delete("x")
	o.Set("z", value.Int(30)) // must still find z at its new position
	if got, want := o.String(), `{"y":2,"z":30}`; got != want {
		t.Errorf("After delete: got %s, want %s", got, want)
	}
}

func TestEqual(t *testing.T) {
	ins := value.ObjectOf(value.InsertionOrder,
		value.Field("b", value.Array{value.Int(1), value.Null}),
		value.Field("a", value.String("x")),
	)
	kord := value.ObjectOf(value.KeyOrder,
		value.Field("a", value.String("x")),
		value.Field("b", value.Array{value.Int(1), value.Null}),
	)
	var nilObj *value.Object
	tests := []struct {
		a, b value.Value
		want bool
	}{
		{nil, nil, true},
		{nil, value.Null, false},
		{value.Null, value.Null, true},
		{value.Int(1), value.Int(1), true},
		{value.Int(1), value.Uint(1), false},
		{value.Int(1), value.Float(1), false},
		{value.String("a"), value.String("a"), true},
		{value.Array{}, value.Array(nil), true},
		{value.Array{value.Int(1)}, value.Array{value.Int(2)}, false},
		{value.Array{value.Int(1)}, value.Array{value.Int(1), value.Int(1)}, false},
		{ins, kord, true},
		{ins, value.ObjectOf(value.KeyOrder, value.Field("a", value.String("x"))), false},
		{ins, value.ObjectOf(value.KeyOrder,
			value.Field("a", value.String("x")),
			value.Field("c", value.Array{value.Int(1), value.Null}),
		), false},
		{ins, value.Array{}, false},
		{nilObj, nilObj, true},
		{nilObj, ins, false},
		{ins, nilObj, false},
	}
	for _, tc := range tests {
		if got := value.Equal(tc.a, tc.b); got != tc.want {
			t.Errorf("Equal(%v, %v): got %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}

	// A nil *Object behaves as an empty object.
	if n := nilObj.Len(); n != 0 {
		t.Errorf("Len of nil object: got %d, want 0", n)
	}
	if s := nilObj.String(); s != "{}" {
		t.Errorf("String of nil object: got %s, want {}", s)
	}
	if v, ok := nilObj.Get("a"); ok {
		t.Errorf("Get on nil object: got %v, want not found", v)
	}
	if len(nilObj.Keys()) != 0 {
		t.Errorf("Keys of nil object: got %q, want none", nilObj.Keys())
	}
}

func TestClone(t *testing.T) {
	orig := value.ObjectOf(value.InsertionOrder,
		value.Field("list", value.Array{value.Int(1), value.ObjectOf(value.KeyOrder)}),
		value.Field("s", value.String("ok")),
	)
	cp := value.Clone(orig).(*value.Object)
	if !value.Equal(orig, cp) {
		t.Fatalf("Clone: got %v, want %v", cp, orig)
	}
	if cp.Order() != value.InsertionOrder {
		t.Errorf("Clone order: got %v, want insertion", cp.Order())
	}

	list, _ := cp.Get("list")
	list.(value.Array)[1].(*value.Object).Set("new", value.Null)
	cp.Set("t", value.Bool(true))
	if got, want := orig.String(), `{"list":[1,{}],"s":"ok"}`; got != want {
		t.Errorf("Original modified: got %s, want %s", got, want)
	}
	if got, want := cp.String(), `{"list":[1,{"new":null}],"s":"ok","t":true}`; got != want {
		t.Errorf("Clone: got %s, want %s", got, want)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  value.Scalar
	}{
		{"0", value.Int(0)},
		{"-0", value.Int(0)},
		{"15", value.Int(15)},
		{"-25", value.Int(-25)},
		{"9223372036854775807", value.Int(math.MaxInt64)},
		{"-9223372036854775808", value.Int(math.MinInt64)},
		{"9223372036854775808", value.Uint(1 << 63)},
		{"18446744073709551615", value.Uint(math.MaxUint64)},
		{"18446744073709551616", value.Float(18446744073709551616)},
		{"-9223372036854775809", value.Float(-9223372036854775809)},
		{"2.5", value.Float(2.5)},
		{"1e3", value.Float(1000)},
		{"-6.32E-1", value.Float(-0.632)},
		{"1e400", value.Float(math.Inf(1))},
	}
	for _, tc := range tests {
		got, err := value.ParseNumber(tc.input)
		if err != nil {
			t.Errorf("ParseNumber(%q): unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseNumber(%q): got %T %v, want %T %v", tc.input, got, got, tc.want, tc.want)
		}
	}

	for _, bad := range []string{"", "abc", "1.2.3", "--1"} {
		if got, err := value.ParseNumber(bad); err == nil {
			t.Errorf("ParseNumber(%q): got %v, want error", bad, got)
		}
	}
}

func TestFromAny(t *testing.T) {
	var doc any
	const input = `{"a": [1, 2.5, "x", null, true], "big": 18446744073709551615, "o": {}}`
	if err := json.Unmarshal([]byte(input), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	got, err := value.FromAny(doc, value.KeyOrder)
	if err != nil {
		t.Fatalf("FromAny: unexpected error: %v", err)
	}
	// Without UseNumber, encoding/json reports all numbers as float64.
	const want = `{"a":[1,2.5,"x",null,true],"big":1.8446744073709552e+19,"o":{}}`
	if s := got.String(); s != want {
		t.Errorf("FromAny: got %s, want %s", s, want)
	}

	num, err := value.FromAny(json.Number("18446744073709551615"), value.KeyOrder)
	if err != nil {
		t.Fatalf("FromAny(Number): unexpected error: %v", err)
	} else if num != value.Uint(math.MaxUint64) {
		t.Errorf("FromAny(Number): got %T %v, want Uint max", num, num)
	}

	for _, in := range []any{uint64(math.MaxUint64), uint(7), int8(-3), float32(0.5)} {
		v, err := value.FromAny(in, value.KeyOrder)
		if err != nil {
			t.Errorf("FromAny(%T): unexpected error: %v", in, err)
		} else if v.Kind() == value.InvalidKind {
			t.Errorf("FromAny(%T): invalid result", in)
		}
	}

	if v, err := value.FromAny(struct{}{}, value.KeyOrder); err == nil {
		t.Errorf("FromAny(struct): got %v, want error", v)
	}
	if v, err := value.FromAny(map[string]any{"k": []any{make(chan int)}}, value.KeyOrder); err == nil {
		t.Errorf("FromAny(nested chan): got %v, want error", v)
	}
}

func TestToAny(t *testing.T) {
	v := value.ObjectOf(value.InsertionOrder,
		value.Field("n", value.Null),
		value.Field("list", value.Array{
			value.Bool(true), value.Int(-1), value.Uint(math.MaxUint64),
			value.Float(0.25), value.String("s"),
		}),
	)
	want := map[string]any{
		"n":    nil,
		"list": []any{true, int64(-1), uint64(math.MaxUint64), 0.25, "s"},
	}
	if diff := cmp.Diff(want, value.ToAny(v)); diff != "" {
		t.Errorf("ToAny (-want, +got):\n%s", diff)
	}

	back, err := value.FromAny(value.ToAny(v), value.KeyOrder)
	if err != nil {
		t.Fatalf("FromAny: unexpected error: %v", err)
	}
	if !value.Equal(v, back) {
		t.Errorf("Round trip: got %v, want %v", back, v)
	}
}

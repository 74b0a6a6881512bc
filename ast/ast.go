// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a value tree for JSON documents, and a parser that
// constructs value trees from a stream of JSON tokens.
package ast

import (
	"fmt"
	"maps"
	"slices"
)

// A Value is an arbitrary JSON value. The concrete type is one of Null,
// Bool, Number, String, Object, or Array.
type Value interface {
	// Kind reports which variant of JSON value this is.
	Kind() Kind
}

// Kind identifies the variant of a Value.
type Kind byte

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ObjectKind
	ArrayKind
)

var kindStr = [...]string{
	NullKind:   "null",
	BoolKind:   "bool",
	NumberKind: "number",
	StringKind: "string",
	ObjectKind: "object",
	ArrayKind:  "array",
}

func (k Kind) String() string {
	if int(k) < len(kindStr) {
		return kindStr[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Null represents the null constant.
type Null struct{}

// Kind satisfies the Value interface.
func (Null) Kind() Kind { return NullKind }

// A Bool is a Boolean constant, true or false.
type Bool bool

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return BoolKind }

// A Number is a numeric value. JSON numbers are represented with the
// precision of a float64.
type Number float64

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return NumberKind }

// A String is a string value, with escapes already decoded.
type String string

// Kind satisfies the Value interface.
func (String) Kind() Kind { return StringKind }

// An Object is a collection of values indexed by unique string keys.
// The order of keys is not significant.
type Object map[string]Value

// Kind satisfies the Value interface.
func (Object) Kind() Kind { return ObjectKind }

// Find reports the value of the member of o with the given key, and whether
// it was present.
func (o Object) Find(key string) (Value, bool) {
	v, ok := o[key]
	return v, ok
}

// Keys returns the keys of o in lexicographic order.
func (o Object) Keys() []string { return slices.Sorted(maps.Keys(o)) }

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// An Array is a sequence of values.
type Array []Value

// Kind satisfies the Value interface.
func (Array) Kind() Kind { return ArrayKind }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// ToValue converts a Go value into a Value. It panics if v cannot be
// represented.
//
// The supported types are nil, bool, string, the built-in integer and
// floating-point types, Value, []any, and map[string]any. Elements of slices
// and maps are converted recursively.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Number(t)
	case int32:
		return Number(t)
	case int64:
		return Number(t)
	case uint:
		return Number(t)
	case uint32:
		return Number(t)
	case uint64:
		return Number(t)
	case float32:
		return Number(t)
	case float64:
		return Number(t)
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	case map[string]any:
		out := make(Object, len(t))
		for key, elt := range t {
			out[key] = ToValue(elt)
		}
		return out
	default:
		panic(fmt.Sprintf("unsupported value type %T", v))
	}
}

// Plain converts v into the generic form produced by decoding JSON into an
// empty interface with encoding/json: nil, bool, float64, string, []any, and
// map[string]any.
func Plain(v Value) any {
	switch t := v.(type) {
	case Null, nil:
		return nil
	case Bool:
		return bool(t)
	case Number:
		return float64(t)
	case String:
		return string(t)
	case Array:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = Plain(elt)
		}
		return out
	case Object:
		out := make(map[string]any, len(t))
		for key, elt := range t {
			out[key] = Plain(elt)
		}
		return out
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

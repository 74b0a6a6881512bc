// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
	"github.com/jayvdb/joxide/ast"
)

func TestToValue(t *testing.T) {
	tests := []struct {
		input any
		want  ast.Value
	}{
		{nil, ast.Null{}},
		{true, ast.Bool(true)},
		{"a \t b", ast.String("a \t b")},
		{15, ast.Number(15)},
		{int64(-25), ast.Number(-25)},
		{uint32(7), ast.Number(7)},
		{-0.00239, ast.Number(-0.00239)},
		{ast.String("already"), ast.String("already")},
		{[]any{}, ast.Array{}},
		{[]any{false, 199, "x"}, ast.Array{ast.Bool(false), ast.Number(199), ast.String("x")}},
		{map[string]any{
			"name":  "Dennis",
			"age":   37,
			"pages": map[string]any{"token": nil},
		}, ast.Object{
			"name":  ast.String("Dennis"),
			"age":   ast.Number(37),
			"pages": ast.Object{"token": ast.Null{}},
		}},
	}
	for _, test := range tests {
		got := ast.ToValue(test.input)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ToValue(%#v): (-want, +got)\n%s", test.input, diff)
		}

		// Conversion to plain form and back is lossless for these inputs.
		if diff := cmp.Diff(test.want, ast.ToValue(ast.Plain(got))); diff != "" {
			t.Errorf("Round trip %#v: (-want, +got)\n%s", test.input, diff)
		}
	}

	t.Run("Unsupported", func(t *testing.T) {
		mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
		mtest.MustPanic(t, func() { ast.ToValue(func() {}) })
		mtest.MustPanic(t, func() { ast.ToValue(make(chan struct{})) })
		mtest.MustPanic(t, func() { ast.ToValue(map[string]int{"x": 1}) })
	})
}

func TestPlain(t *testing.T) {
	v := ast.Object{
		"list": ast.Array{ast.Number(1), ast.Null{}},
		"ok":   ast.Bool(true),
		"s":    ast.String("x"),
	}
	want := map[string]any{
		"list": []any{1.0, nil},
		"ok":   true,
		"s":    "x",
	}
	if diff := cmp.Diff(want, ast.Plain(v)); diff != "" {
		t.Errorf("Plain (-want, +got):\n%s", diff)
	}
	if got := ast.Plain(nil); got != nil {
		t.Errorf("Plain(nil): got %v, want nil", got)
	}
}

func TestObject(t *testing.T) {
	obj := ast.Object{"b": ast.Null{}, "c": ast.Bool(false), "a": ast.Number(1)}
	if diff := cmp.Diff([]string{"a", "b", "c"}, obj.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}
	if got, want := obj.Len(), 3; got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}
	if v, ok := obj.Find("c"); !ok || v != ast.Value(ast.Bool(false)) {
		t.Errorf(`Find("c"): got (%v, %v), want (false, true)`, v, ok)
	}
	if v, ok := obj.Find("nonesuch"); ok {
		t.Errorf(`Find("nonesuch"): got (%v, %v), want (nil, false)`, v, ok)
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null{}, "null"},
		{ast.Bool(true), "bool"},
		{ast.Number(0), "number"},
		{ast.String(""), "string"},
		{ast.Object{}, "object"},
		{ast.Array{}, "array"},
	}
	for _, test := range tests {
		if got := test.input.Kind().String(); got != test.want {
			t.Errorf("Kind(%#v): got %q, want %q", test.input, got, test.want)
		}
	}
}

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package factory

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_New(t *testing.T) {
	require := require.New(t)

	t.Run("should build anonymous type", func(t *testing.T) {
		typ, err := New([]string{"x", "y"})
		require.NoError(err)
		require.Empty(typ.Name())
		require.Equal([]string{"x", "y"}, typ.Fields())
		require.Equal(2, typ.FieldCount())
		require.Regexp(`^#[0-9a-f]{8}\(x, y\)$`, typ.String())
	})

	t.Run("should build named type", func(t *testing.T) {
		typ, err := New([]string{"x", "y"}, WithName("Point"))
		require.NoError(err)
		require.Equal("Point", typ.Name())
		require.Equal("Point(x, y)", typ.String())
	})

	t.Run("should build type without fields", func(t *testing.T) {
		typ, err := New(nil, WithName("Unit"))
		require.NoError(err)
		require.Zero(typ.FieldCount())
		r := typ.MustNew()
		require.Zero(r.Len())
		require.Equal("Unit{}", r.String())
	})

	t.Run("should build distinct types from the same fields", func(t *testing.T) {
		t1 := MustNew([]string{"a"})
		t2 := MustNew([]string{"a"})
		require.NotEqual(t1.ID(), t2.ID())
		require.False(t1.MustNew(1).Equals(t2.MustNew(1)))
	})

	t.Run("should not share fields slice with caller", func(t *testing.T) {
		fields := []string{"a", "b"}
		typ := MustNew(fields)
		fields[0] = "z"
		require.Equal([]string{"a", "b"}, typ.Fields())

		got := typ.Fields()
		got[1] = "z"
		require.Equal([]string{"a", "b"}, typ.Fields())
	})

	t.Run("should index fields", func(t *testing.T) {
		typ := MustNew([]string{"a", "b", "c"})
		idx, ok := typ.FieldIndex("c")
		require.True(ok)
		require.Equal(2, idx)
		_, ok = typ.FieldIndex("d")
		require.False(ok)
	})
}

func Test_NewErrors(t *testing.T) {
	tests := []struct {
		name    string
		fields  []string
		opts    []Option
		wantErr error
		msg     string
	}{
		{"field starts with digit", []string{"x", "1y"}, nil, ErrInvalidFieldNameError, "«1y»"},
		{"field is not identifier", []string{"first name"}, nil, ErrInvalidFieldNameError, "«first name»"},
		{"field is empty", []string{""}, nil, ErrInvalidFieldNameError, "ident is empty"},
		{"field is duplicated", []string{"a", "b", "a"}, nil, ErrInvalidFieldNameError, "already declared"},
		{"name is lowercase", []string{"x"}, []Option{WithName("point")}, ErrInvalidTypeNameError, "«point»"},
		{"name is not identifier", []string{"x"}, []Option{WithName("Po int")}, ErrInvalidTypeNameError, "«Po int»"},
		{"method name is invalid", []string{"x"}, []Option{WithMethod("do-it", func(IRecord, ...any) (any, error) { return nil, nil })}, ErrInvalidMethodNameError, "«do-it»"},
		{"method is nil", []string{"x"}, []Option{WithMethod("do", nil)}, ErrInvalidMethodNameError, "method is nil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, err := New(tt.fields, tt.opts...)
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorContains(t, err, tt.msg)
			require.Nil(t, typ)
		})
	}

	t.Run("MustNew should panic", func(t *testing.T) {
		require.Panics(t, func() { MustNew([]string{"9"}) })
	})
}

func Test_TypeNew(t *testing.T) {
	require := require.New(t)

	typ := MustNew([]string{"a", "b", "c"})

	t.Run("should pad omitted values with nil", func(t *testing.T) {
		r, err := typ.New(10)
		require.NoError(err)
		require.Equal([]any{10, nil, nil}, r.Values())
		require.Equal(3, r.Len())
	})

	t.Run("should fail if too many values", func(t *testing.T) {
		r, err := typ.New(1, 2, 3, 4)
		require.ErrorIs(err, ErrTooManyValuesError)
		require.ErrorContains(err, "4 values")
		require.Nil(r)
		require.Panics(func() { typ.MustNew(1, 2, 3, 4) })
	})

	t.Run("should not share values slice with caller", func(t *testing.T) {
		vals := []any{1, 2, 3}
		r := typ.MustNew(vals...)
		vals[0] = 100
		require.Equal(1, r.Values()[0])
	})
}

func Test_Accessor(t *testing.T) {
	require := require.New(t)

	typ := MustNew([]string{"x", "y"}, WithName("Point"))
	r := typ.MustNew(1, 2)

	y, err := typ.Accessor("y")
	require.NoError(err)
	require.Equal("y", y.Name)
	require.Equal(2, y.Get(r))

	y.Set(r, 20)
	require.Equal(20, y.Get(r))
	v, err := r.Get(Name("y"))
	require.NoError(err)
	require.Equal(20, v)

	t.Run("should fail if unknown field", func(t *testing.T) {
		_, err := typ.Accessor("z")
		require.ErrorIs(err, ErrUnknownFieldError)
		require.ErrorContains(err, "Point(x, y)")
	})

	t.Run("should panic if record of another type", func(t *testing.T) {
		other := MustNew([]string{"x", "y"}).MustNew(1, 2)
		require.Panics(func() { y.Get(other) })
		require.Panics(func() { y.Set(other, 1) })
	})
}

func Test_Extension(t *testing.T) {
	require := require.New(t)

	norm := func(r IRecord, _ ...any) (any, error) {
		x, _ := Get[int](r, Name("x"))
		y, _ := Get[int](r, Name("y"))
		return x*x + y*y, nil
	}
	scale := func(r IRecord, args ...any) (any, error) {
		if len(args) != 1 {
			return nil, errors.New("scale expects one argument")
		}
		k := args[0].(int)
		for i := range r.Len() {
			v, _ := Get[int](r, Position(i))
			_ = r.Set(Position(i), v*k)
		}
		return r, nil
	}

	typ := MustNew([]string{"x", "y"},
		WithName("Vector"),
		WithExtension(Methods{"Norm2": norm, "Scale": scale}),
		WithMethod(MethodName_String, func(r IRecord, _ ...any) (any, error) {
			v := r.Values()
			return fmt.Sprintf("<%v, %v>", v[0], v[1]), nil
		}),
	)

	r := typ.MustNew(3, 4)

	n, err := r.Call("Norm2")
	require.NoError(err)
	require.Equal(25, n)

	_, err = r.Call("Scale", 2)
	require.NoError(err)
	require.Equal([]any{6, 8}, r.Values())

	_, err = r.Call("Scale")
	require.ErrorContains(err, "one argument")

	require.Equal("<6, 8>", r.String())
	require.NotNil(typ.Method("Norm2"))
	require.Nil(typ.Method("Unknown"))

	t.Run("should fail if unknown method", func(t *testing.T) {
		_, err := r.Call("Unknown")
		require.ErrorIs(err, ErrUnknownMethodError)
	})

	t.Run("later extension should override earlier", func(t *testing.T) {
		typ := MustNew([]string{"x"},
			WithMethod("Kind", func(IRecord, ...any) (any, error) { return "first", nil }),
			WithMethod("Kind", func(IRecord, ...any) (any, error) { return "second", nil }),
		)
		k, err := typ.MustNew().Call("Kind")
		require.NoError(err)
		require.Equal("second", k)
	})

	t.Run("should use default String if override fails", func(t *testing.T) {
		typ := MustNew([]string{"x"}, WithName("Broken"),
			WithMethod(MethodName_String, func(IRecord, ...any) (any, error) { return nil, errors.New("boom") }))
		require.Equal("Broken{x: 1}", typ.MustNew(1).String())
	})
}

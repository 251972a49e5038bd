/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package factory

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/samber/lo"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/exp/slices"
)

// Implements IRecord
type record struct {
	typ    *recordType
	values []any
}

func (r *record) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range r.values {
			if !yield(v) {
				return
			}
		}
	}
}

func (r *record) Call(method string, args ...any) (any, error) {
	m := r.typ.methods[method]
	if m == nil {
		return nil, ErrUnknownMethod(method, r.typ)
	}
	return m(r, args...)
}

func (r *record) Contains(v any) bool {
	return slices.IndexFunc(r.values, func(x any) bool { return valuesEqual(x, v) }) >= 0
}

func (r *record) Each(visit func(any)) IRecord {
	if visit != nil {
		for v := range r.All() {
			visit(v)
		}
	}
	return r
}

func (r *record) EachPair(visit func(string, any)) IRecord {
	if visit != nil {
		for n, v := range r.Pairs() {
			visit(n, v)
		}
	}
	return r
}

func (r *record) Equals(other IRecord) bool {
	o, ok := other.(*record)
	if !ok || o == nil {
		return false
	}
	if r == o {
		return true
	}
	if r.typ != o.typ {
		return false
	}
	for i, v := range r.values {
		if !valuesEqual(v, o.values[i]) {
			return false
		}
	}
	return true
}

func (r *record) Filter(pred func(any) bool) iter.Seq[any] {
	if pred == nil {
		return r.All()
	}
	return func(yield func(any) bool) {
		for _, v := range r.values {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

func (r *record) Get(k Key) (any, error) {
	i, err := r.position(k)
	if err != nil {
		return nil, err
	}
	return r.values[i], nil
}

func (r *record) Len() int { return len(r.values) }

func (r *record) Members() []string { return r.typ.Fields() }

func (r *record) Pairs() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for p := r.ToMapping().Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

func (r *record) Select(pred func(any) bool) []any {
	if pred == nil {
		return r.Values()
	}
	return lo.Filter(r.values, func(v any, _ int) bool { return pred(v) })
}

func (r *record) Set(k Key, v any) error {
	i, err := r.position(k)
	if err != nil {
		return err
	}
	r.values[i] = v
	return nil
}

func (r *record) String() string {
	if m := r.typ.methods[MethodName_String]; m != nil {
		if s, err := m(r); err == nil {
			return fmt.Sprint(s)
		}
	}
	fields := lo.Map(r.typ.fields, func(f string, i int) string {
		return f + ": " + formatValue(r.values[i])
	})
	return r.typ.name + "{" + strings.Join(fields, ", ") + "}"
}

func (r *record) ToMapping() *orderedmap.OrderedMap[string, any] {
	m := orderedmap.New[string, any]()
	for i, f := range r.typ.fields {
		m.Set(f, r.values[i])
	}
	return m
}

func (r *record) Type() IRecordType { return r.typ }

func (r *record) Values() []any { return slices.Clone(r.values) }

func (r *record) ValuesAt(positions ...int) ([]any, error) {
	res := make([]any, 0, len(positions))
	for _, p := range positions {
		i, err := r.position(Position(p))
		if err != nil {
			return nil, err
		}
		res = append(res, r.values[i])
	}
	return res, nil
}

// Resolves key to value index
func (r *record) position(k Key) (int, error) {
	if p, ok := k.Position(); ok {
		l := len(r.values)
		i := p
		if i < 0 {
			i += l
		}
		if i < 0 || i >= l {
			return -1, ErrIndexOutOfRange(p, l)
		}
		return i, nil
	}
	if n, ok := k.Name(); ok {
		if i, ok := r.typ.index[n]; ok {
			return i, nil
		}
		return -1, ErrUnknownField(n, r.typ)
	}
	return -1, ErrUnknownField(k.String(), r.typ)
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprint(v)
	}
}

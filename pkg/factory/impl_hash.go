/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package factory

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

func (r *record) Hash() uint64 {
	d := xxhash.New()
	_, _ = d.Write(r.typ.id[:])
	for _, v := range r.values {
		writeHash(d, v)
	}
	return d.Sum64()
}

// Writes value hash. Values equal by valuesEqual must produce the same bytes.
//
// Only scalars contribute their content; containers and pointers contribute their type only.
func writeHash(d *xxhash.Digest, v any) {
	switch v := v.(type) {
	case nil:
		_, _ = d.WriteString("nil")
	case IRecord:
		_, _ = fmt.Fprintf(d, "rec:%x", v.Hash())
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Bool, reflect.String,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			_, _ = fmt.Fprintf(d, "%T:%v", v, v)
		case reflect.Float32, reflect.Float64:
			// +0 turns -0 into 0
			_, _ = fmt.Fprintf(d, "%T:%v", v, rv.Float()+0)
		case reflect.Complex64, reflect.Complex128:
			_, _ = fmt.Fprintf(d, "%T:%v", v, rv.Complex()+0)
		default:
			_, _ = fmt.Fprintf(d, "%T", v)
		}
	}
	_, _ = d.WriteString(";")
}

// Returns is values equal. Records are compared by Equals, other values deeply
func valuesEqual(a, b any) bool {
	if ra, ok := a.(IRecord); ok {
		rb, ok := b.(IRecord)
		return ok && ra.Equals(rb)
	}
	return reflect.DeepEqual(a, b)
}

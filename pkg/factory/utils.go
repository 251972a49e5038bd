/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package factory

import (
	"fmt"
)

// Returns is string is valid identifier and error if not.
//
// Identifier starts with ASCII letter or underscore, followed by letters, digits
// and underscores.
func ValidIdent(ident string) (bool, error) {
	if len(ident) < 1 {
		return false, errIdentMissed
	}

	if l := len(ident); l > MaxIdentLen {
		return false, fmt.Errorf("%w (%d chars, max is %d)", errIdentTooLong, l, MaxIdentLen)
	}

	const (
		char_a rune = 'a'
		char_A rune = 'A'
		char_z rune = 'z'
		char_Z rune = 'Z'
		char_0 rune = '0'
		char_9 rune = '9'
		char__ rune = '_'
	)

	digit := func(r rune) bool { return (char_0 <= r) && (r <= char_9) }

	letter := func(r rune) bool { return ((char_a <= r) && (r <= char_z)) || ((char_A <= r) && (r <= char_Z)) }

	underScore := func(r rune) bool { return r == char__ }

	for p, c := range ident {
		if !letter(c) && !underScore(c) {
			if (p == 0) || !digit(c) {
				return false, fmt.Errorf("%w «%c» at pos %d", errIdentBadChar, c, p)
			}
		}
	}

	return true, nil
}

// Returns is string is valid type name and error if not.
//
// Type name is identifier started with uppercase letter.
func ValidTypeName(name string) (bool, error) {
	if ok, err := ValidIdent(name); !ok {
		return false, err
	}
	if c := name[0]; c < 'A' || c > 'Z' {
		return false, errNotCapital
	}
	return true, nil
}

// Returns record value by key converted to T.
//
// Returns zero T and no error if value is nil. Returns error if value has another type.
func Get[T any](r IRecord, k Key) (T, error) {
	var zero T
	v, err := r.Get(k)
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("field «%v» of %v has type %T, not %T", k, r.Type(), v, zero)
	}
	return t, nil
}

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package factory

import "strconv"

// Key addresses record field by zero-based position or by name.
//
// Use Position or Name to construct. Zero Key addresses nothing.
type Key struct {
	kind keyKind
	pos  int
	name string
}

// Returns key, which addresses field by position. Negative positions count from the end.
func Position(i int) Key { return Key{kind: keyKind_Position, pos: i} }

// Returns key, which addresses field by name.
func Name(n string) Key { return Key{kind: keyKind_Name, name: n} }

// Returns key from string: integer strings are positions, other strings are names.
func ParseKey(s string) Key {
	if i, err := strconv.Atoi(s); err == nil {
		return Position(i)
	}
	return Name(s)
}

// Returns position and true if key is positional.
func (k Key) Position() (int, bool) { return k.pos, k.kind == keyKind_Position }

// Returns name and true if key is named.
func (k Key) Name() (string, bool) { return k.name, k.kind == keyKind_Name }

func (k Key) IsZero() bool { return k.kind == keyKind_null }

func (k Key) String() string {
	switch k.kind {
	case keyKind_Position:
		return strconv.Itoa(k.pos)
	case keyKind_Name:
		return k.name
	default:
		return "<null>"
	}
}

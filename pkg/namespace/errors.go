/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package namespace

import (
	"errors"
	"fmt"
)

var (
	// Attempt to register name which is already registered
	ErrDuplicate = errors.New("namespace: duplicate registration")
	// Lookup for unregistered name
	ErrUnknown = errors.New("namespace: unknown name")
	// Attempt to register in a sealed namespace
	ErrSealed = errors.New("namespace: sealed namespace")
	// Attempt to register nil type
	ErrNilType = errors.New("namespace: nil record type")
)

func errDuplicate(name string) error {
	return fmt.Errorf("%w: «%s»", ErrDuplicate, name)
}

func errUnknown(name string) error {
	return fmt.Errorf("%w: «%s»", ErrUnknown, name)
}

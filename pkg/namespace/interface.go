/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

// Package namespace binds record types to symbolic names.
//
// Registration is explicit: factory.New builds anonymous or named types without
// side effects, Namespace.Register (or Namespace.Define) binds them.
//
//	ns := namespace.New()
//	point, err := ns.Define("Point", []string{"x", "y"})
//	...
//	p := ns.MustLookup("Point").MustNew(1, 2)
package namespace

// Option configures namespace
type Option func(*options)

type options struct {
	allowReplace bool
}

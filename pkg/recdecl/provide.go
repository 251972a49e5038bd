/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

// Package recdecl reads record type declarations.
//
// Declaration is an optional type name followed by parenthesized field list:
//
//	# comment
//	Point(x, y)
//	Person(name, address);
//	(a, b, c)
package recdecl

import (
	"github.com/voedger/recfactory/pkg/factory"
	"github.com/voedger/recfactory/pkg/namespace"
)

// Parses declarations from content. Performs syntax analysis only.
func Parse(fileName, content string) ([]*Decl, error) {
	return parseImpl(fileName, content)
}

// Builds record types from declarations. Named types are registered in ns, if ns is not nil.
// Options are applied to every type.
//
// Errors from factory and namespace are returned with declaration position.
func Build(decls []*Decl, ns *namespace.Namespace, opts ...factory.Option) ([]factory.IRecordType, error) {
	return buildImpl(decls, ns, opts)
}

// Parses and builds declarations.
func Declare(fileName, content string, ns *namespace.Namespace, opts ...factory.Option) ([]factory.IRecordType, error) {
	decls, err := Parse(fileName, content)
	if err != nil {
		return nil, err
	}
	return Build(decls, ns, opts...)
}

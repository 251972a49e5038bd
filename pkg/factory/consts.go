/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package factory

// Maximum identifier length
const MaxIdentLen = 255

// Name of extension method which overrides record String()
const MethodName_String = "String"

type keyKind uint8

const (
	keyKind_null keyKind = iota
	keyKind_Position
	keyKind_Name
)

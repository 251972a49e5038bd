/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package recdecl

import (
	"github.com/alecthomas/participle/v2/lexer"
)

type fileAST struct {
	Decls []*Decl `parser:"@@*"`
}

// Decl is a single record type declaration, e.g. `Point(x, y)` or `(a, b)`.
type Decl struct {
	Pos    lexer.Position
	Name   string   `parser:"@Word?"`
	Fields []string `parser:"'(' ( @Word ( ',' @Word )* )? ')' ';'?"`
}

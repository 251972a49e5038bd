/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package recdecl

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"golang.org/x/exp/slices"

	"github.com/voedger/recfactory/pkg/factory"
	"github.com/voedger/recfactory/pkg/namespace"
)

var declLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \r\n\t]+`},
	{Name: "Punct", Pattern: `[(),;]`},
	// Words are not restricted to identifiers, names are validated by factory
	{Name: "Word", Pattern: `[^ \r\n\t(),;#]+`},
})

var declParser = participle.MustBuild[fileAST](
	participle.Lexer(declLexer),
	participle.Elide("Whitespace", "Comment"),
)

func parseImpl(fileName, content string) ([]*Decl, error) {
	ast, err := declParser.ParseString(fileName, content)
	if err != nil {
		return nil, errSyntax(err)
	}
	return ast.Decls, nil
}

func buildImpl(decls []*Decl, ns *namespace.Namespace, opts []factory.Option) ([]factory.IRecordType, error) {
	types := make([]factory.IRecordType, 0, len(decls))
	for _, d := range decls {
		var (
			t   factory.IRecordType
			err error
		)
		switch {
		case d.Name == "":
			t, err = factory.New(d.Fields, opts...)
		case ns != nil:
			t, err = ns.Define(d.Name, d.Fields, opts...)
		default:
			t, err = factory.New(d.Fields, append(slices.Clone(opts), factory.WithName(d.Name))...)
		}
		if err != nil {
			return nil, errDecl(d.Pos, err)
		}
		types = append(types, t)
	}
	return types, nil
}

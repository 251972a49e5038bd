/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package recdecl

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

var ErrSyntaxError = errors.New("declaration syntax error")

func errSyntax(err error) error {
	return fmt.Errorf("%w: %w", ErrSyntaxError, err)
}

func errDecl(pos lexer.Position, err error) error {
	return fmt.Errorf("%s: %w", pos.String(), err)
}

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/recfactory/pkg/factory"
	"github.com/voedger/recfactory/pkg/recdecl"
)

var errSingleDeclExpected = errors.New("exactly one declaration expected")

func newNewCmd(cli *cliContext) *cobra.Command {
	var (
		gets []string
		digs []string
	)
	cmd := &cobra.Command{
		Use:   "new <type|declaration> [value]...",
		Short: "Create record and print it",
		Example: `  recfactory new "Point(x, y)" 1 2 --get 0 --get y
  recfactory new -f geometry.decl Point 1 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := cli.recordType(args[0])
			if err != nil {
				return err
			}
			r, err := t.New(parseValues(args[1:])...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, r)
			for n, v := range r.Pairs() {
				fmt.Fprintf(out, "  %s = %v\n", n, v)
			}
			for _, g := range gets {
				v, err := r.Get(factory.ParseKey(g))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "get %s: %v\n", g, v)
			}
			for _, d := range digs {
				fmt.Fprintf(out, "dig %s: %v\n", d, r.Dig(parsePath(d)...))
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&gets, "get", nil, "Print value by position or field name")
	cmd.Flags().StringArrayVar(&digs, "dig", nil, "Print value by dot-separated path")
	return cmd
}

// Returns type registered with name or declared inline
func (cli *cliContext) recordType(s string) (factory.IRecordType, error) {
	if !strings.Contains(s, "(") {
		return cli.ns.Get(s)
	}
	types, err := recdecl.Declare("<args>", s, cli.ns)
	if err != nil {
		return nil, err
	}
	if len(types) != 1 {
		return nil, fmt.Errorf("%w: «%s»", errSingleDeclExpected, s)
	}
	return types[0], nil
}

// Converts command line values: "nil" to nil, then integers, floats and booleans,
// otherwise strings.
func parseValues(args []string) []any {
	values := make([]any, 0, len(args))
	for _, a := range args {
		values = append(values, parseValue(a))
	}
	if logger.IsTrace() {
		logger.Trace(fmt.Sprintf("values parsed: %#v", values))
	}
	return values
}

func parseValue(s string) any {
	switch s {
	case "nil":
		return nil
	case "true", "false":
		return cast.ToBool(s)
	}
	if i, err := cast.ToIntE(s); err == nil {
		return i
	}
	if f, err := cast.ToFloat64E(s); err == nil {
		return f
	}
	return s
}

func parsePath(s string) []factory.Key {
	parts := strings.Split(s, ".")
	path := make([]factory.Key, 0, len(parts))
	for _, p := range parts {
		path = append(path, factory.ParseKey(p))
	}
	return path
}

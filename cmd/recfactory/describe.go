/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voedger/recfactory/pkg/factory"
	"github.com/voedger/recfactory/pkg/recdecl"
)

func newDescribeCmd(cli *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "describe [declaration]...",
		Short: "Print record types from declarations and declaration files",
		Example: `  recfactory describe "Point(x, y)" "(a, b)"
  recfactory describe -f geometry.decl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			types := []factory.IRecordType{}
			for _, n := range cli.ns.Names() {
				types = append(types, cli.ns.MustLookup(n))
			}
			inline, err := recdecl.Declare("<args>", strings.Join(args, "\n"), cli.ns)
			if err != nil {
				return err
			}
			types = append(types, inline...)

			for _, t := range types {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}
}

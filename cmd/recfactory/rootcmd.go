/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/recfactory/pkg/namespace"
	"github.com/voedger/recfactory/pkg/recdecl"
)

/*

Persistent flags:

  -v, --verbose   Print verbose output (detailed level)
      --trace     Print trace output   (most detailed level)
  -f, --file      Declarations file, may be repeated

*/

// Shared state of single command line run
type cliContext struct {
	files []string
	ns    *namespace.Namespace
}

func newRootCmd(args []string, version string) *cobra.Command {
	cli := &cliContext{ns: namespace.New()}

	rootCmd := &cobra.Command{
		Use:   "recfactory",
		Short: "Builds record types from declarations and inspects records",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if ok, _ := cmd.Flags().GetBool("trace"); ok {
				logger.SetLogLevel(logger.LogLevelTrace)
				logger.Verbose("Using logger.LogLevelTrace...")
			} else if ok, _ := cmd.Flags().GetBool("verbose"); ok {
				logger.SetLogLevel(logger.LogLevelVerbose)
				logger.Verbose("Using logger.LogLevelVerbose...")
			}
			return cli.loadFiles()
		},
	}

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the current version",
		Aliases: []string{"ver"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cmd.Root().Name(), version)
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool("trace", false, "Enable extremely verbose output")
	rootCmd.PersistentFlags().StringArrayVarP(&cli.files, "file", "f", nil, "Declarations file")

	rootCmd.AddCommand(newDescribeCmd(cli), newNewCmd(cli), versionCmd)

	rootCmd.SetArgs(args[1:])
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	return rootCmd
}

// Declares types from all files into namespace
func (cli *cliContext) loadFiles() error {
	for _, f := range cli.files {
		content, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		types, err := recdecl.Declare(f, string(content), cli.ns)
		if err != nil {
			return err
		}
		logger.Verbose(fmt.Sprintf("%d record types declared in «%s»", len(types), f))
	}
	return nil
}

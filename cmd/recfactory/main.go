/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	_ "embed"
	"os"

	"github.com/untillpro/goutils/logger"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	return newRootCmd(args, ver).Execute()
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/matrixwire/cmd/matrixwire/commands"
	"github.com/bureau-foundation/matrixwire/lib/version"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		// Commands that report their own outcome, like check, return
		// an error carrying the exit code.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 1 && (args[0] == "--version" || args[0] == "-V") {
		fmt.Println("matrixwire " + version.Info())
		return nil
	}
	return commands.Root().Execute(args)
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/bureau-foundation/matrixwire/cmd/matrixwire/cli"
	"github.com/bureau-foundation/matrixwire/lib/version"
)

// Standard streams, replaced by tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// Root returns the matrixwire command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name:    "matrixwire",
		Summary: "Inspect and convert Matrix push rules and key records",
		Description: `Tools for the Matrix client-server wire records handled by matrixwire:
push rulesets and their rules, actions, and conditions, pushers and
notifications, and end-to-end key upload, query, and claim bodies.

Rulesets are read as JSON with comments and trailing commas allowed,
either bare or wrapped in the {"global": ...} envelope returned by
GET /pushrules/. Push rule records also have a deterministic CBOR form.

Settings come from the YAML file named by --config or MATRIXWIRE_CONFIG;
built-in defaults apply when neither is given.`,
		Subcommands: []*cli.Command{
			checkCommand(),
			convertCommand(),
			digestCommand(),
			schemaCommand(),
			keyIDCommand(),
			versionCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Check a ruleset file and report lint findings",
				Command:     "matrixwire check rules.jsonc",
			},
			{
				Description: "Convert a ruleset to CBOR diagnostic notation",
				Command:     "matrixwire convert --to diagnostic rules.json",
			},
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			fmt.Fprintln(stdout, "matrixwire "+version.Full())
			return nil
		},
	}
}

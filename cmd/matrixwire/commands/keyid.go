// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/matrixwire/cmd/matrixwire/cli"
	"github.com/bureau-foundation/matrixwire/lib/ref"
)

func keyIDCommand() *cli.Command {
	return &cli.Command{
		Name:    "keyid",
		Summary: "Parse and build key IDs",
		Description: `Key IDs name a device key as "algorithm:device", for example
"ed25519:JLAFKJWSCS". The algorithm is one of ed25519, curve25519, or
signed_curve25519, and the device part may not contain a colon.`,
		Subcommands: []*cli.Command{
			keyIDParseCommand(),
			keyIDMakeCommand(),
			keyIDAlgorithmsCommand(),
		},
	}
}

func keyIDParseCommand() *cli.Command {
	return &cli.Command{
		Name:    "parse",
		Summary: "Split key IDs into algorithm and device",
		Usage:   "matrixwire keyid parse <key-id>...",
		Examples: []cli.Example{
			{Command: "matrixwire keyid parse ed25519:JLAFKJWSCS signed_curve25519:AAAAHQ"},
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("expected at least one key ID")
			}
			if !writeKeyIDs(stdout, args) {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

// writeKeyIDs writes a table of the parsed key IDs. Invalid IDs get an
// error row; the result reports whether all were valid.
func writeKeyIDs(w io.Writer, raw []string) bool {
	valid := true
	table := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	fmt.Fprintln(table, "KEY ID\tALGORITHM\tDEVICE")
	for _, text := range raw {
		keyID, err := ref.ParseKeyID(text)
		if err != nil {
			valid = false
			fmt.Fprintf(table, "%s\terror: %v\t\n", text, err)
			continue
		}
		fmt.Fprintf(table, "%s\t%s\t%s\n", keyID, keyID.Algorithm(), keyID.DeviceID())
	}
	table.Flush()
	return valid
}

func keyIDMakeCommand() *cli.Command {
	var algorithm string

	return &cli.Command{
		Name:    "make",
		Summary: "Build a key ID from an algorithm and a device ID",
		Usage:   "matrixwire keyid make [--algorithm ALG] <device-id>",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("make", pflag.ContinueOnError)
			flagSet.StringVarP(&algorithm, "algorithm", "a", "ed25519", "key algorithm")
			return flagSet
		},
		Examples: []cli.Example{
			{Command: "matrixwire keyid make --algorithm curve25519 JLAFKJWSCS"},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected one device ID, got %d", len(args))
			}
			keyID, err := makeKeyID(algorithm, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, keyID)
			return nil
		},
	}
}

func makeKeyID(algorithmName, deviceName string) (ref.KeyID, error) {
	algorithm, err := ref.ParseKeyAlgorithm(algorithmName)
	if err != nil {
		return ref.KeyID{}, err
	}
	device, err := ref.ParseDeviceID(deviceName)
	if err != nil {
		return ref.KeyID{}, err
	}
	return ref.NewKeyID(algorithm, device)
}

func keyIDAlgorithmsCommand() *cli.Command {
	return &cli.Command{
		Name:    "algorithms",
		Summary: "List the key algorithms",
		Run: func(args []string) error {
			for _, algorithm := range ref.KeyAlgorithms() {
				fmt.Fprintln(stdout, algorithm)
			}
			return nil
		},
	}
}

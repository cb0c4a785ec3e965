// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/matrixwire/cmd/matrixwire/cli"
)

func convertCommand() *cli.Command {
	var (
		configPath string
		kindName   string
		from       string
		to         string
		compact    bool
		hexInput   bool
	)

	return &cli.Command{
		Name:    "convert",
		Summary: "Convert a record between JSON, CBOR, and diagnostic notation",
		Description: `Decode one record and re-encode it. Decoding validates the record, and
encoding is canonical: a converted ruleset always lists all five
categories in wire order, and CBOR output uses Core Deterministic
Encoding, so equal records convert to identical bytes.

The output format defaults to the config's output.format, and JSON
indentation to output.indent. Only push rule records (ruleset, rule,
action, condition) have a CBOR form.

Input is read from the file argument or stdin.` + recordKindHelp(),
		Usage: "matrixwire convert [--kind KIND] [--from json|cbor] [--to json|cbor|diagnostic] [file]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("convert", pflag.ContinueOnError)
			addConfigFlag(flagSet, &configPath)
			flagSet.StringVar(&kindName, "kind", "ruleset", "record kind to decode")
			flagSet.StringVar(&from, "from", inputJSON, "input format: json or cbor")
			flagSet.StringVarP(&to, "to", "t", "", "output format: json, cbor, or diagnostic (default from config)")
			flagSet.BoolVarP(&compact, "compact", "c", false, "compact JSON output")
			flagSet.BoolVarP(&hexInput, "hex", "x", false, "treat CBOR input as hex")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Normalize a commented ruleset to plain JSON",
				Command:     "matrixwire convert rules.jsonc",
			},
			{
				Description: "Encode a ruleset as CBOR",
				Command:     "matrixwire convert --to cbor rules.json > rules.cbor",
			},
			{
				Description: "Inspect hex CBOR of an action",
				Command:     "echo 'a169736574...' | matrixwire convert --kind action --from cbor --hex --to diagnostic",
			},
		},
		Run: func(args []string) error {
			cfg, logger, err := setup(configPath, "convert")
			if err != nil {
				return err
			}
			kind, err := lookupRecordKind(kindName)
			if err != nil {
				return err
			}
			data, err := readInput(args, hexInput)
			if err != nil {
				return err
			}

			format := cfg.Output.Format
			if to != "" {
				format = to
			}
			record, err := decodeRecord(kind, data, from)
			if err != nil {
				return err
			}
			logger.Debug("converting record", "kind", kind.name, "from", from, "to", format)
			return encodeRecord(stdout, kind, record, format, cfg.Output.Indent && !compact)
		},
	}
}

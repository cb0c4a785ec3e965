// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/matrixwire/cmd/matrixwire/cli"
	"github.com/bureau-foundation/matrixwire/lib/push"
)

func digestCommand() *cli.Command {
	var (
		configPath string
		from       string
	)

	return &cli.Command{
		Name:    "digest",
		Summary: "Print the content digest of rulesets",
		Description: `Print the BLAKE3 digest of each ruleset's canonical CBOR encoding,
followed by the file name, in the style of sha256sum. The digest does
not depend on JSON formatting, field order, comments, or the envelope,
only on the decoded ruleset, so it identifies a user's push rules for
caching and change detection.

With no file arguments the ruleset is read from stdin.`,
		Usage: "matrixwire digest [--from json|cbor] [file...]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("digest", pflag.ContinueOnError)
			addConfigFlag(flagSet, &configPath)
			flagSet.StringVar(&from, "from", inputJSON, "input format: json or cbor")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Compare two rulesets",
				Command:     "matrixwire digest before.json after.json",
			},
		},
		Run: func(args []string) error {
			cfg, logger, err := setup(configPath, "digest")
			if err != nil {
				return err
			}
			kind, err := lookupRecordKind("ruleset")
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{stdinName}
			}

			for _, name := range args {
				path := name
				if name != stdinName {
					if path, err = cfg.RulesetPath(name); err != nil {
						return err
					}
				}
				data, err := readNamed(path)
				if err != nil {
					return err
				}
				record, err := decodeRecord(kind, data, from)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				ruleset := record.(*push.Ruleset)
				digest, err := push.RulesetDigest(*ruleset)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				logger.Debug("hashed ruleset", "path", path, "rules", ruleset.Len())
				fmt.Fprintf(stdout, "%s  %s\n", digest, name)
			}
			return nil
		},
	}
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/matrixwire/cmd/matrixwire/cli"
	"github.com/bureau-foundation/matrixwire/lib/config"
	"github.com/bureau-foundation/matrixwire/lib/push"
)

type checkOptions struct {
	kind   recordKind
	strict bool
	from   string
}

func checkCommand() *cli.Command {
	var (
		configPath string
		kindName   string
		from       string
		strict     bool
	)

	return &cli.Command{
		Name:    "check",
		Summary: "Decode records and report errors and lint findings",
		Description: `Decode each file as a record of the given kind and report whether it
is valid. Rulesets are also linted for structural problems the decoder
accepts but a homeserver rejects or ignores: content rules without a
pattern, conditions outside override and underride rules, room and
sender rule IDs that are not room or user IDs, duplicate rule IDs, and
mistyped highlight or sound tweak values.

Lint findings are warnings unless --strict is given or the config sets
check.strict (the production default). Relative file names that do not
exist in the working directory are looked up in paths.rules.

Exits 1 if any file fails.` + recordKindHelp(),
		Usage: "matrixwire check [--kind KIND] [--strict] [file...]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("check", pflag.ContinueOnError)
			addConfigFlag(flagSet, &configPath)
			flagSet.StringVar(&kindName, "kind", "ruleset", "record kind to decode")
			flagSet.StringVar(&from, "from", inputJSON, "input format: json or cbor")
			flagSet.BoolVar(&strict, "strict", false, "treat lint findings as failures")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Check a ruleset in paths.rules",
				Command:     "matrixwire check default.jsonc",
			},
			{
				Description: "Validate a pusher registration body",
				Command:     "matrixwire check --kind pusher pusher.json",
			},
		},
		Run: func(args []string) error {
			cfg, logger, err := setup(configPath, "check")
			if err != nil {
				return err
			}
			kind, err := lookupRecordKind(kindName)
			if err != nil {
				return err
			}
			options := checkOptions{kind: kind, strict: strict || cfg.Check.Strict, from: from}

			if len(args) == 0 {
				args = []string{stdinName}
			}
			failed := 0
			for _, name := range args {
				if !checkNamed(stdout, logger, cfg, name, options) {
					failed++
				}
			}
			if failed > 0 {
				logger.Debug("check failed", "failed", failed, "files", len(args))
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

// checkNamed resolves and reads one file argument, then checks it.
func checkNamed(w io.Writer, logger *slog.Logger, cfg *config.Config, name string, options checkOptions) bool {
	path := name
	if name != stdinName {
		resolved, err := cfg.RulesetPath(name)
		if err != nil {
			fmt.Fprintf(w, "%s: error: %v\n", name, err)
			return false
		}
		path = resolved
	}
	data, err := readNamed(path)
	if err != nil {
		fmt.Fprintf(w, "%s: error: %v\n", name, err)
		return false
	}
	logger.Debug("checking record", "path", path, "kind", options.kind.name, "bytes", len(data))
	return checkRecord(w, name, data, options)
}

// checkRecord decodes one record and writes its report lines to w.
// It reports whether the record passed.
func checkRecord(w io.Writer, name string, data []byte, options checkOptions) bool {
	record, err := decodeRecord(options.kind, data, options.from)
	if err != nil {
		fmt.Fprintf(w, "%s: error: %v\n", name, err)
		return false
	}

	ruleset, isRuleset := record.(*push.Ruleset)
	if !isRuleset {
		fmt.Fprintf(w, "%s: ok\n", name)
		return true
	}

	findings := push.Lint(*ruleset)
	severity := "warning"
	if options.strict {
		severity = "error"
	}
	for _, finding := range findings {
		fmt.Fprintf(w, "%s: %s: %s\n", name, severity, finding)
	}
	if len(findings) > 0 && options.strict {
		return false
	}
	fmt.Fprintf(w, "%s: ok (%d rules, %d findings)\n", name, ruleset.Len(), len(findings))
	return true
}

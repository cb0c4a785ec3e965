// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/matrixwire/cmd/matrixwire/cli"
	"github.com/bureau-foundation/matrixwire/lib/wireschema"
)

func schemaCommand() *cli.Command {
	var (
		configPath string
		all        bool
		outputDir  string
	)

	return &cli.Command{
		Name:    "schema",
		Summary: "Print JSON Schema documents for wire records",
		Description: `Print the JSON Schema (draft 2020-12) of a wire record, generated from
the Go types. The schemas describe the hybrid encodings exactly: an
action is a string or a set_tweak object, a condition is one of four
kind-tagged objects, and key IDs are "algorithm:device" strings.

With no arguments, list the available schema names. With --all, write
every schema to <name>.schema.json in paths.schemas (or --output).`,
		Usage: "matrixwire schema [name | --all [--output DIR]]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("schema", pflag.ContinueOnError)
			addConfigFlag(flagSet, &configPath)
			flagSet.BoolVar(&all, "all", false, "write every schema to the schema directory")
			flagSet.StringVarP(&outputDir, "output", "o", "", "schema directory for --all (default paths.schemas)")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Print the ruleset schema",
				Command:     "matrixwire schema ruleset",
			},
			{
				Description: "Write all schemas for an editor",
				Command:     "matrixwire schema --all --output .vscode/schemas",
			},
		},
		Run: func(args []string) error {
			if all {
				if len(args) > 0 {
					return fmt.Errorf("--all takes no schema names")
				}
				return writeAllSchemas(configPath, outputDir)
			}

			switch len(args) {
			case 0:
				for _, name := range wireschema.Names() {
					fmt.Fprintln(stdout, name)
				}
				return nil
			case 1:
				document, err := wireschema.Generate(args[0])
				if err != nil {
					return err
				}
				_, err = stdout.Write(append(document, '\n'))
				return err
			}
			return fmt.Errorf("expected one schema name, got %d", len(args))
		},
	}
}

func writeAllSchemas(configPath, outputDir string) error {
	cfg, logger, err := setup(configPath, "schema")
	if err != nil {
		return err
	}
	if outputDir == "" {
		if err := cfg.EnsurePaths(); err != nil {
			return err
		}
		outputDir = cfg.Paths.Schemas
	} else if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", outputDir, err)
	}

	for _, name := range wireschema.Names() {
		document, err := wireschema.Generate(name)
		if err != nil {
			return err
		}
		path := filepath.Join(outputDir, name+".schema.json")
		if err := os.WriteFile(path, append(document, '\n'), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		logger.Info("wrote schema", "name", name, "path", path)
	}
	return nil
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/matrixwire/cmd/matrixwire/cli"
	"github.com/bureau-foundation/matrixwire/lib/config"
)

func addConfigFlag(flagSet *pflag.FlagSet, path *string) {
	flagSet.StringVar(path, "config", "", "config file (default $"+config.EnvVar+", then built-in defaults)")
}

// loadConfig loads the file named by --config, then the one named by
// MATRIXWIRE_CONFIG, and otherwise uses the defaults.
func loadConfig(path string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	switch {
	case path != "":
		cfg, err = config.LoadFile(path)
	case os.Getenv(config.EnvVar) != "":
		cfg, err = config.Load()
	default:
		cfg = config.Default()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup loads the configuration and builds the command logger from its
// log section.
func setup(configPath, command string) (*config.Config, *slog.Logger, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := cli.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.With("command", command, "environment", string(cfg.Environment)), nil
}

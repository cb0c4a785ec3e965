// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the matrixwire
// command.
//
// Configuration is loaded from a single file specified by either the
// MATRIXWIRE_CONFIG environment variable (via [Load]) or a --config
// flag (via [LoadFile]). There is no ~/.config discovery and no
// automatic file search; when neither is given the command runs on
// [Default].
//
// The configuration file supports environment-specific sections
// (development, staging, production) that override base values when
// [Config].Environment matches. Production defaults are stricter:
// JSON output is compact, log lines are JSON, and ruleset lint
// findings fail the check command.
//
// Variable expansion is performed on path fields after loading:
// ${HOME}, ${MATRIXWIRE_ROOT}, and ${VAR:-default} patterns are
// expanded. No other environment variables override config values.
//
// This package depends on no other matrixwire packages.
package config

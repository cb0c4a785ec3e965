// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the matrixwire command tree. [Root]
// returns the top-level command; main executes it with os.Args.
//
// Commands read input from a trailing file argument or stdin, write
// results to stdout, and log diagnostics to stderr through the logger
// configured by the config file's log section.
package commands

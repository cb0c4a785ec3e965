// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework for the matrixwire binary: a tree
// of [Command] values dispatched by name, pflag-based flag parsing with
// "did you mean" suggestions for mistyped commands and flags, and
// structured help output.
//
// A command that has already reported its own outcome returns an
// [ExitError] so that main exits with the given code without printing
// an extra error line. [NewLogger] builds the slog logger that commands
// use for diagnostics on stderr.
package cli

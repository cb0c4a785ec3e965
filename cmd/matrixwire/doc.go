// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Matrixwire inspects, validates, and converts Matrix client-server
// wire records: push rulesets, pushers and notifications, and
// end-to-end key bodies.
//
// Usage:
//
//	matrixwire <command> [flags]
//
// Run "matrixwire --help" for the command list.
package main

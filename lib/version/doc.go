// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports build version information for the matrixwire
// command.
//
// Four package-level variables can be injected at build time:
//
//	go build -ldflags "-X github.com/bureau-foundation/matrixwire/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// When they are not injected, the commit, dirty flag, and build time
// fall back to the VCS stamp that the go command embeds in binaries
// built inside a checkout, and finally to "unknown".
//
//   - [Info] -- "0.1.0-dev (abc1234, 2026-02-10T...)" for --version
//   - [Full] -- Info plus Go version and GOOS/GOARCH
//   - [Short] -- just the version number
//   - [Commit] -- just the git SHA
package version

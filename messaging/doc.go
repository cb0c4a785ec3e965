// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package messaging defines the Matrix client-server API records that
// surround push rules and device keys: key upload, query, and claim
// bodies, pushers, the notifications listing, push rule responses, and
// login flow discovery.
//
// The records are plain structs with JSON tags. Their interesting
// fields use the codecs from [lib/push] (actions, rules, rulesets) and
// [lib/ref] (user IDs, device IDs, key IDs, key algorithms), so a
// malformed rule or key ID inside a response fails to decode with the
// same sentinel error it would produce on its own. [OneTimeKey] is the
// one hybrid shape defined here: a bare string for unsigned keys and an
// object for signed ones.
//
// [Validate] checks the constraints the server enforces on request
// bodies (pusher key and app ID lengths, the http pusher URL) before
// anything is sent.
//
// Error response bodies decode to [*MatrixError] through
// [ParseErrorResponse]; [IsMatrixError] tests for a specific error code.
package messaging

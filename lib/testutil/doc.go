// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers.
//
// [RequireJSONEqual] compares two JSON documents semantically (object
// key order and whitespace are ignored, array order is not) and fails
// the test with a readable diff. Use it when a test asserts the exact
// wire form of an encoded value; byte comparison would depend on the
// field order of the encoder.
//
// All helpers call t.Fatalf on failure rather than returning errors.
//
// This package has no Bureau-internal dependencies.
package testutil

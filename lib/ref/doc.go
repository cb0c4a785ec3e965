// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ref provides strongly typed, immutable identity references for
// the Matrix client-server API records that carry push rules and
// end-to-end encryption keys.
//
// Every identifier is a validated value type with an unexported
// representation: user IDs (@localpart:server), room IDs
// (!opaque:server), server names, device IDs, key algorithms, and key
// IDs. Constructors (Parse*) validate their input and return errors;
// once constructed, a ref never changes.
//
// [KeyID] is the composite "<algorithm>:<device>" identifier used as the
// object key of one-time key tables and signature maps:
//
//	id, err := ref.ParseKeyID("signed_curve25519:AAAAHQ")
//	id.Algorithm() // ref.KeyAlgorithmSignedCurve25519
//	id.DeviceID()  // "AAAAHQ"
//
// The first colon is the only separator. A key ID with a second colon is
// rejected ([ErrTooManySeparators]) rather than read as a device ID that
// contains a colon, and [NewKeyID] refuses to build such a key, so every
// constructible KeyID survives a String/ParseKeyID round trip.
//
// All types implement encoding.TextMarshaler and
// encoding.TextUnmarshaler, which makes them usable both as JSON values
// and as JSON object keys (map[ref.KeyID]string encodes to
// {"ed25519:JLAFKJWSCS": "..."}). They are comparable and therefore
// valid Go map keys: equality is structural over the parsed parts.
//
// Parse errors wrap package sentinels ([ErrUnknownAlgorithm],
// [ErrMissingSeparator], [ErrTooManySeparators]) so callers can branch
// with errors.Is while the message carries the offending input.
//
// This package depends on no other Bureau packages.
package ref

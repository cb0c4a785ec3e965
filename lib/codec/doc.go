// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds the shared CBOR configuration for the internal
// encoding of push rules.
//
// JSON is the external format: everything exchanged with a Matrix
// homeserver or written by a user is JSON. CBOR is the internal format
// for caching and hashing decoded rulesets. The encoder uses Core
// Deterministic Encoding (RFC 8949 §4.2): sorted map keys, smallest
// integer encoding, no indefinite-length items. The same logical value
// always produces identical bytes, which is what makes ruleset digests
// stable.
//
//	data, err := codec.Marshal(ruleset)
//	err = codec.Unmarshal(data, &ruleset)
//
// Types carry `json` struct tags only. fxamacker/cbor reads them when
// no `cbor` tag is present, so one tag controls field naming and
// omission in both formats. Types whose wire shape is not a plain
// struct (push actions and conditions) implement MarshalCBOR and
// UnmarshalCBOR on top of Marshal and Unmarshal.
package codec

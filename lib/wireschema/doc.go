// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package wireschema generates JSON Schema documents for the push rule
// and key identifier wire formats.
//
// Most of each schema is reflected from the Go types by
// invopop/jsonschema. The types whose JSON shape is not a plain struct
// mapping (an [push.Action] is a string or an object, a
// [push.Condition] is an object discriminated by "kind", key IDs and
// key algorithms are constrained strings) get hand-written schemas
// through the reflector's Mapper hook, so the generated documents
// describe what the decoders actually accept.
package wireschema

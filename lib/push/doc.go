// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package push defines the wire representation of Matrix push rules:
// [Action], [Condition], [Rule], and the five-category [Ruleset].
//
// Two of these shapes cannot be decoded by plain struct mapping.
// An action is either a bare string ("notify", "dont_notify",
// "coalesce") or an object carrying "set_tweak" and an optional
// "value", so decoding inspects the shape of the input first
// ([ActionFromValue]). A condition is an object whose "kind" field
// selects which other fields are required ([ConditionFromFields]).
// Both decoders work on generic decoded values, which lets the JSON
// codec and the CBOR codec ([lib/codec]) share them.
//
// Decode failures wrap the sentinels in errors.go, so callers can use
// errors.Is while the message names the offending token or field.
// Errors inside a ruleset carry their position:
//
//	override[2]: rule ".m.rule.tombstone": actions[0]: push: invalid simple action: "notfy"
//
// Encoding mirrors decoding and never fails for values built with the
// constructors ([NewSetTweak], [EventMatch], ...); a hand-assembled
// value with an unknown kind or fields that do not belong to its kind
// fails to encode instead of producing data that would not decode.
//
// The package represents rules only. Matching conditions against
// events is the job of the homeserver and is not implemented here.
//
// [RulesetDigest] hashes the deterministic CBOR encoding of a ruleset,
// [ParseRulesetFile] reads rulesets from JSONC files, and [Lint]
// reports rules that decode cleanly but are structurally wrong.
package push

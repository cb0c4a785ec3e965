// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package push

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Decode errors. Every decode failure wraps exactly one of these, with
// the offending token or field name in the message.
var (
	// ErrInvalidSimpleAction is returned for a bare-string action that
	// is not "notify", "dont_notify", or "coalesce".
	ErrInvalidSimpleAction = errors.New("push: invalid simple action")

	// ErrInvalidTweakKind is returned when the set_tweak field of an
	// action object is not a string.
	ErrInvalidTweakKind = errors.New("push: invalid set_tweak value")

	// ErrMissingTweakDiscriminator is returned for an action object with
	// no set_tweak field.
	ErrMissingTweakDiscriminator = errors.New("push: action object has no set_tweak field")

	// ErrInvalidActionShape is returned when an action is neither a
	// string nor an object.
	ErrInvalidActionShape = errors.New("push: action must be a string or an object")

	// ErrUnknownConditionKind is returned when a condition's kind field
	// is absent or not one of the four defined kinds.
	ErrUnknownConditionKind = errors.New("push: unknown condition kind")

	// ErrMissingField is returned when a condition or rule lacks a field
	// its kind requires.
	ErrMissingField = errors.New("push: missing required field")

	// ErrInvalidField is returned when a required field is present but
	// has the wrong type.
	ErrInvalidField = errors.New("push: invalid field type")

	// ErrUnknownRuleKind is returned for a rule kind other than the five
	// ruleset categories.
	ErrUnknownRuleKind = errors.New("push: unknown rule kind")
)

// describeShape names the wire type of a decoded value for error
// messages. Values come from either encoding/json or the CBOR codec,
// so both numeric families are covered.
func describeShape(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case json.Number, float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case []byte:
		return "byte string"
	}
	return fmt.Sprintf("%T", value)
}

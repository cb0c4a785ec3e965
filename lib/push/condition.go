// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package push

import (
	"encoding/json"
	"fmt"

	"github.com/bureau-foundation/matrixwire/lib/codec"
)

// ConditionKind selects the variant of a Condition. It is carried in
// the condition object's "kind" field.
type ConditionKind string

const (
	// EventMatchCondition is a glob match of Pattern against the event
	// field named by Key (a dot-separated path such as "content.body").
	EventMatchCondition ConditionKind = "event_match"

	// ContainsDisplayNameCondition matches messages whose content.body
	// contains the user's display name in the room. No fields.
	ContainsDisplayNameCondition ConditionKind = "contains_display_name"

	// RoomMemberCountCondition compares the room's member count against
	// Is: a decimal integer optionally prefixed by ==, <, >, >=, or <=.
	RoomMemberCountCondition ConditionKind = "room_member_count"

	// SenderNotificationPermissionCondition requires the sender to have
	// the power level named by Key (such as "room") in the
	// notifications section of the room's power levels.
	SenderNotificationPermissionCondition ConditionKind = "sender_notification_permission"
)

// Condition is a push rule condition. Which fields are used depends on
// Kind:
//
//	event_match                     Key, Pattern
//	contains_display_name           (none)
//	room_member_count               Is
//	sender_notification_permission  Key
//
// This package only represents conditions; it does not evaluate them.
type Condition struct {
	Kind    ConditionKind
	Key     string
	Pattern string
	Is      string
}

// EventMatch returns an event_match condition.
func EventMatch(key, pattern string) Condition {
	return Condition{Kind: EventMatchCondition, Key: key, Pattern: pattern}
}

// ContainsDisplayName returns a contains_display_name condition.
func ContainsDisplayName() Condition {
	return Condition{Kind: ContainsDisplayNameCondition}
}

// RoomMemberCount returns a room_member_count condition. is is stored
// verbatim.
func RoomMemberCount(is string) Condition {
	return Condition{Kind: RoomMemberCountCondition, Is: is}
}

// SenderNotificationPermission returns a sender_notification_permission
// condition.
func SenderNotificationPermission(key string) Condition {
	return Condition{Kind: SenderNotificationPermissionCondition, Key: key}
}

// Wire forms, one per kind. Kind is declared first so the JSON encoding
// starts with the discriminator.
type (
	eventMatchWire struct {
		Kind    ConditionKind `json:"kind"`
		Key     string        `json:"key"`
		Pattern string        `json:"pattern"`
	}
	containsDisplayNameWire struct {
		Kind ConditionKind `json:"kind"`
	}
	roomMemberCountWire struct {
		Kind ConditionKind `json:"kind"`
		Is   string        `json:"is"`
	}
	senderNotificationPermissionWire struct {
		Kind ConditionKind `json:"kind"`
		Key  string        `json:"key"`
	}
)

// wire returns the variant struct for c, rejecting fields that do not
// belong to the kind so that encoding never drops data silently.
func (c Condition) wire() (any, error) {
	switch c.Kind {
	case EventMatchCondition:
		if c.Is != "" {
			return nil, c.strayField("is")
		}
		return eventMatchWire{Kind: c.Kind, Key: c.Key, Pattern: c.Pattern}, nil
	case ContainsDisplayNameCondition:
		switch {
		case c.Key != "":
			return nil, c.strayField("key")
		case c.Pattern != "":
			return nil, c.strayField("pattern")
		case c.Is != "":
			return nil, c.strayField("is")
		}
		return containsDisplayNameWire{Kind: c.Kind}, nil
	case RoomMemberCountCondition:
		switch {
		case c.Key != "":
			return nil, c.strayField("key")
		case c.Pattern != "":
			return nil, c.strayField("pattern")
		}
		return roomMemberCountWire{Kind: c.Kind, Is: c.Is}, nil
	case SenderNotificationPermissionCondition:
		switch {
		case c.Pattern != "":
			return nil, c.strayField("pattern")
		case c.Is != "":
			return nil, c.strayField("is")
		}
		return senderNotificationPermissionWire{Kind: c.Kind, Key: c.Key}, nil
	}
	return nil, fmt.Errorf("push: cannot encode condition: %w: %q", ErrUnknownConditionKind, c.Kind)
}

func (c Condition) strayField(name string) error {
	return fmt.Errorf("push: %s condition cannot carry field %q", c.Kind, name)
}

// MarshalJSON implements json.Marshaler.
func (c Condition) MarshalJSON() ([]byte, error) {
	wire, err := c.wire()
	if err != nil {
		return nil, err
	}
	return json.Marshal(wire)
}

// UnmarshalJSON implements json.Unmarshaler. See ConditionFromFields.
func (c *Condition) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := decodeJSON(data, &fields); err != nil {
		return fmt.Errorf("push: decoding condition: %w", err)
	}
	parsed, err := ConditionFromFields(fields)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalCBOR implements cbor.Marshaler.
func (c Condition) MarshalCBOR() ([]byte, error) {
	wire, err := c.wire()
	if err != nil {
		return nil, err
	}
	return codec.Marshal(wire)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (c *Condition) UnmarshalCBOR(data []byte) error {
	var fields map[string]any
	if err := codec.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("push: decoding condition: %w", err)
	}
	parsed, err := ConditionFromFields(fields)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ConditionFromFields decodes a condition from the fields of a decoded
// object. The kind field is read first and selects the required field
// set; fields outside that set are ignored.
func ConditionFromFields(fields map[string]any) (Condition, error) {
	rawKind, present := fields["kind"]
	if !present || rawKind == nil {
		return Condition{}, fmt.Errorf("%w: missing \"kind\" field", ErrUnknownConditionKind)
	}
	kindName, ok := rawKind.(string)
	if !ok {
		return Condition{}, fmt.Errorf("%w: \"kind\" is a %s, not a string", ErrUnknownConditionKind, describeShape(rawKind))
	}

	condition := Condition{Kind: ConditionKind(kindName)}
	var err error
	switch condition.Kind {
	case EventMatchCondition:
		if condition.Key, err = requiredString(fields, "key"); err != nil {
			return Condition{}, err
		}
		if condition.Pattern, err = requiredString(fields, "pattern"); err != nil {
			return Condition{}, err
		}
	case ContainsDisplayNameCondition:
	case RoomMemberCountCondition:
		if condition.Is, err = requiredString(fields, "is"); err != nil {
			return Condition{}, err
		}
	case SenderNotificationPermissionCondition:
		if condition.Key, err = requiredString(fields, "key"); err != nil {
			return Condition{}, err
		}
	default:
		return Condition{}, fmt.Errorf("%w: %q", ErrUnknownConditionKind, kindName)
	}
	return condition, nil
}

// requiredString returns the string field name. A missing or null
// field is ErrMissingField; a non-string one is ErrInvalidField.
func requiredString(fields map[string]any, name string) (string, error) {
	value, present := fields[name]
	if !present || value == nil {
		return "", fmt.Errorf("%w: %q", ErrMissingField, name)
	}
	text, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q is a %s, not a string", ErrInvalidField, name, describeShape(value))
	}
	return text, nil
}

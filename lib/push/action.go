// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package push

import (
	"encoding/json"
	"fmt"

	"github.com/bureau-foundation/matrixwire/lib/codec"
)

// ActionKind is the kind of a push rule action.
type ActionKind string

const (
	// NotifyAction causes matching events to generate a notification.
	NotifyAction ActionKind = "notify"

	// DontNotifyAction prevents matching events from generating a
	// notification.
	DontNotifyAction ActionKind = "dont_notify"

	// CoalesceAction behaves like notify, but the homeserver may merge
	// several events into a single notification.
	CoalesceAction ActionKind = "coalesce"

	// SetTweakAction sets an entry in the tweaks dictionary sent to the
	// push gateway. It is the only kind encoded as an object.
	SetTweakAction ActionKind = "set_tweak"
)

// Tweak names a set_tweak entry. SoundTweak and HighlightTweak are
// defined by the Matrix specification; any other name, including the
// empty string, is a custom tweak and is carried through verbatim.
type Tweak string

const (
	// SoundTweak selects the sound to play. Its value is a sound name,
	// conventionally "default".
	SoundTweak Tweak = "sound"

	// HighlightTweak marks the event as highlighted. Its value is a
	// boolean; absent means true.
	HighlightTweak Tweak = "highlight"
)

// IsCustom reports whether t is neither sound nor highlight.
func (t Tweak) IsCustom() bool {
	return t != SoundTweak && t != HighlightTweak
}

// Action is a push rule action. On the wire the notify, dont_notify,
// and coalesce kinds are bare strings, while set_tweak is an object:
//
//	"notify"
//	{"set_tweak": "sound", "value": "default"}
//	{"set_tweak": "highlight"}
//
// Tweak and Value are only meaningful for SetTweakAction. Value holds
// any JSON value and is not interpreted; nil means the value field is
// absent, and it is then omitted on encode rather than written as null.
// Decoded numbers are int when they are integers that fit (int64 or
// uint64 beyond that) and float64 otherwise, for both JSON and CBOR.
type Action struct {
	Kind  ActionKind
	Tweak Tweak
	Value any
}

// NewSetTweak returns a set_tweak action. value may be nil.
func NewSetTweak(tweak Tweak, value any) Action {
	return Action{Kind: SetTweakAction, Tweak: tweak, Value: value}
}

// tweakObject is the wire form of a set_tweak action.
type tweakObject struct {
	SetTweak Tweak `json:"set_tweak"`
	Value    any   `json:"value,omitempty"`
}

// wire returns the value a encodes to: a string for the simple kinds,
// a tweakObject for set_tweak.
func (a Action) wire() (any, error) {
	switch a.Kind {
	case NotifyAction, DontNotifyAction, CoalesceAction:
		if a.Tweak != "" || a.Value != nil {
			return nil, fmt.Errorf("push: %s action cannot carry a tweak", a.Kind)
		}
		return string(a.Kind), nil
	case SetTweakAction:
		return tweakObject{SetTweak: a.Tweak, Value: a.Value}, nil
	}
	return nil, fmt.Errorf("push: cannot encode action of unknown kind %q", a.Kind)
}

// MarshalJSON implements json.Marshaler.
func (a Action) MarshalJSON() ([]byte, error) {
	wire, err := a.wire()
	if err != nil {
		return nil, err
	}
	return json.Marshal(wire)
}

// UnmarshalJSON implements json.Unmarshaler. See ParseAction.
func (a *Action) UnmarshalJSON(data []byte) error {
	parsed, err := ParseAction(data)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalCBOR implements cbor.Marshaler with the same string-or-map
// shape as the JSON encoding.
func (a Action) MarshalCBOR() ([]byte, error) {
	wire, err := a.wire()
	if err != nil {
		return nil, err
	}
	return codec.Marshal(wire)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (a *Action) UnmarshalCBOR(data []byte) error {
	var value any
	if err := codec.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("push: decoding action: %w", err)
	}
	parsed, err := ActionFromValue(value)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAction decodes one JSON-encoded action.
func ParseAction(data []byte) (Action, error) {
	var value any
	if err := decodeJSON(data, &value); err != nil {
		return Action{}, fmt.Errorf("push: decoding action: %w", err)
	}
	return ActionFromValue(value)
}

// ActionFromValue decodes an action from a generic decoded value (the
// result of unmarshaling into any). The shape of the value selects the
// branch: a string must be one of the simple kinds, an object must
// carry set_tweak, and anything else is rejected.
func ActionFromValue(value any) (Action, error) {
	switch value := value.(type) {
	case string:
		return parseSimpleAction(value)
	case map[string]any:
		return parseTweakAction(value)
	}
	return Action{}, fmt.Errorf("%w: got %s", ErrInvalidActionShape, describeShape(value))
}

func parseSimpleAction(token string) (Action, error) {
	switch kind := ActionKind(token); kind {
	case NotifyAction, DontNotifyAction, CoalesceAction:
		return Action{Kind: kind}, nil
	}
	return Action{}, fmt.Errorf("%w: %q", ErrInvalidSimpleAction, token)
}

// parseTweakAction scans every field of an action object. Field order
// is not significant and unrecognized fields are ignored.
func parseTweakAction(fields map[string]any) (Action, error) {
	action := Action{Kind: SetTweakAction}
	found := false
	for key, field := range fields {
		switch key {
		case "set_tweak":
			name, ok := field.(string)
			if !ok {
				return Action{}, fmt.Errorf("%w: got %s", ErrInvalidTweakKind, describeShape(field))
			}
			action.Tweak = Tweak(name)
			found = true
		case "value":
			action.Value = normalizeNumbers(field)
		}
	}
	if !found {
		return Action{}, ErrMissingTweakDiscriminator
	}
	return action, nil
}

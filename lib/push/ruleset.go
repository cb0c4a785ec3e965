// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package push

import (
	"encoding/json"
	"fmt"

	"github.com/bureau-foundation/matrixwire/lib/codec"
)

// Ruleset holds all of a user's push rules in one scope, partitioned
// into the five categories. Field order is the documented wire order;
// use RuleKinds for priority order.
//
// Encoding always writes all five categories, in wire order, with an
// empty category written as [] (never omitted, never null). Decoding
// accepts any subset: a missing or null category is empty. Unknown
// top-level fields are ignored.
type Ruleset struct {
	Content   []Rule `json:"content"`
	Override  []Rule `json:"override"`
	Room      []Rule `json:"room"`
	Sender    []Rule `json:"sender"`
	Underride []Rule `json:"underride"`
}

// wireOrder is the category order of the encoded ruleset.
var wireOrder = []RuleKind{ContentKind, OverrideKind, RoomKind, SenderKind, UnderrideKind}

// rulesetWire has the same encoding as Ruleset without its methods.
type rulesetWire Ruleset

// normalized returns a copy of r with every nil category replaced by
// an empty one.
func (r Ruleset) normalized() rulesetWire {
	for _, kind := range wireOrder {
		if rules := r.category(kind); *rules == nil {
			*rules = []Rule{}
		}
	}
	return rulesetWire(r)
}

// category returns a pointer to the slice holding kind's rules.
func (r *Ruleset) category(kind RuleKind) *[]Rule {
	switch kind {
	case ContentKind:
		return &r.Content
	case OverrideKind:
		return &r.Override
	case RoomKind:
		return &r.Room
	case SenderKind:
		return &r.Sender
	case UnderrideKind:
		return &r.Underride
	}
	return nil
}

// Rules returns the rules of one category, or nil for an unknown kind.
func (r Ruleset) Rules(kind RuleKind) []Rule {
	rules := r.category(kind)
	if rules == nil {
		return nil
	}
	return *rules
}

// Rule finds the rule with the given ID in one category.
func (r Ruleset) Rule(kind RuleKind, ruleID string) (Rule, bool) {
	for _, rule := range r.Rules(kind) {
		if rule.RuleID == ruleID {
			return rule, true
		}
	}
	return Rule{}, false
}

// Len returns the total number of rules across all categories.
func (r Ruleset) Len() int {
	return len(r.Content) + len(r.Override) + len(r.Room) + len(r.Sender) + len(r.Underride)
}

// MarshalJSON implements json.Marshaler.
func (r Ruleset) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.normalized())
}

// UnmarshalJSON implements json.Unmarshaler. Rule errors are prefixed
// with their category and index ("override[2]: ...").
func (r *Ruleset) UnmarshalJSON(data []byte) error {
	var categories map[string]json.RawMessage
	if err := json.Unmarshal(data, &categories); err != nil {
		return fmt.Errorf("push: decoding ruleset: %w", err)
	}

	var ruleset Ruleset
	for _, kind := range wireOrder {
		raw, present := categories[string(kind)]
		if !present {
			continue
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("push: decoding ruleset category %s: %w", kind, err)
		}
		if len(items) == 0 {
			continue
		}
		rules := make([]Rule, len(items))
		for i, item := range items {
			if err := rules[i].UnmarshalJSON(item); err != nil {
				return fmt.Errorf("%s[%d]: %w", kind, i, err)
			}
		}
		*ruleset.category(kind) = rules
	}
	*r = ruleset
	return nil
}

// MarshalCBOR implements cbor.Marshaler. Categories are normalized the
// same way as in JSON, so equal rulesets encode to identical bytes
// regardless of nil versus empty categories.
func (r Ruleset) MarshalCBOR() ([]byte, error) {
	return codec.Marshal(r.normalized())
}

// UnmarshalCBOR implements cbor.Unmarshaler. Empty categories decode
// as nil, matching UnmarshalJSON.
func (r *Ruleset) UnmarshalCBOR(data []byte) error {
	var wire rulesetWire
	if err := codec.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("push: decoding ruleset: %w", err)
	}
	ruleset := Ruleset(wire)
	for _, kind := range wireOrder {
		if rules := ruleset.category(kind); len(*rules) == 0 {
			*rules = nil
		}
	}
	*r = ruleset
	return nil
}

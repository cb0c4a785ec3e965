// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package push

import (
	"encoding/json"
	"fmt"
)

// RuleKind is one of the five ruleset categories. A rule's kind is the
// category it is stored in, not a field of the rule.
type RuleKind string

const (
	OverrideKind  RuleKind = "override"
	ContentKind   RuleKind = "content"
	RoomKind      RuleKind = "room"
	SenderKind    RuleKind = "sender"
	UnderrideKind RuleKind = "underride"
)

// RuleKinds returns the five kinds in decreasing priority order, the
// order a homeserver consults them in.
func RuleKinds() []RuleKind {
	return []RuleKind{OverrideKind, ContentKind, RoomKind, SenderKind, UnderrideKind}
}

// ParseRuleKind validates a rule kind token.
func ParseRuleKind(raw string) (RuleKind, error) {
	switch kind := RuleKind(raw); kind {
	case OverrideKind, ContentKind, RoomKind, SenderKind, UnderrideKind:
		return kind, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRuleKind, raw)
}

// UnmarshalText implements encoding.TextUnmarshaler, so rule kinds
// used as JSON object keys (device-scope rule listings) are validated.
func (k *RuleKind) UnmarshalText(data []byte) error {
	parsed, err := ParseRuleKind(string(data))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Rule is a push rule. Actions and Conditions keep their wire order.
//
// Conditions is only used by override and underride rules; nil means
// the field is absent and it is omitted on encode, while an empty
// non-nil slice is encoded as [] (a rule with no conditions always
// matches). Pattern is only used by content rules and follows the same
// presence rule: nil is absent, a pointer to "" is an explicit empty
// pattern. Neither restriction is enforced here.
type Rule struct {
	Actions    []Action    `json:"actions" jsonschema:"required"`
	Default    bool        `json:"default" jsonschema:"required"`
	Enabled    bool        `json:"enabled" jsonschema:"required"`
	RuleID     string      `json:"rule_id" jsonschema:"required"`
	Conditions []Condition `json:"conditions,omitzero"`
	Pattern    *string     `json:"pattern,omitempty"`
}

// ruleJSON has the same encoding as Rule without its methods.
type ruleJSON Rule

// MarshalJSON implements json.Marshaler. A nil Actions slice encodes
// as [] since the field is required.
func (r Rule) MarshalJSON() ([]byte, error) {
	if r.Actions == nil {
		r.Actions = []Action{}
	}
	return json.Marshal(ruleJSON(r))
}

// UnmarshalJSON implements json.Unmarshaler. actions, default,
// enabled, and rule_id are required. Action and condition errors are
// prefixed with their position ("actions[1]: ...").
func (r *Rule) UnmarshalJSON(data []byte) error {
	var wire struct {
		Actions    *[]json.RawMessage `json:"actions"`
		Default    *bool              `json:"default"`
		Enabled    *bool              `json:"enabled"`
		RuleID     *string            `json:"rule_id"`
		Conditions *[]json.RawMessage `json:"conditions"`
		Pattern    *string            `json:"pattern"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("push: decoding rule: %w", err)
	}

	switch {
	case wire.RuleID == nil:
		return fmt.Errorf("%w: %q", ErrMissingField, "rule_id")
	case wire.Actions == nil:
		return fmt.Errorf("rule %q: %w: %q", *wire.RuleID, ErrMissingField, "actions")
	case wire.Default == nil:
		return fmt.Errorf("rule %q: %w: %q", *wire.RuleID, ErrMissingField, "default")
	case wire.Enabled == nil:
		return fmt.Errorf("rule %q: %w: %q", *wire.RuleID, ErrMissingField, "enabled")
	}

	rule := Rule{
		Actions: make([]Action, len(*wire.Actions)),
		Default: *wire.Default,
		Enabled: *wire.Enabled,
		RuleID:  *wire.RuleID,
	}
	for i, raw := range *wire.Actions {
		if err := rule.Actions[i].UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("rule %q: actions[%d]: %w", rule.RuleID, i, err)
		}
	}
	if wire.Conditions != nil {
		rule.Conditions = make([]Condition, len(*wire.Conditions))
		for i, raw := range *wire.Conditions {
			if err := rule.Conditions[i].UnmarshalJSON(raw); err != nil {
				return fmt.Errorf("rule %q: conditions[%d]: %w", rule.RuleID, i, err)
			}
		}
	}
	rule.Pattern = wire.Pattern
	*r = rule
	return nil
}

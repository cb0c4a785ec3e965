// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package push

import (
	"fmt"

	"github.com/bureau-foundation/matrixwire/lib/ref"
)

// Finding is a structural problem in a ruleset that the codec accepts
// but a homeserver would reject or ignore.
type Finding struct {
	Kind    RuleKind
	Index   int
	RuleID  string
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s[%d] (%q): %s", f.Kind, f.Index, f.RuleID, f.Message)
}

// Lint reports structural findings in r, in wire order:
//
//   - a content rule without a pattern, or a pattern outside content rules
//   - conditions on content, room, or sender rules
//   - a room rule whose ID is not a room ID, or a sender rule whose ID
//     is not a user ID
//   - duplicate rule IDs within a category
//   - a highlight tweak whose value is not a boolean, or a sound tweak
//     whose value is not a string
func Lint(r Ruleset) []Finding {
	var findings []Finding
	for _, kind := range wireOrder {
		seen := make(map[string]bool)
		for index, rule := range r.Rules(kind) {
			report := func(format string, args ...any) {
				findings = append(findings, Finding{
					Kind:    kind,
					Index:   index,
					RuleID:  rule.RuleID,
					Message: fmt.Sprintf(format, args...),
				})
			}

			if seen[rule.RuleID] {
				report("duplicate rule ID")
			}
			seen[rule.RuleID] = true

			switch {
			case kind == ContentKind && (rule.Pattern == nil || *rule.Pattern == ""):
				report("content rule has no pattern")
			case kind != ContentKind && rule.Pattern != nil:
				report("pattern is only used by content rules")
			}

			if rule.Conditions != nil && kind != OverrideKind && kind != UnderrideKind {
				report("conditions are only used by override and underride rules")
			}

			switch kind {
			case RoomKind:
				if _, err := ref.ParseRoomID(rule.RuleID); err != nil {
					report("room rule ID is not a room ID: %v", err)
				}
			case SenderKind:
				if _, err := ref.ParseUserID(rule.RuleID); err != nil {
					report("sender rule ID is not a user ID: %v", err)
				}
			}

			for actionIndex, action := range rule.Actions {
				if action.Kind != SetTweakAction || action.Value == nil {
					continue
				}
				switch action.Tweak {
				case HighlightTweak:
					if _, ok := action.Value.(bool); !ok {
						report("actions[%d]: highlight value is a %s, not a boolean", actionIndex, describeShape(action.Value))
					}
				case SoundTweak:
					if _, ok := action.Value.(string); !ok {
						report("actions[%d]: sound value is a %s, not a string", actionIndex, describeShape(action.Value))
					}
				}
			}
		}
	}
	return findings
}

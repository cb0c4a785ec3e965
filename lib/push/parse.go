// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package push

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
)

// ParseRulesetFile parses a ruleset stored in a file. The input is the
// JSON of a ruleset extended with // line comments, /* block comments
// */, and trailing commas. Either a bare ruleset or the {"global": ...}
// envelope returned by GET /pushrules/ is accepted.
func ParseRulesetFile(data []byte) (Ruleset, error) {
	stripped := jsonc.ToJSON(data)

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(stripped, &envelope); err != nil {
		return Ruleset{}, fmt.Errorf("parsing ruleset: %w", err)
	}

	body := stripped
	if global, ok := envelope["global"]; ok && !hasCategory(envelope) {
		body = global
	}

	var ruleset Ruleset
	if err := json.Unmarshal(body, &ruleset); err != nil {
		return Ruleset{}, fmt.Errorf("parsing ruleset: %w", err)
	}
	return ruleset, nil
}

// hasCategory reports whether a decoded object has any ruleset
// category field at its top level.
func hasCategory(object map[string]json.RawMessage) bool {
	for _, kind := range wireOrder {
		if _, ok := object[string(kind)]; ok {
			return true
		}
	}
	return false
}

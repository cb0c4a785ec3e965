// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package messaging

// LoginType identifies an authentication mechanism.
type LoginType string

const (
	LoginTypePassword LoginType = "m.login.password"
	LoginTypeToken    LoginType = "m.login.token"
)

// LoginFlow is one login mechanism the homeserver supports.
type LoginFlow struct {
	Type LoginType `json:"type" validate:"required"`
}

// LoginFlowsResponse is the result of GET /login.
type LoginFlowsResponse struct {
	Flows []LoginFlow `json:"flows" validate:"dive"`
}

// Supports reports whether the server offers the given login type.
func (r LoginFlowsResponse) Supports(loginType LoginType) bool {
	for _, flow := range r.Flows {
		if flow.Type == loginType {
			return true
		}
	}
	return false
}

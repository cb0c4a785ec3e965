// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package messaging

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/bureau-foundation/matrixwire/lib/ref"
)

func validHTTPPusher() Pusher {
	pusher := NewPusher(PusherKindHTTP, "Xp/MzCt8", "face.mcapp.appy.prod")
	pusher.Data.URL = "https://push.example.com/_matrix/push/v1/notify"
	return pusher
}

func TestValidate(t *testing.T) {
	t.Parallel()
	unknownKind := PusherKind("carrier-pigeon")
	tests := []struct {
		name      string
		record    any
		wantField string // empty when the record is valid
	}{
		{"http pusher", validHTTPPusher(), ""},
		{"email pusher without url", NewPusher(PusherKindEmail, "alice@example.com", "m.email"), ""},
		{"http pusher without url", NewPusher(PusherKindHTTP, "key", "app"), "url"},
		{"bad url", func() Pusher { p := validHTTPPusher(); p.Data.URL = "not a url"; return p }(), "url"},
		{"unknown kind", func() Pusher { p := validHTTPPusher(); p.Kind = &unknownKind; return p }(), "kind"},
		{"missing pushkey", NewPusher(PusherKindEmail, "", "m.email"), "pushkey"},
		{"pushkey at limit", NewPusher(PusherKindEmail, strings.Repeat("k", 512), "m.email"), ""},
		{"pushkey over limit", NewPusher(PusherKindEmail, strings.Repeat("k", 513), "m.email"), "pushkey"},
		// 200 three-byte runes: under 512 runes, over 512 bytes.
		{"pushkey over byte limit", NewPusher(PusherKindEmail, strings.Repeat("€", 200), "m.email"), "pushkey"},
		{"app_id at limit", NewPusher(PusherKindEmail, "k", strings.Repeat("a", 64)), ""},
		{"app_id over limit", NewPusher(PusherKindEmail, "k", strings.Repeat("a", 65)), "app_id"},
		{"bad format", func() Pusher { p := validHTTPPusher(); p.Data.Format = "full"; return p }(), "format"},
		{"notifications limit unset", NotificationsRequest{}, ""},
		{"notifications limit", NotificationsRequest{Limit: 20}, ""},
		{"negative notifications limit", NotificationsRequest{Limit: -1}, "Limit"},
		{"pusher inside response", PushersResponse{Pushers: []Pusher{NewPusher(PusherKindHTTP, "k", "a")}}, "url"},
		{"device keys without user", DeviceKeys{
			DeviceID:   ref.MustParseDeviceID("D"),
			Algorithms: []string{"m.olm.v1.curve25519-aes-sha2"},
			Keys:       map[ref.KeyID]string{ref.MustParseKeyID("ed25519:D"): "k"},
		}, "user_id"},
		{"device keys without keys", DeviceKeys{
			UserID:     ref.MustParseUserID("@alice:example.com"),
			DeviceID:   ref.MustParseDeviceID("D"),
			Algorithms: []string{"m.olm.v1.curve25519-aes-sha2"},
		}, "keys"},
		{"query without device map", QueryKeysRequest{}, "device_keys"},
		{"login flow without type", LoginFlowsResponse{Flows: []LoginFlow{{}}}, "type"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(test.record)
			if test.wantField == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			var failures validator.ValidationErrors
			if !errors.As(err, &failures) {
				t.Fatalf("Validate error = %v, want validation failures", err)
			}
			for _, failure := range failures {
				if failure.Field() == test.wantField {
					return
				}
			}
			t.Errorf("no failure on field %q in %v", test.wantField, err)
		})
	}
}

func TestValidateNotStruct(t *testing.T) {
	t.Parallel()
	if err := Validate("pusher"); err == nil {
		t.Error("Validate accepted a string")
	}
}

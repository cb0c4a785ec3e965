// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"encoding/json"
	"testing"
)

func TestParseUserID(t *testing.T) {
	tests := []struct {
		input     string
		wantErr   bool
		localpart string
		server    string
	}{
		{"@alice:example.org", false, "alice", "example.org"},
		{"@bob:matrix.example.org:8448", false, "bob", "matrix.example.org:8448"},
		{"@agent/worker:bureau.local", false, "agent/worker", "bureau.local"},
		{"", true, "", ""},
		{"alice:example.org", true, "", ""},
		{"@alice", true, "", ""},
		{"@:example.org", true, "", ""},
		{"@alice:", true, "", ""},
		{"@alice:exa mple.org", true, "", ""},
	}
	for _, test := range tests {
		got, err := ParseUserID(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseUserID(%q): err=%v, wantErr=%v", test.input, err, test.wantErr)
			continue
		}
		if test.wantErr {
			continue
		}
		if got.Localpart() != test.localpart {
			t.Errorf("ParseUserID(%q).Localpart() = %q, want %q", test.input, got.Localpart(), test.localpart)
		}
		if got.Server().String() != test.server {
			t.Errorf("ParseUserID(%q).Server() = %q, want %q", test.input, got.Server(), test.server)
		}
		if got.String() != test.input {
			t.Errorf("String() = %q, want %q", got.String(), test.input)
		}
	}
}

func TestParseRoomID(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"!abc123:example.org", false},
		{"!abc123:example.org:8448", false},
		{"", true},
		{"#alias:example.org", true},
		{"!abc123", true},
		{"!:example.org", true},
		{"!abc123:", true},
	}
	for _, test := range tests {
		_, err := ParseRoomID(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseRoomID(%q): err=%v, wantErr=%v", test.input, err, test.wantErr)
		}
	}
}

func TestParseServerName(t *testing.T) {
	for _, valid := range []string{"example.org", "matrix.example.org:8448", "[::1]:8448", "localhost"} {
		if _, err := ParseServerName(valid); err != nil {
			t.Errorf("ParseServerName(%q): %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "exa mple", "@example.org", "#room", "tab\there"} {
		if _, err := ParseServerName(invalid); err == nil {
			t.Errorf("ParseServerName(%q) succeeded, want error", invalid)
		}
	}
}

func TestParseDeviceID(t *testing.T) {
	if _, err := ParseDeviceID(""); err == nil {
		t.Error("ParseDeviceID(\"\") succeeded, want error")
	}
	device := MustParseDeviceID("JLAFKJWSCS")
	if device.String() != "JLAFKJWSCS" || device.IsZero() {
		t.Errorf("device = %q, IsZero=%v", device, device.IsZero())
	}
}

func TestJSONInStructFields(t *testing.T) {
	type record struct {
		User   UserID   `json:"user_id"`
		Room   RoomID   `json:"room_id"`
		Device DeviceID `json:"device_id"`
	}
	original := record{
		User:   MustParseUserID("@alice:example.org"),
		Room:   MustParseRoomID("!room:example.org"),
		Device: MustParseDeviceID("JLAFKJWSCS"),
	}
	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"user_id":"@alice:example.org","room_id":"!room:example.org","device_id":"JLAFKJWSCS"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
	var decoded record
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("round-trip: got %+v, want %+v", decoded, original)
	}

	if err := json.Unmarshal([]byte(`{"user_id":"alice"}`), &decoded); err == nil {
		t.Error("Unmarshal with invalid user ID succeeded")
	}
}

func TestUserIDAsMapKey(t *testing.T) {
	signatures := map[UserID]map[KeyID]string{
		MustParseUserID("@alice:example.org"): {
			MustParseKeyID("ed25519:JLAFKJWSCS"): "dSO80A01XiigH3uBiDVx/EjzaoycHcjq9lfQX0uWsqxl2giMIiSPR8a4d291W1ihKJL/a+myXS367WT6NAIcBA",
		},
	}
	data, err := json.Marshal(signatures)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded map[UserID]map[KeyID]string
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	alice := MustParseUserID("@alice:example.org")
	if len(decoded[alice]) != 1 {
		t.Fatalf("decoded[alice] = %v", decoded[alice])
	}
	if decoded[alice][MustParseKeyID("ed25519:JLAFKJWSCS")] == "" {
		t.Error("signature lookup by key ID failed")
	}
}

func TestZeroValues(t *testing.T) {
	var user UserID
	if !user.IsZero() || user.Localpart() != "" || !user.Server().IsZero() {
		t.Error("zero UserID accessors should return zero values")
	}
	var room RoomID
	if !room.IsZero() {
		t.Error("zero RoomID should be IsZero()")
	}
	var device DeviceID
	if _, err := device.MarshalText(); err == nil {
		t.Error("MarshalText on zero DeviceID should fail")
	}
}

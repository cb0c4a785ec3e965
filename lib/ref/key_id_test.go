// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseKeyID(t *testing.T) {
	id, err := ParseKeyID("ed25519:ABCDEF")
	if err != nil {
		t.Fatalf("ParseKeyID: %v", err)
	}
	if id.Algorithm() != KeyAlgorithmEd25519 {
		t.Errorf("Algorithm() = %v, want ed25519", id.Algorithm())
	}
	if id.DeviceID().String() != "ABCDEF" {
		t.Errorf("DeviceID() = %q, want ABCDEF", id.DeviceID())
	}
	if id != MustNewKeyID(KeyAlgorithmEd25519, MustParseDeviceID("ABCDEF")) {
		t.Error("parsed key ID is not equal to the constructed one")
	}
}

func TestParseKeyIDErrors(t *testing.T) {
	tests := []struct {
		input    string
		sentinel error
		mention  string
	}{
		{"ed25519", ErrMissingSeparator, "ed25519"},
		{"", ErrMissingSeparator, ""},
		{"ed25519:AB:CD", ErrTooManySeparators, "ed25519:AB:CD"},
		{"::", ErrTooManySeparators, "::"},
		{"rot13:ABCDEF", ErrUnknownAlgorithm, "rot13"},
		{":ABCDEF", ErrUnknownAlgorithm, ""},
		{"ED25519:ABCDEF", ErrUnknownAlgorithm, "ED25519"},
	}
	for _, test := range tests {
		_, err := ParseKeyID(test.input)
		if !errors.Is(err, test.sentinel) {
			t.Errorf("ParseKeyID(%q): err = %v, want %v", test.input, err, test.sentinel)
			continue
		}
		if !strings.Contains(err.Error(), test.mention) {
			t.Errorf("ParseKeyID(%q): error %q does not mention %q", test.input, err, test.mention)
		}
	}
}

func TestParseKeyIDEmptyDevice(t *testing.T) {
	// The device segment is opaque: an empty one parses and round-trips.
	id, err := ParseKeyID("curve25519:")
	if err != nil {
		t.Fatalf("ParseKeyID: %v", err)
	}
	if !id.DeviceID().IsZero() {
		t.Errorf("DeviceID() = %q, want empty", id.DeviceID())
	}
	if id.String() != "curve25519:" {
		t.Errorf("String() = %q", id.String())
	}
}

func TestKeyIDRoundTrip(t *testing.T) {
	devices := []string{"ABCDEF", "JLAFKJWSCS", "device-with_symbols.+/=", "ü", "x"}
	for _, algorithm := range KeyAlgorithms() {
		for _, device := range devices {
			original, err := NewKeyID(algorithm, MustParseDeviceID(device))
			if err != nil {
				t.Fatalf("NewKeyID(%v, %q): %v", algorithm, device, err)
			}
			parsed, err := ParseKeyID(original.String())
			if err != nil {
				t.Fatalf("ParseKeyID(%q): %v", original.String(), err)
			}
			if parsed != original {
				t.Errorf("round-trip %q: got %v, want %v", original.String(), parsed, original)
			}
		}
	}
}

func TestNewKeyIDRejectsColonDevice(t *testing.T) {
	_, err := NewKeyID(KeyAlgorithmEd25519, MustParseDeviceID("AB:CD"))
	if !errors.Is(err, ErrTooManySeparators) {
		t.Errorf("err = %v, want ErrTooManySeparators", err)
	}
	_, err = NewKeyID(0, MustParseDeviceID("ABCD"))
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("err = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestMustParseKeyIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseKeyID did not panic on invalid input")
		}
	}()
	MustParseKeyID("ed25519")
}

func TestKeyIDAsMapKey(t *testing.T) {
	keys := map[KeyID]string{
		MustParseKeyID("ed25519:JLAFKJWSCS"):    "lEuiRJBit0IG6nUf5pUzWTUEsRVVe/HJkoKuEww9ULI",
		MustParseKeyID("curve25519:JLAFKJWSCS"): "3C5BFWi2Y8MaVvjM8M22DBmh24PmgR0nPvJOIArzgyI",
	}

	data, err := json.Marshal(keys)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	// encoding/json sorts map keys by their text form.
	want := `{"curve25519:JLAFKJWSCS":"3C5BFWi2Y8MaVvjM8M22DBmh24PmgR0nPvJOIArzgyI","ed25519:JLAFKJWSCS":"lEuiRJBit0IG6nUf5pUzWTUEsRVVe/HJkoKuEww9ULI"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var decoded map[KeyID]string
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	lookup := MustNewKeyID(KeyAlgorithmEd25519, MustParseDeviceID("JLAFKJWSCS"))
	if decoded[lookup] != keys[lookup] {
		t.Errorf("lookup by constructed key: got %q, want %q", decoded[lookup], keys[lookup])
	}

	for _, bad := range []string{`{"ed25519":"x"}`, `{"ed25519:A:B":"x"}`, `{"rot13:A":"x"}`} {
		if err := json.Unmarshal([]byte(bad), &decoded); err == nil {
			t.Errorf("Unmarshal(%s) succeeded, want error", bad)
		}
	}
}

func TestKeyIDJSONValue(t *testing.T) {
	type wrapper struct {
		Key KeyID `json:"key"`
	}
	var decoded wrapper
	if err := json.Unmarshal([]byte(`{"key":"signed_curve25519:AAAAHQ"}`), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Key.Algorithm() != KeyAlgorithmSignedCurve25519 {
		t.Errorf("Algorithm() = %v", decoded.Key.Algorithm())
	}
	if err := json.Unmarshal([]byte(`{"key":""}`), &decoded); !errors.Is(err, ErrMissingSeparator) {
		t.Errorf("empty key ID: err = %v, want ErrMissingSeparator", err)
	}

	var zero KeyID
	if !zero.IsZero() {
		t.Error("zero KeyID should be IsZero()")
	}
	if _, err := json.Marshal(wrapper{}); err == nil {
		t.Error("marshaling a zero KeyID should fail")
	}
}

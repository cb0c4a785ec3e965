// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseKeyAlgorithm(t *testing.T) {
	tests := []struct {
		input string
		want  KeyAlgorithm
	}{
		{"ed25519", KeyAlgorithmEd25519},
		{"curve25519", KeyAlgorithmCurve25519},
		{"signed_curve25519", KeyAlgorithmSignedCurve25519},
	}
	for _, test := range tests {
		got, err := ParseKeyAlgorithm(test.input)
		if err != nil {
			t.Fatalf("ParseKeyAlgorithm(%q): %v", test.input, err)
		}
		if got != test.want {
			t.Errorf("ParseKeyAlgorithm(%q) = %v, want %v", test.input, got, test.want)
		}
		if got.String() != test.input {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), test.input)
		}
	}
}

func TestParseKeyAlgorithmRejects(t *testing.T) {
	// Exact, case-sensitive matching: no trimming, no folding.
	for _, input := range []string{"", "rot13", "Ed25519", "ED25519", " ed25519", "ed25519 ", "curve", "signed-curve25519"} {
		_, err := ParseKeyAlgorithm(input)
		if !errors.Is(err, ErrUnknownAlgorithm) {
			t.Errorf("ParseKeyAlgorithm(%q): err = %v, want ErrUnknownAlgorithm", input, err)
			continue
		}
		if input != "" && !strings.Contains(err.Error(), input) {
			t.Errorf("ParseKeyAlgorithm(%q): error %q does not name the token", input, err)
		}
	}
}

func TestKeyAlgorithmZeroValueInvalid(t *testing.T) {
	var zero KeyAlgorithm
	if zero.IsValid() {
		t.Error("zero KeyAlgorithm reports valid")
	}
	if _, err := zero.MarshalText(); err == nil {
		t.Error("MarshalText on zero KeyAlgorithm should fail")
	}
	if got := KeyAlgorithm(9).String(); got != "KeyAlgorithm(9)" {
		t.Errorf("String() of out-of-range value = %q", got)
	}
}

func TestKeyAlgorithmsComplete(t *testing.T) {
	algorithms := KeyAlgorithms()
	if len(algorithms) != 3 {
		t.Fatalf("KeyAlgorithms() returned %d values, want 3", len(algorithms))
	}
	for _, algorithm := range algorithms {
		parsed, err := ParseKeyAlgorithm(algorithm.String())
		if err != nil || parsed != algorithm {
			t.Errorf("round-trip %v: got %v, %v", algorithm, parsed, err)
		}
	}
}

func TestKeyAlgorithmAsJSONMapKey(t *testing.T) {
	counts := map[KeyAlgorithm]int{
		KeyAlgorithmCurve25519:       10,
		KeyAlgorithmSignedCurve25519: 20,
	}
	data, err := json.Marshal(counts)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"curve25519":10,"signed_curve25519":20}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var decoded map[KeyAlgorithm]int
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded[KeyAlgorithmSignedCurve25519] != 20 || decoded[KeyAlgorithmCurve25519] != 10 {
		t.Errorf("decoded = %v", decoded)
	}

	if err := json.Unmarshal([]byte(`{"rot13":1}`), &decoded); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Unmarshal with unknown key: err = %v, want ErrUnknownAlgorithm", err)
	}
}

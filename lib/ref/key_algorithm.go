// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"errors"
	"fmt"
)

// ErrUnknownAlgorithm is returned when a key algorithm token is not one
// of the tokens defined by the Matrix key management API.
var ErrUnknownAlgorithm = errors.New("ref: unknown key algorithm")

// KeyAlgorithm identifies the algorithm of a device key. The set is
// closed: the only valid values are the constants below, and the zero
// value is invalid.
type KeyAlgorithm uint8

const (
	// KeyAlgorithmEd25519 is the Ed25519 signature algorithm, used for
	// device fingerprint keys and signatures.
	KeyAlgorithmEd25519 KeyAlgorithm = iota + 1

	// KeyAlgorithmCurve25519 is the Curve25519 ECDH algorithm, used for
	// device identity keys and unsigned one-time keys.
	KeyAlgorithmCurve25519

	// KeyAlgorithmSignedCurve25519 is a Curve25519 key that carries its
	// own signatures. One-time keys uploaded by current clients use it.
	KeyAlgorithmSignedCurve25519
)

var keyAlgorithmTokens = [...]string{
	KeyAlgorithmEd25519:          "ed25519",
	KeyAlgorithmCurve25519:       "curve25519",
	KeyAlgorithmSignedCurve25519: "signed_curve25519",
}

// KeyAlgorithms returns every valid algorithm in declaration order.
func KeyAlgorithms() []KeyAlgorithm {
	return []KeyAlgorithm{
		KeyAlgorithmEd25519,
		KeyAlgorithmCurve25519,
		KeyAlgorithmSignedCurve25519,
	}
}

// ParseKeyAlgorithm returns the algorithm whose canonical token is raw.
// Matching is exact and case-sensitive; no trimming is performed.
func ParseKeyAlgorithm(raw string) (KeyAlgorithm, error) {
	switch raw {
	case "ed25519":
		return KeyAlgorithmEd25519, nil
	case "curve25519":
		return KeyAlgorithmCurve25519, nil
	case "signed_curve25519":
		return KeyAlgorithmSignedCurve25519, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, raw)
}

// IsValid reports whether a is one of the defined algorithms.
func (a KeyAlgorithm) IsValid() bool {
	return a >= KeyAlgorithmEd25519 && a <= KeyAlgorithmSignedCurve25519
}

// String returns the canonical lowercase token ("ed25519",
// "curve25519", "signed_curve25519"). Invalid values render as
// "KeyAlgorithm(N)" for diagnostics and never parse back.
func (a KeyAlgorithm) String() string {
	if !a.IsValid() {
		return fmt.Sprintf("KeyAlgorithm(%d)", uint8(a))
	}
	return keyAlgorithmTokens[a]
}

// MarshalText implements encoding.TextMarshaler. Algorithms are JSON
// object keys in one-time key count tables, so this also controls the
// map key encoding.
func (a KeyAlgorithm) MarshalText() ([]byte, error) {
	if !a.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid %s", a)
	}
	return []byte(keyAlgorithmTokens[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *KeyAlgorithm) UnmarshalText(data []byte) error {
	parsed, err := ParseKeyAlgorithm(string(data))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

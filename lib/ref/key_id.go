// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"errors"
	"fmt"
	"strings"
)

// keyIDSeparator joins the algorithm token and the device ID.
const keyIDSeparator = ':'

var (
	// ErrMissingSeparator is returned when a key ID has no ':' between
	// the algorithm and the device ID.
	ErrMissingSeparator = errors.New("ref: key ID missing ':' separator")

	// ErrTooManySeparators is returned when a key ID has more than one
	// ':'. Neither algorithm tokens nor device IDs contain colons, so a
	// second one means protocol drift or corruption.
	ErrTooManySeparators = errors.New("ref: key ID has more than one ':' separator")
)

// KeyID identifies a single key of a device: the key algorithm and the
// device ID, written "<algorithm>:<device>" (e.g. "ed25519:JLAFKJWSCS").
// It is the object key of the "keys" and "signatures" maps of device
// keys and of one-time key tables.
//
// KeyID is an immutable, comparable value type. The zero value is not
// valid; use IsZero to check.
type KeyID struct {
	algorithm KeyAlgorithm
	device    DeviceID
}

// NewKeyID combines an algorithm and a device ID into a key ID. The
// device ID must not contain ':' because the encoded form has exactly
// one separator.
func NewKeyID(algorithm KeyAlgorithm, device DeviceID) (KeyID, error) {
	if !algorithm.IsValid() {
		return KeyID{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algorithm)
	}
	if strings.IndexByte(device.id, keyIDSeparator) >= 0 {
		return KeyID{}, fmt.Errorf("%w: device ID %q contains ':'", ErrTooManySeparators, device.id)
	}
	return KeyID{algorithm: algorithm, device: device}, nil
}

// MustNewKeyID is like NewKeyID but panics on error. Use in tests and
// static initialization where the input is known-valid.
func MustNewKeyID(algorithm KeyAlgorithm, device DeviceID) KeyID {
	id, err := NewKeyID(algorithm, device)
	if err != nil {
		panic(fmt.Sprintf("ref.MustNewKeyID(%s, %q): %v", algorithm, device.id, err))
	}
	return id
}

// ParseKeyID splits raw on its single ':' into an algorithm token and a
// device ID. The device ID is opaque and not validated further.
func ParseKeyID(raw string) (KeyID, error) {
	index := strings.IndexByte(raw, keyIDSeparator)
	if index < 0 {
		return KeyID{}, fmt.Errorf("%w: %q", ErrMissingSeparator, raw)
	}
	if strings.IndexByte(raw[index+1:], keyIDSeparator) >= 0 {
		return KeyID{}, fmt.Errorf("%w: %q", ErrTooManySeparators, raw)
	}
	algorithm, err := ParseKeyAlgorithm(raw[:index])
	if err != nil {
		return KeyID{}, fmt.Errorf("key ID %q: %w", raw, err)
	}
	return KeyID{algorithm: algorithm, device: DeviceID{id: raw[index+1:]}}, nil
}

// MustParseKeyID is like ParseKeyID but panics on error.
func MustParseKeyID(raw string) KeyID {
	id, err := ParseKeyID(raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParseKeyID(%q): %v", raw, err))
	}
	return id
}

// Algorithm returns the key algorithm.
func (k KeyID) Algorithm() KeyAlgorithm { return k.algorithm }

// DeviceID returns the device the key belongs to.
func (k KeyID) DeviceID() DeviceID { return k.device }

// IsZero reports whether the KeyID is the zero value (uninitialized).
func (k KeyID) IsZero() bool { return k.algorithm == 0 && k.device.id == "" }

// String returns the encoded form "<algorithm>:<device>".
func (k KeyID) String() string {
	return k.algorithm.String() + string(keyIDSeparator) + k.device.id
}

// MarshalText implements encoding.TextMarshaler. Map keys of type KeyID
// encode through this method.
func (k KeyID) MarshalText() ([]byte, error) {
	if !k.algorithm.IsValid() {
		return nil, fmt.Errorf("cannot marshal key ID with invalid %s", k.algorithm)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unlike the other
// refs, an empty input is an error: a key ID is never optional on the
// wire.
func (k *KeyID) UnmarshalText(data []byte) error {
	parsed, err := ParseKeyID(string(data))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

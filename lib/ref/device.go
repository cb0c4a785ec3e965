// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import "fmt"

// DeviceID is a Matrix device identifier (e.g. "JLAFKJWSCS"). Device
// IDs are opaque server-assigned strings; the type exists so they
// cannot be confused with user IDs or key IDs at compile time.
//
// DeviceID is the right-hand side of a [KeyID], so a device ID that
// will be combined into a key ID must not contain ':'. ParseDeviceID
// does not enforce that; NewKeyID does.
type DeviceID struct {
	id string
}

// ParseDeviceID wraps a raw device ID. Returns an error if the string
// is empty.
func ParseDeviceID(raw string) (DeviceID, error) {
	if raw == "" {
		return DeviceID{}, fmt.Errorf("device ID is empty")
	}
	return DeviceID{id: raw}, nil
}

// MustParseDeviceID is like ParseDeviceID but panics on error.
func MustParseDeviceID(raw string) DeviceID {
	d, err := ParseDeviceID(raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParseDeviceID(%q): %v", raw, err))
	}
	return d
}

// String returns the raw device ID.
func (d DeviceID) String() string { return d.id }

// IsZero reports whether the DeviceID is the zero value (empty).
func (d DeviceID) IsZero() bool { return d.id == "" }

// MarshalText implements encoding.TextMarshaler. Device IDs key the
// per-user maps of key query and claim responses, and an empty object
// key would be ambiguous, so the zero value fails.
func (d DeviceID) MarshalText() ([]byte, error) {
	if d.id == "" {
		return nil, fmt.Errorf("cannot marshal zero DeviceID")
	}
	return []byte(d.id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty input
// produces the zero value.
func (d *DeviceID) UnmarshalText(data []byte) error {
	*d = DeviceID{id: string(data)}
	return nil
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import "fmt"

// UserID is a validated Matrix user ID (e.g. "@alice:example.org").
// Key query and claim records are keyed by user ID, and signature maps
// are keyed by the signing user.
//
// UserID is an immutable value type. The zero value is not valid; use
// IsZero to check.
type UserID struct {
	id     string
	server int // index of the ':' separating the server
}

// ParseUserID validates and wraps a raw Matrix user ID.
func ParseUserID(raw string) (UserID, error) {
	localpart, _, err := splitSigilID(raw, '@', "user ID")
	if err != nil {
		return UserID{}, err
	}
	return UserID{id: raw, server: 1 + len(localpart)}, nil
}

// MustParseUserID is like ParseUserID but panics on error.
func MustParseUserID(raw string) UserID {
	u, err := ParseUserID(raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParseUserID(%q): %v", raw, err))
	}
	return u
}

// String returns the full user ID.
func (u UserID) String() string { return u.id }

// IsZero reports whether the UserID is the zero value.
func (u UserID) IsZero() bool { return u.id == "" }

// Localpart returns the part between '@' and ':'. Empty for the zero
// value.
func (u UserID) Localpart() string {
	if u.id == "" {
		return ""
	}
	return u.id[1:u.server]
}

// Server returns the homeserver name of the user. The zero value
// returns the zero ServerName.
func (u UserID) Server() ServerName {
	if u.id == "" {
		return ServerName{}
	}
	return ServerName{name: u.id[u.server+1:]}
}

// MarshalText implements encoding.TextMarshaler.
func (u UserID) MarshalText() ([]byte, error) {
	if u.id == "" {
		return nil, fmt.Errorf("cannot marshal zero UserID")
	}
	return []byte(u.id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty input
// produces the zero value.
func (u *UserID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*u = UserID{}
		return nil
	}
	parsed, err := ParseUserID(string(data))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package messaging

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bureau-foundation/matrixwire/lib/ref"
)

// Signatures maps each signing user to that user's signatures, keyed by
// the key ID ("ed25519:JLAFKJWSCS") of the signing key.
type Signatures map[ref.UserID]map[ref.KeyID]string

// DeviceKeys holds the identity keys of one device, as uploaded by the
// device and returned by key queries.
type DeviceKeys struct {
	UserID   ref.UserID   `json:"user_id"`
	DeviceID ref.DeviceID `json:"device_id"`

	// Algorithms lists the encryption algorithms the device supports,
	// such as "m.olm.v1.curve25519-aes-sha2".
	Algorithms []string `json:"algorithms" validate:"min=1"`

	// Keys holds the public identity keys (unpadded base64) by key ID.
	Keys map[ref.KeyID]string `json:"keys" validate:"min=1"`

	Signatures Signatures `json:"signatures"`

	// Unsigned is added by servers and is not covered by Signatures.
	Unsigned *UnsignedDeviceInfo `json:"unsigned,omitempty"`
}

// UnsignedDeviceInfo is server-added device information.
type UnsignedDeviceInfo struct {
	DeviceDisplayName string `json:"device_display_name"`
}

// SignedKey is a signed_curve25519 one-time key.
type SignedKey struct {
	Key        string     `json:"key"`
	Signatures Signatures `json:"signatures"`
}

// OneTimeKey is a one-time public key for pre-key messages. On the wire
// an unsigned key (curve25519) is a bare string and a signed key
// (signed_curve25519) is a [SignedKey] object. A nil Signatures selects
// the string form; a non-nil one, even if empty, selects the object.
type OneTimeKey struct {
	Key        string
	Signatures Signatures
}

// IsSigned reports whether k encodes as a signed key object.
func (k OneTimeKey) IsSigned() bool { return k.Signatures != nil }

// MarshalJSON implements json.Marshaler.
func (k OneTimeKey) MarshalJSON() ([]byte, error) {
	if k.IsSigned() {
		return json.Marshal(SignedKey(k))
	}
	return json.Marshal(k.Key)
}

// UnmarshalJSON implements json.Unmarshaler. An object must carry both
// the key and signatures fields.
func (k *OneTimeKey) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ErrInvalidOneTimeKey
	}
	switch trimmed[0] {
	case '"':
		var key string
		if err := json.Unmarshal(trimmed, &key); err != nil {
			return fmt.Errorf("messaging: decoding one-time key: %w", err)
		}
		*k = OneTimeKey{Key: key}
		return nil
	case '{':
		var wire struct {
			Key        *string     `json:"key"`
			Signatures *Signatures `json:"signatures"`
		}
		if err := json.Unmarshal(trimmed, &wire); err != nil {
			return fmt.Errorf("messaging: decoding signed one-time key: %w", err)
		}
		if wire.Key == nil || wire.Signatures == nil {
			return fmt.Errorf("%w: signed key object lacks key or signatures", ErrInvalidOneTimeKey)
		}
		*k = OneTimeKey{Key: *wire.Key, Signatures: *wire.Signatures}
		return nil
	}
	return fmt.Errorf("%w: got %s", ErrInvalidOneTimeKey, trimmed)
}

// UploadKeysRequest is the body of POST /keys/upload.
type UploadKeysRequest struct {
	// DeviceKeys is absent when no new identity keys are needed.
	DeviceKeys  *DeviceKeys              `json:"device_keys,omitempty"`
	OneTimeKeys map[ref.KeyID]OneTimeKey `json:"one_time_keys,omitempty"`
}

// UploadKeysResponse reports, per algorithm, how many unclaimed one-time
// keys the server holds for the device.
type UploadKeysResponse struct {
	OneTimeKeyCounts map[ref.KeyAlgorithm]uint64 `json:"one_time_key_counts"`
}

// QueryKeysRequest is the body of POST /keys/query. An empty device
// list for a user requests all of that user's devices.
type QueryKeysRequest struct {
	// Timeout in milliseconds for federation lookups; zero leaves it to
	// the server.
	Timeout    uint64                        `json:"timeout,omitempty"`
	DeviceKeys map[ref.UserID][]ref.DeviceID `json:"device_keys" validate:"required"`
	// Token is the sync token that announced the device change, if any.
	Token string `json:"token,omitempty"`
}

// QueryKeysResponse is the result of a key query.
type QueryKeysResponse struct {
	// Failures holds the unreachable servers, keyed by server name.
	Failures   map[string]json.RawMessage                 `json:"failures"`
	DeviceKeys map[ref.UserID]map[ref.DeviceID]DeviceKeys `json:"device_keys" validate:"dive,dive"`
}

// ClaimKeysRequest is the body of POST /keys/claim: one key algorithm
// per device to claim a key for.
type ClaimKeysRequest struct {
	Timeout     uint64                                           `json:"timeout,omitempty"`
	OneTimeKeys map[ref.UserID]map[ref.DeviceID]ref.KeyAlgorithm `json:"one_time_keys" validate:"required"`
}

// ClaimKeysResponse holds the claimed keys.
type ClaimKeysResponse struct {
	Failures    map[string]json.RawMessage                               `json:"failures"`
	OneTimeKeys map[ref.UserID]map[ref.DeviceID]map[ref.KeyID]OneTimeKey `json:"one_time_keys"`
}

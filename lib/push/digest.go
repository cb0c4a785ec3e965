// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package push

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/matrixwire/lib/codec"
)

// Digest is a BLAKE3 digest of a ruleset's canonical encoding.
type Digest [32]byte

// rulesetDomainKey keys the BLAKE3 hash so ruleset digests can never
// collide with digests of other data hashed elsewhere. Readable ASCII,
// zero-padded to 32 bytes. Changing it changes every digest.
var rulesetDomainKey = [32]byte{
	'b', 'u', 'r', 'e', 'a', 'u', '.', 'p', 'u', 's', 'h', '.',
	'r', 'u', 'l', 'e', 's', 'e', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// RulesetDigest hashes the Core Deterministic CBOR encoding of r.
// Rulesets that decode to the same value produce the same digest no
// matter how their JSON was formatted or ordered, so the digest can
// serve as a cache validator for a user's push rules. Rule order within
// a category is significant and changes the digest.
func RulesetDigest(r Ruleset) (Digest, error) {
	data, err := codec.Marshal(r)
	if err != nil {
		return Digest{}, fmt.Errorf("push: encoding ruleset for digest: %w", err)
	}
	// NewKeyed only fails for a key that is not 32 bytes.
	hasher, err := blake3.NewKeyed(rulesetDomainKey[:])
	if err != nil {
		panic("push: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}

// String returns the hex encoding of the digest.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

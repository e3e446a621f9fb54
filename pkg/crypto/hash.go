// Package crypto provides the hashing and key primitives used by the derivation pipeline.
package crypto

import (
	"encoding/hex"

	"github.com/Klingon-tech/seedforge/pkg/types"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// FingerprintSize is the number of BLAKE3 bytes shown as a key fingerprint.
const FingerprintSize = 4

// Hash computes a SHA3-256 hash of the input data.
func Hash(data []byte) types.Hash {
	return sha3.Sum256(data)
}

// HashConcat hashes two inputs independently and joins the digests,
// first input's digest first.
func HashConcat(a, b []byte) types.Concat {
	ha := Hash(a)
	hb := Hash(b)
	var out types.Concat
	copy(out[:types.HashSize], ha[:])
	copy(out[types.HashSize:], hb[:])
	return out
}

// Fingerprint returns a short hex identifier for public data, taken from
// BLAKE3(data)[:4]. It is meant for comparing derivations by eye and must
// only ever be applied to public material.
func Fingerprint(data []byte) string {
	h := blake3.Sum256(data)
	return hex.EncodeToString(h[:FingerprintSize])
}

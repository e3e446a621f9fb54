// Package types defines the fixed-size values passed between derivation stages.
package types

import (
	"encoding/hex"
	"fmt"
)

// HashSize is the length of a digest in bytes.
const HashSize = 32

// ConcatSize is the length of two concatenated digests.
const ConcatSize = 2 * HashSize

// Hash represents a 256-bit digest.
type Hash [HashSize]byte

// Concat holds two digests back to back.
type Concat [ConcatSize]byte

// IsZero returns true if the hash is all zeros.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// String returns the lowercase hex-encoded hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Bytes returns a copy of the hash as a byte slice.
func (h Hash) Bytes() []byte {
	b := make([]byte, HashSize)
	copy(b, h[:])
	return b
}

// First returns the leading half of the concatenation.
func (c Concat) First() Hash {
	var h Hash
	copy(h[:], c[:HashSize])
	return h
}

// Second returns the trailing half of the concatenation.
func (c Concat) Second() Hash {
	var h Hash
	copy(h[:], c[HashSize:])
	return h
}

// HexToHash decodes a 64-character hex string into a Hash.
func HexToHash(s string) (Hash, error) {
	var h Hash
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("invalid hash hex: %w", err)
	}
	if len(b) != HashSize {
		return h, fmt.Errorf("hash must be %d bytes, got %d", HashSize, len(b))
	}
	copy(h[:], b)
	return h, nil
}

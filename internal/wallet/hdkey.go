package wallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tyler-smith/go-bip32"
)

// HDKey represents a hierarchical deterministic key (BIP-32).
type HDKey struct {
	key *bip32.Key
}

// NewMasterKey creates a mainnet master HD key from a 64-byte seed.
func NewMasterKey(seed []byte) (*HDKey, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}
	return &HDKey{key: master}, nil
}

// String returns the Base58Check serialization ("xprv..." for private keys).
func (k *HDKey) String() string {
	return k.key.String()
}

// PrivateKeyBytes returns the raw 32-byte private key.
// Returns nil if this is a public-only key.
func (k *HDKey) PrivateKeyBytes() []byte {
	if !k.key.IsPrivate {
		return nil
	}
	// bip32 Key.Key is 33 bytes with a leading 0x00 for private keys.
	raw := k.key.Key
	if len(raw) == 33 && raw[0] == 0 {
		return raw[1:]
	}
	return raw
}

// PublicKeyBytes returns the compressed 33-byte public key.
func (k *HDKey) PublicKeyBytes() []byte {
	pub := k.key.PublicKey()
	return pub.Key
}

// IsPrivate returns true if this key contains a private key.
func (k *HDKey) IsPrivate() bool {
	return k.key.IsPrivate
}

// Depth returns the derivation depth (0 for master).
func (k *HDKey) Depth() uint8 {
	return k.key.Depth
}

// ExtendedKeyInfo summarizes a parsed extended key.
type ExtendedKeyInfo struct {
	Private bool
	Mainnet bool
	Depth   uint8
	// Master is set when the key sits at depth 0 with no parent and index 0.
	Master bool
}

// ParseExtendedKey decodes a serialized BIP-32 key with an implementation
// independent of the one that produced it.
func ParseExtendedKey(s string) (*ExtendedKeyInfo, error) {
	ext, err := hdkeychain.NewKeyFromString(s)
	if err != nil {
		return nil, fmt.Errorf("parse extended key: %w", err)
	}
	return &ExtendedKeyInfo{
		Private: ext.IsPrivate(),
		Mainnet: ext.IsForNet(&chaincfg.MainNetParams),
		Depth:   ext.Depth(),
		Master:  ext.Depth() == 0 && ext.ParentFingerprint() == 0 && ext.ChildIndex() == 0,
	}, nil
}

package crypto

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ScalarSize is the length of a secp256k1 private key scalar.
const ScalarSize = 32

// ErrScalarOutOfRange is returned for scalars equal to zero or not below the curve order.
var ErrScalarOutOfRange = errors.New("scalar out of secp256k1 range [1, n-1]")

// PrivateKey wraps a secp256k1 private key.
type PrivateKey struct {
	key *btcec.PrivateKey
}

// PrivateKeyFromScalar creates a PrivateKey from a 32-byte big-endian scalar.
// Unlike secp256k1.PrivKeyFromBytes, it refuses values that would be reduced
// modulo the curve order or that are zero.
func PrivateKeyFromScalar(b []byte) (*PrivateKey, error) {
	if len(b) != ScalarSize {
		return nil, fmt.Errorf("private key must be %d bytes, got %d", ScalarSize, len(b))
	}
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(b); overflow {
		s.Zero()
		return nil, ErrScalarOutOfRange
	}
	if s.IsZero() {
		return nil, ErrScalarOutOfRange
	}
	return &PrivateKey{key: secp256k1.NewPrivateKey(&s)}, nil
}

// PublicKey returns the compressed 33-byte public key.
func (pk *PrivateKey) PublicKey() []byte {
	return pk.key.PubKey().SerializeCompressed()
}

// Serialize returns the 32-byte private key scalar.
func (pk *PrivateKey) Serialize() []byte {
	return pk.key.Serialize()
}

// WIF encodes the key in Wallet Import Format for Bitcoin mainnet with
// the compressed-public-key flag set.
func (pk *PrivateKey) WIF() (string, error) {
	wif, err := btcutil.NewWIF(pk.key, &chaincfg.MainNetParams, true)
	if err != nil {
		return "", fmt.Errorf("encode wif: %w", err)
	}
	return wif.String(), nil
}

// Zero securely zeroes the private key memory.
func (pk *PrivateKey) Zero() {
	pk.key.Zero()
}

// DecodedWIF describes the contents of a WIF string.
type DecodedWIF struct {
	Scalar     []byte
	Compressed bool
	Mainnet    bool
}

// DecodeWIF parses a WIF string and returns the embedded scalar and flags.
func DecodeWIF(s string) (*DecodedWIF, error) {
	wif, err := btcutil.DecodeWIF(s)
	if err != nil {
		return nil, fmt.Errorf("decode wif: %w", err)
	}
	return &DecodedWIF{
		Scalar:     wif.PrivKey.Serialize(),
		Compressed: wif.CompressPubKey,
		Mainnet:    wif.IsForNet(&chaincfg.MainNetParams),
	}, nil
}

// Package derive turns a code and a password into deterministic key material.
//
// The pipeline validates both inputs, hashes and concatenates them, stretches
// the concatenation with Argon2id, and renders the 32-byte result as raw hex,
// a Bitcoin WIF key, or a BIP-32 master key with its BIP-39 mnemonic. No
// randomness is used anywhere: equal inputs always produce equal outputs.
package derive

import (
	"github.com/Klingon-tech/seedforge/internal/log"
	"github.com/Klingon-tech/seedforge/pkg/types"
)

// Deriver runs the shared pipeline. It holds no mutable state and is safe
// for concurrent use.
type Deriver struct {
	stretcher *Stretcher
}

// New creates a Deriver using the given Argon2id parameters.
func New(params Params) (*Deriver, error) {
	s, err := NewStretcher(params)
	if err != nil {
		return nil, err
	}
	return &Deriver{stretcher: s}, nil
}

// Params returns the Argon2id parameters in use.
func (d *Deriver) Params() Params {
	return d.stretcher.Params()
}

// Secret validates the inputs and returns the 32-byte stretched secret.
func (d *Deriver) Secret(code, password string) (types.Hash, error) {
	if err := ValidateInput(code, password); err != nil {
		log.Derive.Debug().Msg("input rejected")
		return types.Hash{}, err
	}
	concat := HashConcat(code, password)
	secret, err := d.stretcher.Stretch(concat)
	clear(concat[:])
	if err != nil {
		log.Derive.Warn().Err(err).Msg("stretch failed")
		return types.Hash{}, err
	}
	return secret, nil
}

// DeriveRawSecret returns the stretched secret as 64 lowercase hex characters.
func (d *Deriver) DeriveRawSecret(code, password string) (string, error) {
	secret, err := d.Secret(code, password)
	if err != nil {
		return "", err
	}
	defer clear(secret[:])
	return RawHex(secret), nil
}

// DeriveBitcoinWIF returns the stretched secret as a compressed mainnet WIF key.
func (d *Deriver) DeriveBitcoinWIF(code, password string) (string, error) {
	secret, err := d.Secret(code, password)
	if err != nil {
		return "", err
	}
	defer clear(secret[:])
	return BitcoinWIF(secret)
}

// DeriveHDWallet returns the BIP-32 master key and 12-word mnemonic.
func (d *Deriver) DeriveHDWallet(code, password string) (HDWallet, error) {
	secret, err := d.Secret(code, password)
	if err != nil {
		return HDWallet{}, err
	}
	defer clear(secret[:])
	return DeriveHD(secret)
}

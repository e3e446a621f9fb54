package derive

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/Klingon-tech/seedforge/internal/wallet"
	"github.com/Klingon-tech/seedforge/pkg/crypto"
	"github.com/Klingon-tech/seedforge/pkg/types"
)

// HDWallet is a BIP-32 master key with its BIP-39 backup phrase.
type HDWallet struct {
	XPrv     string `json:"xprv"`
	Mnemonic string `json:"mnemonic"`
}

// RawHex returns the lowercase hex encoding of the stretched secret.
func RawHex(secret types.Hash) string {
	return hex.EncodeToString(secret[:])
}

// BitcoinWIF encodes the stretched secret as a compressed mainnet WIF key.
func BitcoinWIF(secret types.Hash) (string, error) {
	key, err := privateKey(secret)
	if err != nil {
		return "", err
	}
	defer key.Zero()

	wif, err := key.WIF()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidScalar, err)
	}
	return wif, nil
}

// PublicKey returns the compressed public key belonging to BitcoinWIF(secret).
func PublicKey(secret types.Hash) ([]byte, error) {
	key, err := privateKey(secret)
	if err != nil {
		return nil, err
	}
	defer key.Zero()
	return key.PublicKey(), nil
}

func privateKey(secret types.Hash) (*crypto.PrivateKey, error) {
	key, err := crypto.PrivateKeyFromScalar(secret[:crypto.ScalarSize])
	if err != nil {
		if errors.Is(err, crypto.ErrScalarOutOfRange) {
			return nil, ErrInvalidScalar
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidScalar, err)
	}
	return key, nil
}

// DeriveHD maps the first 16 bytes of the secret to a 12-word mnemonic and
// derives the mainnet master key from the mnemonic's seed with an empty
// passphrase.
func DeriveHD(secret types.Hash) (HDWallet, error) {
	mnemonic, err := wallet.MnemonicFromEntropy(secret[:wallet.MnemonicEntropySize])
	if err != nil {
		return HDWallet{}, fmt.Errorf("%w: %v", ErrMnemonic, err)
	}

	seed, err := wallet.SeedFromMnemonic(mnemonic, "")
	if err != nil {
		return HDWallet{}, fmt.Errorf("%w: %v", ErrMnemonic, err)
	}
	defer crypto.Wipe(seed)

	master, err := wallet.NewMasterKey(seed)
	if err != nil {
		return HDWallet{}, fmt.Errorf("%w: %v", ErrKeyDerivation, err)
	}

	return HDWallet{
		XPrv:     master.String(),
		Mnemonic: mnemonic,
	}, nil
}

package derive

import "errors"

// User-facing texts for rejected input. Both are always reported together.
const (
	msgInputLength = "Provided code must be at least 16 characters long and password must be at least 8 characters long"
	msgInputFormat = "Provided code or password is not in Base58 format"
)

var (
	// ErrInvalidInput is returned when the code or password fails the length
	// or Base58 checks. The message does not say which check failed.
	ErrInvalidInput = errors.New(msgInputLength + "\n" + msgInputFormat)

	// ErrStretchFailed is returned when the memory-hard stretch cannot run.
	ErrStretchFailed = errors.New("failed to generate hash")

	// ErrInvalidScalar is returned when the stretched secret is not a valid
	// secp256k1 private key. Retrying with the same inputs fails the same way.
	ErrInvalidScalar = errors.New("derived key is not a valid secp256k1 private key")

	// ErrMnemonic is returned when the entropy cannot be mapped to a mnemonic.
	ErrMnemonic = errors.New("mnemonic generation error")

	// ErrKeyDerivation is returned when the BIP-32 master key cannot be built.
	ErrKeyDerivation = errors.New("master key derivation error")
)

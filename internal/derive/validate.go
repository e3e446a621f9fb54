package derive

import "github.com/btcsuite/btcd/btcutil/base58"

// Minimum input lengths, in bytes.
const (
	MinCodeLength     = 16
	MinPasswordLength = 8
)

// ValidateInput checks both inputs before any hashing takes place.
// Every failure returns ErrInvalidInput.
func ValidateInput(code, password string) error {
	if len(code) < MinCodeLength || len(password) < MinPasswordLength {
		return ErrInvalidInput
	}
	if !isBase58(code) || !isBase58(password) {
		return ErrInvalidInput
	}
	return nil
}

// isBase58 reports whether s decodes under the Bitcoin Base58 alphabet.
// base58.Decode signals an invalid character by returning an empty slice,
// which can only otherwise happen for the empty string.
func isBase58(s string) bool {
	return s == "" || len(base58.Decode(s)) > 0
}

package derive

import (
	"github.com/Klingon-tech/seedforge/pkg/crypto"
	"github.com/Klingon-tech/seedforge/pkg/types"
)

// HashConcat returns SHA3-256(code) ‖ SHA3-256(password) over the UTF-8
// bytes of each input.
func HashConcat(code, password string) types.Concat {
	return crypto.HashConcat([]byte(code), []byte(password))
}

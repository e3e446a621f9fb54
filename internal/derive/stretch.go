package derive

import (
	"encoding/base64"
	"fmt"

	"github.com/Klingon-tech/seedforge/internal/log"
	"github.com/Klingon-tech/seedforge/pkg/crypto"
	"github.com/Klingon-tech/seedforge/pkg/types"
	"golang.org/x/crypto/argon2"
)

// PHC salt length bounds, in encoded characters.
const (
	minSaltChars = 4
	maxSaltChars = 64
)

// Stretcher turns a ConcatenatedHash into a StretchedSecret with Argon2id.
//
// The salt is derived from the concatenation itself, so the result depends
// only on the two input strings. This gives up the protection a random salt
// offers against precomputation for a known input pair; the inputs are
// expected to be high-entropy Base58 material.
type Stretcher struct {
	params Params
}

// NewStretcher creates a Stretcher after validating params.
func NewStretcher(params Params) (*Stretcher, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStretchFailed, err)
	}
	return &Stretcher{params: params}, nil
}

// Params returns the Argon2id parameters in use.
func (s *Stretcher) Params() Params {
	return s.params
}

// Stretch computes SHA3-256 over the Argon2id PHC string of concat.
func (s *Stretcher) Stretch(concat types.Concat) (secret types.Hash, err error) {
	defer func() {
		if r := recover(); r != nil {
			secret = types.Hash{}
			err = fmt.Errorf("%w: %v", ErrStretchFailed, r)
		}
	}()
	defer log.Benchmark(log.KDF, "argon2id")()

	final := crypto.Hash(concat[:])

	saltText, err := encodeSalt(final[:])
	if err != nil {
		return types.Hash{}, fmt.Errorf("%w: %v", ErrStretchFailed, err)
	}
	salt, err := base64.RawStdEncoding.DecodeString(saltText)
	if err != nil {
		return types.Hash{}, fmt.Errorf("%w: decode salt: %v", ErrStretchFailed, err)
	}

	key := argon2.IDKey(
		concat[:],
		salt,
		s.params.Iterations,
		s.params.Memory,
		s.params.Parallelism,
		KeyLength,
	)
	defer crypto.Wipe(key)

	phc := []byte(encodePHC(s.params, saltText, key))
	defer crypto.Wipe(phc)

	log.KDF.Debug().Str("params", s.params.String()).Msg("stretch complete")
	return crypto.Hash(phc), nil
}

// encodeSalt renders salt bytes as an unpadded standard-base64 PHC salt.
func encodeSalt(salt []byte) (string, error) {
	text := base64.RawStdEncoding.EncodeToString(salt)
	if len(text) < minSaltChars || len(text) > maxSaltChars {
		return "", fmt.Errorf("salt length %d outside [%d, %d] characters", len(text), minSaltChars, maxSaltChars)
	}
	return text, nil
}

// encodePHC formats an Argon2id result as a PHC string:
// $argon2id$v=19$m=<m>,t=<t>,p=<p>$<salt>$<hash>
func encodePHC(p Params, saltText string, key []byte) string {
	return fmt.Sprintf("$argon2id$v=%d$%s$%s$%s",
		argon2.Version,
		p.String(),
		saltText,
		base64.RawStdEncoding.EncodeToString(key),
	)
}

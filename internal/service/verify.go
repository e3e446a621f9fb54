package service

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Klingon-tech/seedforge/internal/derive"
	"github.com/Klingon-tech/seedforge/internal/wallet"
	"github.com/Klingon-tech/seedforge/pkg/crypto"
	"github.com/Klingon-tech/seedforge/pkg/types"
)

// Check is the outcome of one self-test on derived outputs.
type Check struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

// Report holds every output for one code/password pair plus the results of
// decoding them again.
type Report struct {
	RawSecret      string  `json:"raw_secret"`
	WIF            string  `json:"wif"`
	PublicKey      string  `json:"public_key"`
	KeyFingerprint string  `json:"key_fingerprint"`
	XPrv           string  `json:"xprv"`
	Mnemonic       string  `json:"mnemonic"`
	Checks         []Check `json:"checks"`
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	for _, c := range r.Checks {
		if !c.OK {
			return false
		}
	}
	return true
}

// Verify derives all three outputs from a single stretch and checks that
// they decode back to the same secret.
func (s *Service) Verify(code, password string) (*Report, error) {
	var report *Report
	err := s.run("verify", code, password, func(secret types.Hash) error {
		r, err := buildReport(secret)
		if err != nil {
			return err
		}
		report = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

func buildReport(secret types.Hash) (*Report, error) {
	wif, err := derive.BitcoinWIF(secret)
	if err != nil {
		return nil, err
	}
	pub, err := derive.PublicKey(secret)
	if err != nil {
		return nil, err
	}
	hd, err := derive.DeriveHD(secret)
	if err != nil {
		return nil, err
	}

	r := &Report{
		RawSecret:      derive.RawHex(secret),
		WIF:            wif,
		PublicKey:      hex.EncodeToString(pub),
		KeyFingerprint: crypto.Fingerprint(pub),
		XPrv:           hd.XPrv,
		Mnemonic:       hd.Mnemonic,
	}
	r.Checks = []Check{
		checkWIF(wif, secret),
		checkMnemonic(hd.Mnemonic, secret),
		checkXPrv(hd.XPrv),
	}
	return r, nil
}

func checkWIF(wif string, secret types.Hash) Check {
	c := Check{Name: "wif_roundtrip"}
	decoded, err := crypto.DecodeWIF(wif)
	switch {
	case err != nil:
		c.Detail = err.Error()
	case !bytes.Equal(decoded.Scalar, secret[:crypto.ScalarSize]):
		c.Detail = "decoded scalar differs from the stretched secret"
	case !decoded.Compressed:
		c.Detail = "compressed flag missing"
	case !decoded.Mainnet:
		c.Detail = "not a mainnet key"
	default:
		c.OK = true
	}
	return c
}

func checkMnemonic(mnemonic string, secret types.Hash) Check {
	c := Check{Name: "mnemonic_valid"}
	if n := len(strings.Fields(mnemonic)); n != wallet.MnemonicWordCount {
		c.Detail = fmt.Sprintf("%d words, want %d", n, wallet.MnemonicWordCount)
		return c
	}
	if !wallet.InWordlist(mnemonic) || !wallet.ValidateMnemonic(mnemonic) {
		c.Detail = "fails BIP-39 validation"
		return c
	}
	entropy, err := wallet.EntropyFromMnemonic(mnemonic)
	if err != nil {
		c.Detail = err.Error()
		return c
	}
	if !bytes.Equal(entropy, secret[:wallet.MnemonicEntropySize]) {
		c.Detail = "mnemonic entropy differs from the stretched secret"
		return c
	}
	c.OK = true
	return c
}

func checkXPrv(xprv string) Check {
	c := Check{Name: "xprv_master"}
	info, err := wallet.ParseExtendedKey(xprv)
	switch {
	case err != nil:
		c.Detail = err.Error()
	case !info.Private:
		c.Detail = "not a private key"
	case !info.Mainnet:
		c.Detail = "not a mainnet key"
	case !info.Master:
		c.Detail = fmt.Sprintf("depth %d, want master", info.Depth)
	default:
		c.OK = true
	}
	return c
}

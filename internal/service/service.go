// Package service exposes the derivation operations to an application shell.
//
// Every method takes the code and password as plain strings and returns
// either a complete result or an error carrying only a human-readable
// message. Typed errors from the pipeline are collapsed at this boundary and
// panics are converted to errors, so a shell can treat every failure as a
// terminal message for that call.
package service

import (
	"errors"
	"fmt"

	"github.com/Klingon-tech/seedforge/internal/derive"
	"github.com/Klingon-tech/seedforge/internal/log"
	"github.com/Klingon-tech/seedforge/pkg/types"
)

// Pipeline produces the stretched secret for a code and password.
// *derive.Deriver implements it.
type Pipeline interface {
	Secret(code, password string) (types.Hash, error)
}

// Service is bound to the shell.
type Service struct {
	pipeline Pipeline
}

// WalletResult is returned by DeriveHDWallet.
type WalletResult struct {
	XPrv     string `json:"xprv"`
	Mnemonic string `json:"mnemonic"`
}

// New creates a Service on top of a pipeline.
func New(p Pipeline) *Service {
	return &Service{pipeline: p}
}

// NewWithParams creates a Service backed by a derive.Deriver.
func NewWithParams(params derive.Params) (*Service, error) {
	d, err := derive.New(params)
	if err != nil {
		return nil, err
	}
	return New(d), nil
}

// DeriveRawSecret returns the 64-character hex stretched secret.
func (s *Service) DeriveRawSecret(code, password string) (string, error) {
	var out string
	err := s.run("derive_raw_secret", code, password, func(secret types.Hash) error {
		out = derive.RawHex(secret)
		return nil
	})
	if err != nil {
		return "", err
	}
	return out, nil
}

// DeriveBitcoinWIF returns the compressed mainnet WIF private key.
func (s *Service) DeriveBitcoinWIF(code, password string) (string, error) {
	var out string
	err := s.run("derive_bitcoin_wif", code, password, func(secret types.Hash) error {
		wif, err := derive.BitcoinWIF(secret)
		if err != nil {
			return err
		}
		out = wif
		return nil
	})
	if err != nil {
		return "", err
	}
	return out, nil
}

// DeriveHDWallet returns the BIP-32 master key and its 12-word mnemonic.
func (s *Service) DeriveHDWallet(code, password string) (WalletResult, error) {
	var out WalletResult
	err := s.run("derive_hd_wallet", code, password, func(secret types.Hash) error {
		hd, err := derive.DeriveHD(secret)
		if err != nil {
			return err
		}
		out = WalletResult{XPrv: hd.XPrv, Mnemonic: hd.Mnemonic}
		return nil
	})
	if err != nil {
		return WalletResult{}, err
	}
	return out, nil
}

// run derives the secret, hands it to render, and collapses any failure
// into a message-only error.
func (s *Service) run(op, code, password string, render func(types.Hash) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Service.Error().Str("op", op).Interface("panic", r).Msg("derivation panicked")
			err = errors.New(fmt.Sprint("internal error: ", r))
		}
	}()

	secret, err := s.pipeline.Secret(code, password)
	if err == nil {
		err = render(secret)
		clear(secret[:])
	}
	if err != nil {
		log.Service.Info().Str("op", op).Str("kind", ErrorKind(err)).Msg("derivation failed")
		return errors.New(err.Error())
	}
	log.Service.Debug().Str("op", op).Msg("derivation complete")
	return nil
}

// ErrorKind names the pipeline error class of err for logging.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, derive.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, derive.ErrStretchFailed):
		return "stretch_failed"
	case errors.Is(err, derive.ErrInvalidScalar):
		return "invalid_scalar"
	case errors.Is(err, derive.ErrMnemonic):
		return "mnemonic_error"
	case errors.Is(err, derive.ErrKeyDerivation):
		return "key_derivation_error"
	default:
		return "unknown"
	}
}

// Package wallet implements the BIP-39 and BIP-32 steps of HD wallet derivation.
package wallet

import (
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

const (
	// MnemonicEntropySize is the entropy size in bytes for 12-word mnemonics.
	MnemonicEntropySize = 16

	// MnemonicWordCount is the number of words produced from MnemonicEntropySize bytes.
	MnemonicWordCount = 12
)

var englishWords = func() map[string]struct{} {
	list := bip39.GetWordList()
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}()

// MnemonicFromEntropy maps entropy to an English BIP-39 mnemonic.
// The mapping is deterministic: the same entropy always yields the same words.
func MnemonicFromEntropy(entropy []byte) (string, error) {
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// EntropyFromMnemonic recovers the entropy encoded by a mnemonic.
func EntropyFromMnemonic(mnemonic string) ([]byte, error) {
	entropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("decode mnemonic: %w", err)
	}
	return entropy, nil
}

// ValidateMnemonic checks if a mnemonic is valid per BIP-39
// (correct word count, valid words, valid checksum).
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// InWordlist reports whether every word of the phrase is in the English list.
func InWordlist(mnemonic string) bool {
	words := strings.Fields(mnemonic)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if _, ok := englishWords[w]; !ok {
			return false
		}
	}
	return true
}

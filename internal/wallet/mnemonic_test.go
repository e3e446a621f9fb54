package wallet

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
)

func TestMnemonicFromEntropy_KnownVectors(t *testing.T) {
	// BIP-39 reference vectors for 128-bit entropy.
	tests := []struct {
		entropy  string
		mnemonic string
	}{
		{
			entropy:  "00000000000000000000000000000000",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
		},
		{
			entropy:  "7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f7f",
			mnemonic: "legal winner thank year wave sausage worth useful legal winner thank yellow",
		},
		{
			entropy:  "80808080808080808080808080808080",
			mnemonic: "letter advice cage absurd amount doctor acoustic avoid letter advice cage above",
		},
		{
			entropy:  "ffffffffffffffffffffffffffffffff",
			mnemonic: "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.entropy, func(t *testing.T) {
			entropy, _ := hex.DecodeString(tt.entropy)
			got, err := MnemonicFromEntropy(entropy)
			if err != nil {
				t.Fatalf("MnemonicFromEntropy() error: %v", err)
			}
			if got != tt.mnemonic {
				t.Errorf("MnemonicFromEntropy() = %q, want %q", got, tt.mnemonic)
			}
			if n := len(strings.Fields(got)); n != MnemonicWordCount {
				t.Errorf("word count = %d, want %d", n, MnemonicWordCount)
			}
		})
	}
}

func TestMnemonicFromEntropy_InvalidLength(t *testing.T) {
	for _, size := range []int{0, 15, 17, 33} {
		if _, err := MnemonicFromEntropy(make([]byte, size)); err == nil {
			t.Errorf("MnemonicFromEntropy(%d bytes) should fail", size)
		}
	}
}

func TestEntropyFromMnemonic_RoundTrip(t *testing.T) {
	entropy := []byte("0123456789abcdef")
	mnemonic, err := MnemonicFromEntropy(entropy)
	if err != nil {
		t.Fatalf("MnemonicFromEntropy() error: %v", err)
	}

	got, err := EntropyFromMnemonic(mnemonic)
	if err != nil {
		t.Fatalf("EntropyFromMnemonic() error: %v", err)
	}
	if !bytes.Equal(got, entropy) {
		t.Errorf("EntropyFromMnemonic() = %x, want %x", got, entropy)
	}

	again, err := MnemonicFromEntropy(got)
	if err != nil {
		t.Fatalf("MnemonicFromEntropy() error: %v", err)
	}
	if again != mnemonic {
		t.Errorf("re-encoded mnemonic = %q, want %q", again, mnemonic)
	}
}

func TestEntropyFromMnemonic_Invalid(t *testing.T) {
	if _, err := EntropyFromMnemonic("abandon abandon abandon"); err == nil {
		t.Error("should reject short mnemonic")
	}
}

func TestValidateMnemonic(t *testing.T) {
	tests := []struct {
		name     string
		mnemonic string
		valid    bool
	}{
		{
			name:     "valid 12-word BIP-39",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
			valid:    true,
		},
		{
			name:     "empty string",
			mnemonic: "",
			valid:    false,
		},
		{
			name:     "random words",
			mnemonic: "not a valid mnemonic phrase at all",
			valid:    false,
		},
		{
			name:     "wrong checksum",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon",
			valid:    false,
		},
		{
			name:     "single word",
			mnemonic: "abandon",
			valid:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateMnemonic(tt.mnemonic); got != tt.valid {
				t.Errorf("ValidateMnemonic() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestInWordlist(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		want   bool
	}{
		{"all english", "zoo zoo wrong", true},
		{"unknown word", "zoo zoo klingon", false},
		{"uppercase", "ZOO", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InWordlist(tt.phrase); got != tt.want {
				t.Errorf("InWordlist(%q) = %v, want %v", tt.phrase, got, tt.want)
			}
		})
	}
}

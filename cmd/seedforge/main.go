// seedforge derives a raw secret, a Bitcoin WIF key, or a BIP-32 master key
// with its BIP-39 mnemonic from a code and a password. The same inputs and
// KDF settings always produce the same outputs.
//
// Usage:
//
//	seedforge raw     Print the 64-hex-character stretched secret
//	seedforge wif     Print a compressed mainnet WIF private key
//	seedforge hd      Print the master xprv and 12-word mnemonic
//	seedforge verify  Derive everything once and check round-trips
package main

import (
	"fmt"
	"os"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

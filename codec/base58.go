package codec

import (
	"fmt"

	"github.com/cosmos/btcutil/base58"
)

// cosmos/btcutil/base58 alphabet
const bitcoinAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// XRPLAlphabet is the base58 alphabet used by the XRP ledger.
const XRPLAlphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

// XRPL is the XRP ledger alphabet. It is never modified after package init.
var XRPL = mustAlphabet(XRPLAlphabet)

// Alphabet encodes and decodes base58 over a fixed set of 58 symbols.
//
// The big number arithmetic is done by cosmos/btcutil/base58 on the Bitcoin
// alphabet; symbols are translated position by position, so the first symbol
// of the alphabet always stands for a leading zero byte.
type Alphabet struct {
	symbols     string
	toBitcoin   [256]byte
	fromBitcoin [256]byte
}

// NewAlphabet returns an Alphabet for the given 58 distinct printable ASCII characters.
func NewAlphabet(symbols string) (*Alphabet, error) {
	if len(symbols) != len(bitcoinAlphabet) {
		return nil, fmt.Errorf("%w: expected %d characters, got %d", ErrInvalidAlphabet, len(bitcoinAlphabet), len(symbols))
	}

	a := &Alphabet{symbols: symbols}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if c <= ' ' || c > '~' {
			return nil, fmt.Errorf("%w: character %q at position %d is not printable ascii", ErrInvalidAlphabet, c, i)
		}
		if a.toBitcoin[c] != 0 {
			return nil, fmt.Errorf("%w: duplicate character %q", ErrInvalidAlphabet, c)
		}
		a.toBitcoin[c] = bitcoinAlphabet[i]
		a.fromBitcoin[bitcoinAlphabet[i]] = c
	}

	return a, nil
}

func mustAlphabet(symbols string) *Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the alphabet symbols.
func (a *Alphabet) String() string {
	return a.symbols
}

// Contains reports whether every character of s belongs to the alphabet.
func (a *Alphabet) Contains(s string) bool {
	for i := 0; i < len(s); i++ {
		if a.toBitcoin[s[i]] == 0 {
			return false
		}
	}
	return true
}

// Encode treats b as an unsigned big-endian integer and writes it in base58.
// Every leading zero byte becomes one leading zero symbol.
func (a *Alphabet) Encode(b []byte) string {
	encoded := []byte(base58.Encode(b))
	for i, c := range encoded {
		encoded[i] = a.fromBitcoin[c]
	}
	return string(encoded)
}

// Decode is the inverse of Encode.
func (a *Alphabet) Decode(s string) ([]byte, error) {
	translated := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := a.toBitcoin[s[i]]
		if c == 0 {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, s[i], i)
		}
		translated[i] = c
	}
	return base58.Decode(string(translated)), nil
}

package codec

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const checksumLength = 4

// checksum: first four bytes of sha256^2
func checksum(input []byte) (cksum [checksumLength]byte) {
	copy(cksum[:], chainhash.DoubleHashB(input)[:checksumLength])
	return cksum
}

// CheckEncode appends a four byte checksum to input and base58 encodes the result.
func (a *Alphabet) CheckEncode(input []byte) string {
	b := make([]byte, 0, len(input)+checksumLength)
	b = append(b, input...)
	cksum := checksum(b)
	b = append(b, cksum[:]...)
	return a.Encode(b)
}

// CheckDecode decodes a string that was encoded with CheckEncode and verifies
// the checksum. The checksum is stripped from the returned bytes.
func (a *Alphabet) CheckDecode(input string) ([]byte, error) {
	decoded, err := a.Decode(input)
	if err != nil {
		return nil, err
	}
	if len(decoded) < checksumLength {
		return nil, ErrInvalidFormat
	}

	var cksum [checksumLength]byte
	copy(cksum[:], decoded[len(decoded)-checksumLength:])
	if checksum(decoded[:len(decoded)-checksumLength]) != cksum {
		return nil, ErrChecksum
	}

	return decoded[:len(decoded)-checksumLength], nil
}

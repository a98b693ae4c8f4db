package address

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/vultisig/addresscodec/common"
)

// AccountIDFromPublicKey returns RIPEMD160(SHA256(publicKey)) for a 33-byte
// secp256k1 or 0xED-prefixed ed25519 public key.
func AccountIDFromPublicKey(publicKey []byte) ([]byte, error) {
	if _, ok := common.PublicKeyType(publicKey); !ok {
		return nil, fmt.Errorf("%w: %d bytes starting with %#x", ErrInvalidPublicKey, len(publicKey), firstByte(publicKey))
	}
	return btcutil.Hash160(publicKey), nil
}

// GetXRPAddress returns the classic address of a hex-encoded public key.
func GetXRPAddress(hexPublicKey string) (string, error) {
	publicKey, err := hex.DecodeString(hexPublicKey)
	if err != nil {
		return "", fmt.Errorf("invalid hex public key: %w", err)
	}

	accountID, err := AccountIDFromPublicKey(publicKey)
	if err != nil {
		return "", err
	}

	return EncodeAccountID(accountID)
}

func firstByte(b []byte) byte {
	if len(b) == 0 {
		return 0
	}
	return b[0]
}

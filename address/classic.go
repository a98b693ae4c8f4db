package address

import (
	"fmt"

	"github.com/vultisig/addresscodec/codec"
	"github.com/vultisig/addresscodec/common"
)

// Version constants of the XRP ledger. Node private keys and secp256k1 seeds
// share the 0x21 prefix and are told apart by payload length.
var (
	AccountIDVersion     = codec.NewVersion("account id", []byte{0x00}, 20)
	ED25519SeedVersion   = codec.NewVersion("ed25519 seed", []byte{0x01, 0xE1, 0x4B}, 16)
	SECP256K1SeedVersion = codec.NewVersion("secp256k1 seed", []byte{0x21}, 16)
	NodePublicVersion    = codec.NewVersion("node public key", []byte{0x1C}, 33)
	NodePrivateVersion   = codec.NewVersion("node private key", []byte{0x21}, 32)
	AccountPublicVersion = codec.NewVersion("account public key", []byte{0x23}, 33)
)

// EncodeAccountID returns the classic address of a 20-byte account ID.
func EncodeAccountID(accountID []byte) (string, error) {
	return codec.EncodeVersioned(accountID, AccountIDVersion)
}

// DecodeAccountID returns the 20-byte account ID of a classic address.
func DecodeAccountID(address string) ([]byte, error) {
	return decodeWith(address, AccountIDVersion)
}

// EncodeSeed encodes 16 bytes of seed entropy for the given key type.
func EncodeSeed(entropy []byte, keyType common.KeyType) (string, error) {
	switch keyType {
	case common.ED25519:
		return codec.EncodeVersioned(entropy, ED25519SeedVersion)
	case common.SECP256K1:
		return codec.EncodeVersioned(entropy, SECP256K1SeedVersion)
	default:
		return "", fmt.Errorf("unsupported key type: %v", keyType)
	}
}

// DecodeSeed returns the seed entropy and the key type it was encoded for.
func DecodeSeed(seed string) ([]byte, common.KeyType, error) {
	decoded, err := codec.DecodeVersioned(seed, ED25519SeedVersion, SECP256K1SeedVersion)
	if err != nil {
		return nil, common.UnknownKeyType, fmt.Errorf("invalid seed: %w", err)
	}
	if decoded.Version().Equal(ED25519SeedVersion) {
		return decoded.Payload(), common.ED25519, nil
	}
	return decoded.Payload(), common.SECP256K1, nil
}

func EncodeNodePublicKey(publicKey []byte) (string, error) {
	return codec.EncodeVersioned(publicKey, NodePublicVersion)
}

func DecodeNodePublicKey(nodePublicKey string) ([]byte, error) {
	return decodeWith(nodePublicKey, NodePublicVersion)
}

func EncodeNodePrivateKey(privateKey []byte) (string, error) {
	return codec.EncodeVersioned(privateKey, NodePrivateVersion)
}

func DecodeNodePrivateKey(nodePrivateKey string) ([]byte, error) {
	return decodeWith(nodePrivateKey, NodePrivateVersion)
}

func EncodeAccountPublicKey(publicKey []byte) (string, error) {
	return codec.EncodeVersioned(publicKey, AccountPublicVersion)
}

func DecodeAccountPublicKey(accountPublicKey string) ([]byte, error) {
	return decodeWith(accountPublicKey, AccountPublicVersion)
}

// IsValid reports whether s decodes under one of the versions. It never returns an error.
func IsValid(s string, versions ...codec.Version) bool {
	_, err := codec.DecodeVersioned(s, versions...)
	return err == nil
}

// IsValidClassicAddress reports whether address is a valid classic address.
func IsValidClassicAddress(address string) bool {
	return IsValid(address, AccountIDVersion)
}

func decodeWith(s string, version codec.Version) ([]byte, error) {
	decoded, err := codec.DecodeVersioned(s, version)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", version.Name(), err)
	}
	return decoded.Payload(), nil
}

package address

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/vultisig/addresscodec/codec"
	"github.com/vultisig/addresscodec/common"
)

// Kind is the kind of value an encoded string holds.
type Kind int

const (
	UnknownKind Kind = iota
	KindClassicAddress
	KindXAddress
	KindSeed
	KindNodePublicKey
	KindNodePrivateKey
	KindAccountPublicKey
)

var kindToString = map[Kind]string{
	KindClassicAddress:   "classic_address",
	KindXAddress:         "x_address",
	KindSeed:             "seed",
	KindNodePublicKey:    "node_public_key",
	KindNodePrivateKey:   "node_private_key",
	KindAccountPublicKey: "account_public_key",
}

func (k Kind) String() string {
	if str, ok := kindToString[k]; ok {
		return str
	}
	return "UNKNOWN"
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	var kindStr string
	if err := json.Unmarshal(data, &kindStr); err != nil {
		return err
	}
	for key, value := range kindToString {
		if value == kindStr {
			*k = key
			return nil
		}
	}
	return fmt.Errorf("unsupported kind: %s", kindStr)
}

// inspectVersions are mutually exclusive, so their order does not matter.
var inspectVersions = []codec.Version{
	AccountIDVersion,
	ED25519SeedVersion,
	SECP256K1SeedVersion,
	NodePublicVersion,
	NodePrivateVersion,
	AccountPublicVersion,
}

// Info describes a decoded value. Payload is hex encoded.
type Info struct {
	Kind           Kind            `json:"kind"`
	Payload        string          `json:"payload"`
	KeyType        *common.KeyType `json:"key_type,omitempty"`
	ClassicAddress string          `json:"classic_address,omitempty"`
	Tag            *uint32         `json:"tag,omitempty"`
	Network        *common.Network `json:"network,omitempty"`
}

// Inspect classifies value as one of the known kinds and decodes it.
func Inspect(value string) (Info, error) {
	if len(value) == XAddressLength {
		if accountID, tag, isTest, err := DecodeXAddressToAccountID(value); err == nil {
			classicAddress, err := EncodeAccountID(accountID)
			if err != nil {
				return Info{}, err
			}
			network := common.NetworkFromIsTest(isTest)
			return Info{
				Kind:           KindXAddress,
				Payload:        hex.EncodeToString(accountID),
				ClassicAddress: classicAddress,
				Tag:            tag,
				Network:        &network,
			}, nil
		}
	}

	decoded, err := codec.DecodeVersioned(value, inspectVersions...)
	if err != nil {
		return Info{}, fmt.Errorf("unrecognized value: %w", err)
	}

	info := Info{Payload: hex.EncodeToString(decoded.Payload())}
	version := decoded.Version()
	switch {
	case version.Equal(AccountIDVersion):
		info.Kind = KindClassicAddress
		info.ClassicAddress = value
	case version.Equal(ED25519SeedVersion):
		keyType := common.ED25519
		info.Kind, info.KeyType = KindSeed, &keyType
	case version.Equal(SECP256K1SeedVersion):
		keyType := common.SECP256K1
		info.Kind, info.KeyType = KindSeed, &keyType
	case version.Equal(NodePublicVersion):
		info.Kind = KindNodePublicKey
	case version.Equal(NodePrivateVersion):
		info.Kind = KindNodePrivateKey
	case version.Equal(AccountPublicVersion):
		info.Kind = KindAccountPublicKey
		if keyType, ok := common.PublicKeyType(decoded.Payload()); ok {
			info.KeyType = &keyType
		}
	}

	return info, nil
}

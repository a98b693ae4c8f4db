package common

import (
	"encoding/json"
	"fmt"
	"strings"
)

// KeyType is the signing algorithm a seed or public key belongs to.
type KeyType int

const (
	UnknownKeyType KeyType = iota
	SECP256K1
	ED25519
)

var keyTypeToString = map[KeyType]string{
	SECP256K1: "secp256k1",
	ED25519:   "ed25519",
}

func KeyTypeFromString(str string) (KeyType, error) {
	for key, value := range keyTypeToString {
		if strings.EqualFold(value, str) {
			return key, nil
		}
	}
	return UnknownKeyType, fmt.Errorf("unsupported key type: %s", str)
}

func (k KeyType) String() string {
	if str, ok := keyTypeToString[k]; ok {
		return str
	}
	return "UNKNOWN"
}

func (k KeyType) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *KeyType) UnmarshalJSON(data []byte) error {
	var keyTypeStr string
	if err := json.Unmarshal(data, &keyTypeStr); err != nil {
		return err
	}
	keyType, err := KeyTypeFromString(keyTypeStr)
	if err != nil {
		return err
	}
	*k = keyType
	return nil
}

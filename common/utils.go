package common

// ed25519PublicKeyPrefix marks a 32-byte ed25519 key padded to 33 bytes on the XRP ledger.
const ed25519PublicKeyPrefix = 0xED

// PublicKeyType returns the key type of a 33-byte XRP ledger public key.
func PublicKeyType(pubKeyBytes []byte) (KeyType, bool) {
	if len(pubKeyBytes) != 33 {
		return UnknownKeyType, false
	}

	switch pubKeyBytes[0] {
	case 0x02, 0x03:
		// Compressed ECDSA key
		return SECP256K1, true
	case ed25519PublicKeyPrefix:
		return ED25519, true
	default:
		return UnknownKeyType, false
	}
}

// CheckIfPublicKeyIsValid reports whether pubKeyBytes is a 33-byte XRP ledger
// public key of the given type.
func CheckIfPublicKeyIsValid(pubKeyBytes []byte, keyType KeyType) bool {
	got, ok := PublicKeyType(pubKeyBytes)
	return ok && got == keyType
}

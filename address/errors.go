package address

import "errors"

var (
	// ErrInvalidXAddress is a shape error: wrong length or network discriminator.
	ErrInvalidXAddress = errors.New("invalid x-address")
	// ErrUnsupportedXAddress indicates a checksummed X-address with a payload this codec does not accept.
	ErrUnsupportedXAddress = errors.New("unsupported x-address")
	// ErrTagOutOfRange indicates a tag outside [0, 2^32-1].
	ErrTagOutOfRange = errors.New("tag out of range")
	// ErrInvalidPublicKey indicates a public key that is not a 33-byte XRP ledger key.
	ErrInvalidPublicKey = errors.New("invalid public key")
)

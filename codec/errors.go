package codec

import "errors"

var (
	// ErrInvalidAlphabet is returned by NewAlphabet for anything but 58 distinct printable ASCII characters.
	ErrInvalidAlphabet = errors.New("invalid base58 alphabet")
	// ErrInvalidCharacter indicates a character outside the configured alphabet.
	ErrInvalidCharacter = errors.New("invalid base58 character")
	// ErrInvalidFormat indicates that the decoded bytes are too short to carry a checksum.
	ErrInvalidFormat = errors.New("invalid format: checksum bytes missing")
	// ErrChecksum indicates that the checksum of a check-encoded string does not verify.
	ErrChecksum = errors.New("checksum error")
	// ErrInvalidVersion indicates a Version without prefix bytes or with a non-positive length.
	ErrInvalidVersion = errors.New("invalid version")
	// ErrInvalidPayloadLength indicates a payload that does not match the expected length.
	ErrInvalidPayloadLength = errors.New("invalid payload length")
	// ErrNoMatchingVersion indicates that no candidate version matched the decoded bytes.
	ErrNoMatchingVersion = errors.New("no matching version")
	// ErrAmbiguousVersions indicates candidate versions that could match the same bytes.
	ErrAmbiguousVersions = errors.New("ambiguous candidate versions")
	// ErrPrefixNotFound indicates that the candidate space held no stable version prefix.
	ErrPrefixNotFound = errors.New("no version prefix found")
)

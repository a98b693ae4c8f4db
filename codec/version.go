package codec

import (
	"bytes"
	"fmt"
	"strings"
)

// Version identifies a kind of encoded payload: the prefix bytes written in
// front of the payload and the exact payload length that follows them.
// A Version is immutable once constructed.
type Version struct {
	prefix         []byte
	name           string
	expectedLength int
}

// NewVersion returns a Version. The prefix is copied.
func NewVersion(name string, prefix []byte, expectedLength int) Version {
	return Version{
		prefix:         bytes.Clone(prefix),
		name:           name,
		expectedLength: expectedLength,
	}
}

// Bytes returns a copy of the version prefix.
func (v Version) Bytes() []byte {
	return bytes.Clone(v.prefix)
}

// Name is a diagnostic label and is never serialized.
func (v Version) Name() string {
	return v.name
}

// ExpectedLength is the decoded payload length, excluding the prefix.
func (v Version) ExpectedLength() int {
	return v.expectedLength
}

func (v Version) String() string {
	return fmt.Sprintf("%s(%X/%d)", v.name, v.prefix, v.expectedLength)
}

// Equal reports whether both versions describe the same prefix and length.
func (v Version) Equal(other Version) bool {
	return v.expectedLength == other.expectedLength && bytes.Equal(v.prefix, other.prefix)
}

func (v Version) validate() error {
	if len(v.prefix) == 0 {
		return fmt.Errorf("%w: %s has no prefix bytes", ErrInvalidVersion, v.name)
	}
	if v.expectedLength <= 0 {
		return fmt.Errorf("%w: %s has expected length %d", ErrInvalidVersion, v.name, v.expectedLength)
	}
	return nil
}

func (v Version) matches(decoded []byte) bool {
	return bytes.HasPrefix(decoded, v.prefix) && len(decoded)-len(v.prefix) == v.expectedLength
}

// overlaps reports whether some byte string could match both versions.
func (v Version) overlaps(other Version) bool {
	if len(v.prefix)+v.expectedLength != len(other.prefix)+other.expectedLength {
		return false
	}
	return bytes.HasPrefix(v.prefix, other.prefix) || bytes.HasPrefix(other.prefix, v.prefix)
}

// Decoded is the result of a successful DecodeVersioned.
type Decoded struct {
	version Version
	payload []byte
}

// Version returns the candidate version that matched.
func (d Decoded) Version() Version {
	return d.version
}

// Payload returns a copy of the payload without the version prefix.
func (d Decoded) Payload() []byte {
	return bytes.Clone(d.payload)
}

// EncodeVersioned prepends the version prefix to payload and check-encodes it.
func (a *Alphabet) EncodeVersioned(payload []byte, version Version) (string, error) {
	if err := version.validate(); err != nil {
		return "", err
	}
	if len(payload) != version.expectedLength {
		return "", fmt.Errorf("%w: %s expects %d bytes, got %d", ErrInvalidPayloadLength, version.name, version.expectedLength, len(payload))
	}

	b := make([]byte, 0, len(version.prefix)+len(payload))
	b = append(b, version.prefix...)
	b = append(b, payload...)
	return a.CheckEncode(b), nil
}

// DecodeVersioned check-decodes s and returns the first candidate version,
// in the order given, whose prefix and payload length match.
//
// The candidates must be mutually exclusive: a set in which two versions could
// match the same bytes is rejected with ErrAmbiguousVersions.
func (a *Alphabet) DecodeVersioned(s string, versions ...Version) (Decoded, error) {
	if len(versions) == 0 {
		return Decoded{}, fmt.Errorf("%w: no candidate versions", ErrNoMatchingVersion)
	}
	for i, v := range versions {
		if err := v.validate(); err != nil {
			return Decoded{}, err
		}
		for _, other := range versions[:i] {
			if v.overlaps(other) {
				return Decoded{}, fmt.Errorf("%w: %s and %s", ErrAmbiguousVersions, other, v)
			}
		}
	}

	decoded, err := a.CheckDecode(s)
	if err != nil {
		return Decoded{}, err
	}

	for _, v := range versions {
		if v.matches(decoded) {
			return Decoded{
				version: v,
				payload: bytes.Clone(decoded[len(v.prefix):]),
			}, nil
		}
	}

	names := make([]string, 0, len(versions))
	for _, v := range versions {
		names = append(names, v.name)
	}
	return Decoded{}, fmt.Errorf("%w: expected one of [%s]", ErrNoMatchingVersion, strings.Join(names, ", "))
}

// EncodeVersioned encodes with the XRP ledger alphabet.
func EncodeVersioned(payload []byte, version Version) (string, error) {
	return XRPL.EncodeVersioned(payload, version)
}

// DecodeVersioned decodes with the XRP ledger alphabet.
func DecodeVersioned(s string, versions ...Version) (Decoded, error) {
	return XRPL.DecodeVersioned(s, versions...)
}

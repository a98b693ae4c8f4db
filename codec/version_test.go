package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testAccountVersion  = NewVersion("account id", []byte{0x00}, 20)
	testSeedVersion     = NewVersion("secp256k1 seed", []byte{0x21}, 16)
	testNodePrivVersion = NewVersion("node private key", []byte{0x21}, 32)
)

func TestEncodeVersioned(t *testing.T) {
	got, err := EncodeVersioned(make([]byte, 20), testAccountVersion)
	require.NoError(t, err)
	assert.Equal(t, accountZero, got)

	got, err = EncodeVersioned(make([]byte, 16), testSeedVersion)
	require.NoError(t, err)
	assert.Equal(t, "sp6JS7f14BuwFY8Mw6bTtLKWauoUs", got)
}

func TestEncodeVersionedErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		version Version
		wantErr error
	}{
		{
			name:    "short payload",
			payload: make([]byte, 19),
			version: testAccountVersion,
			wantErr: ErrInvalidPayloadLength,
		},
		{
			name:    "long payload",
			payload: make([]byte, 21),
			version: testAccountVersion,
			wantErr: ErrInvalidPayloadLength,
		},
		{
			name:    "zero length version",
			payload: []byte{},
			version: NewVersion("empty", []byte{0x01}, 0),
			wantErr: ErrInvalidVersion,
		},
		{
			name:    "no prefix",
			payload: make([]byte, 4),
			version: NewVersion("bare", nil, 4),
			wantErr: ErrInvalidVersion,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeVersioned(tt.payload, tt.version)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecodeVersioned(t *testing.T) {
	decoded, err := DecodeVersioned("sp6JS7f14BuwFY8Mw6bTtLKWauoUs", testNodePrivVersion, testSeedVersion)
	require.NoError(t, err)
	assert.True(t, decoded.Version().Equal(testSeedVersion))
	assert.Equal(t, "secp256k1 seed", decoded.Version().Name())
	assert.Equal(t, make([]byte, 16), decoded.Payload())

	decoded, err = DecodeVersioned(accountZero, testAccountVersion)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 20), decoded.Payload())
}

func TestDecodeVersionedErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		versions []Version
		wantErr  error
	}{
		{
			name:     "no candidates",
			input:    accountZero,
			versions: nil,
			wantErr:  ErrNoMatchingVersion,
		},
		{
			name:     "wrong prefix",
			input:    accountZero,
			versions: []Version{testSeedVersion},
			wantErr:  ErrNoMatchingVersion,
		},
		{
			name:     "wrong length",
			input:    accountZero,
			versions: []Version{NewVersion("short account", []byte{0x00}, 19)},
			wantErr:  ErrNoMatchingVersion,
		},
		{
			name:  "ambiguous",
			input: "sp6JS7f14BuwFY8Mw6bTtLKWauoUs",
			versions: []Version{
				testSeedVersion,
				NewVersion("shadow", []byte{0x21, 0x00}, 15),
			},
			wantErr: ErrAmbiguousVersions,
		},
		{
			name:     "duplicate",
			input:    accountZero,
			versions: []Version{testAccountVersion, testAccountVersion},
			wantErr:  ErrAmbiguousVersions,
		},
		{
			name:     "invalid candidate",
			input:    accountZero,
			versions: []Version{NewVersion("zero", []byte{0x00}, 0)},
			wantErr:  ErrInvalidVersion,
		},
		{
			name:     "checksum",
			input:    "rrrrrrrrrrrrrrrrrrrrrhoLvT",
			versions: []Version{testAccountVersion},
			wantErr:  ErrChecksum,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeVersioned(tt.input, tt.versions...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVersionIsImmutable(t *testing.T) {
	prefix := []byte{0x01, 0xE1, 0x4B}
	v := NewVersion("ed25519 seed", prefix, 16)
	prefix[0] = 0xff
	assert.Equal(t, []byte{0x01, 0xE1, 0x4B}, v.Bytes())

	b := v.Bytes()
	b[1] = 0
	assert.Equal(t, []byte{0x01, 0xE1, 0x4B}, v.Bytes())
	assert.Equal(t, 16, v.ExpectedLength())
	assert.Equal(t, "ed25519 seed(01E14B/16)", v.String())

	decoded, err := DecodeVersioned(accountZero, testAccountVersion)
	require.NoError(t, err)
	payload := decoded.Payload()
	payload[0] = 0xff
	assert.Equal(t, make([]byte, 20), decoded.Payload())
}

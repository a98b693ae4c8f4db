package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const accountZero = "rrrrrrrrrrrrrrrrrrrrrhoLvTp"

func TestCheckEncode(t *testing.T) {
	assert.Equal(t, accountZero, XRPL.CheckEncode(make([]byte, 21)))

	decoded, err := XRPL.CheckDecode(accountZero)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 21), decoded)
}

func TestCheckDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "truncated",
			input:   "rrrrrrrrrrrrrrrrrrrrrhoLvT",
			wantErr: ErrChecksum,
		},
		{
			name:    "too short",
			input:   XRPL.Encode([]byte{1, 2}),
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "bad character",
			input:   "rrrrrrrrrrrrrrrrrrrrrhoLvT0",
			wantErr: ErrInvalidCharacter,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := XRPL.CheckDecode(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckDecodeDetectsMutation(t *testing.T) {
	const address = "rGWrZyQqhTp9Xu7G5Pkayo7bXjH4k4QYpf"
	raw, err := XRPL.Decode(address)
	require.NoError(t, err)

	for i := range raw {
		mutated := append([]byte(nil), raw...)
		mutated[i] ^= 0x01

		_, err := XRPL.CheckDecode(XRPL.Encode(mutated))
		assert.ErrorIs(t, err, ErrChecksum, "mutation of byte %d", i)
	}
}

func TestCheckRoundTripEmpty(t *testing.T) {
	decoded, err := XRPL.CheckDecode(XRPL.CheckEncode(nil))
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

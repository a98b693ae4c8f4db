package codec

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabetEncode(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "empty",
			input: []byte{},
			want:  "",
		},
		{
			name:  "single zero byte",
			input: []byte{0},
			want:  "r",
		},
		{
			name:  "leading zeros",
			input: []byte{0, 0, 1},
			want:  "rrp",
		},
		{
			name:  "last symbol",
			input: []byte{57},
			want:  "z",
		},
		{
			name:  "carry",
			input: []byte{58},
			want:  "pr",
		},
		{
			name:  "text",
			input: []byte("Hello World!"),
			want:  "p4NFofTZRRiLZS5p7",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := XRPL.Encode(tt.input)
			assert.Equal(t, tt.want, got)

			decoded, err := XRPL.Decode(got)
			require.NoError(t, err)
			assert.Equal(t, tt.input, decoded)
		})
	}
}

func TestAlphabetDecodeInvalidCharacter(t *testing.T) {
	for _, input := range []string{"0", "rrO", "Il", "r r", "rpshé"} {
		t.Run(input, func(t *testing.T) {
			_, err := XRPL.Decode(input)
			assert.ErrorIs(t, err, ErrInvalidCharacter)
		})
	}
}

func TestAlphabetRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(58))
	for i := 0; i < 200; i++ {
		b := make([]byte, rng.Intn(40))
		rng.Read(b)
		// exercise leading zero handling
		for j := 0; j < rng.Intn(4) && j < len(b); j++ {
			b[j] = 0
		}

		decoded, err := XRPL.Decode(XRPL.Encode(b))
		require.NoError(t, err)
		if !bytes.Equal(b, decoded) {
			t.Fatalf("round trip mismatch for %x: got %x", b, decoded)
		}
	}
}

func TestNewAlphabet(t *testing.T) {
	bitcoin, err := NewAlphabet(bitcoinAlphabet)
	require.NoError(t, err)
	assert.Equal(t, "2NEpo7TZRRrLZSi2U", bitcoin.Encode([]byte("Hello World!")))
	assert.Equal(t, bitcoinAlphabet, bitcoin.String())

	failureTests := []struct {
		name    string
		symbols string
	}{
		{
			name:    "too short",
			symbols: "abc",
		},
		{
			name:    "duplicate",
			symbols: "rrshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz",
		},
		{
			name:    "whitespace",
			symbols: " pshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz",
		},
		{
			name:    "non ascii",
			symbols: "\xffpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz",
		},
	}
	for _, tt := range failureTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAlphabet(tt.symbols)
			assert.ErrorIs(t, err, ErrInvalidAlphabet)
		})
	}
}

func TestAlphabetContains(t *testing.T) {
	assert.True(t, XRPL.Contains("sEd"))
	assert.True(t, XRPL.Contains(""))
	assert.False(t, XRPL.Contains("s0d"))
}

package codec

import (
	"bytes"
	"context"
	"fmt"
	"strings"
)

// MaxPrefixCandidate bounds FindPrefix to version prefixes of at most three bytes.
const MaxPrefixCandidate = 1<<24 - 1

// FindPrefix searches for version bytes V such that check-encoding any payload
// of payloadLength bytes under V starts with desiredPrefix.
//
// Candidates are the integers 1..MaxPrefixCandidate in increasing order, each
// written as its minimal big-endian byte sequence. A candidate is stable when
// the all-zero payload, the all-0xFF payload, and every value of the first and
// of the last payload byte (the rest left at 0xFF) keep the prefix. Stable
// candidates come in contiguous runs; the lower median of the first run is
// returned, which keeps the most distance from both edges of the range.
//
// This is an offline tool for minting constants. It can take seconds and
// checks ctx between candidates.
func (a *Alphabet) FindPrefix(ctx context.Context, payloadLength int, desiredPrefix string) ([]byte, error) {
	if payloadLength <= 0 {
		return nil, fmt.Errorf("%w: payload length must be positive, got %d", ErrInvalidPayloadLength, payloadLength)
	}
	if desiredPrefix == "" || !a.Contains(desiredPrefix) {
		return nil, fmt.Errorf("%w: prefix %q", ErrInvalidCharacter, desiredPrefix)
	}

	zeros := make([]byte, payloadLength)
	ones := bytes.Repeat([]byte{0xff}, payloadLength)

	var first uint32
	for n := uint32(1); n <= MaxPrefixCandidate; n++ {
		if n&0xfff == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		stable := a.isStablePrefix(candidateBytes(n), zeros, ones, desiredPrefix)
		switch {
		case stable && first == 0:
			first = n
		case !stable && first != 0:
			return candidateBytes(first + (n-1-first)/2), nil
		}
	}
	if first != 0 {
		return candidateBytes(first + (MaxPrefixCandidate-first)/2), nil
	}

	return nil, fmt.Errorf("%w: %q for %d byte payloads", ErrPrefixNotFound, desiredPrefix, payloadLength)
}

func (a *Alphabet) isStablePrefix(version, zeros, ones []byte, desiredPrefix string) bool {
	hasPrefix := func(payload []byte) bool {
		b := make([]byte, 0, len(version)+len(payload))
		b = append(b, version...)
		b = append(b, payload...)
		return strings.HasPrefix(a.CheckEncode(b), desiredPrefix)
	}

	if !hasPrefix(zeros) || !hasPrefix(ones) {
		return false
	}

	probe := bytes.Clone(ones)
	last := len(probe) - 1
	for i := 0; i < 256; i++ {
		probe[0] = byte(i)
		if !hasPrefix(probe) {
			return false
		}
	}
	probe[0] = 0xff
	for i := 0; i < 256; i++ {
		probe[last] = byte(i)
		if !hasPrefix(probe) {
			return false
		}
	}

	return true
}

// candidateBytes writes n as a minimal big-endian byte sequence.
func candidateBytes(n uint32) []byte {
	switch {
	case n <= 0xff:
		return []byte{byte(n)}
	case n <= 0xffff:
		return []byte{byte(n >> 8), byte(n)}
	default:
		return []byte{byte(n >> 16), byte(n >> 8), byte(n)}
	}
}

// FindPrefix searches with the XRP ledger alphabet.
func FindPrefix(ctx context.Context, payloadLength int, desiredPrefix string) ([]byte, error) {
	return XRPL.FindPrefix(ctx, payloadLength, desiredPrefix)
}

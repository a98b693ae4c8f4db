package address

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/vultisig/addresscodec/codec"
	"github.com/vultisig/addresscodec/common"
)

// XAddressLength is the length of every X-address string.
const XAddressLength = 47

// X-address payload layout, after the version byte:
//
//	[0]      network byte
//	[1..20]  account ID
//	[21]     tag flag
//	[22..25] tag, little-endian
//	[26..29] reserved, zero
const (
	xAddressPayloadLength = 30

	networkByteOffset = 0
	accountIDOffset   = 1
	tagFlagOffset     = 21
	tagOffset         = 22
	reservedOffset    = 26

	mainnetNetworkByte = 0x44
	testnetNetworkByte = 0x93

	tagFlagAbsent  = 0x00
	tagFlagPresent = 0x01
)

var (
	MainnetXAddressVersion = codec.NewVersion("mainnet x-address", []byte{0x05}, xAddressPayloadLength)
	TestnetXAddressVersion = codec.NewVersion("testnet x-address", []byte{0x04}, xAddressPayloadLength)
)

// ClassicAddress is a classic address with the destination tag and network
// an X-address carries. A nil Tag means no tag.
type ClassicAddress struct {
	Address string  `json:"address"`
	Tag     *uint32 `json:"tag,omitempty"`
	IsTest  bool    `json:"is_test"`
}

func (c ClassicAddress) Network() common.Network {
	return common.NetworkFromIsTest(c.IsTest)
}

// NewTag returns a pointer to tag.
func NewTag(tag uint32) *uint32 {
	return &tag
}

// TagFromInt64 range checks a tag held in a wider integer.
func TagFromInt64(tag int64) (*uint32, error) {
	if tag < 0 || tag > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d", ErrTagOutOfRange, tag)
	}
	return NewTag(uint32(tag)), nil
}

// ParseTag parses a decimal tag. The empty string means no tag.
func ParseTag(s string) (*uint32, error) {
	if s == "" {
		return nil, nil
	}
	tag, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrTagOutOfRange, s)
	}
	return TagFromInt64(tag)
}

// EncodeXAddress encodes a classic address as an X-address. ok is false when
// the classic address itself does not decode as an account ID.
func EncodeXAddress(address ClassicAddress) (xAddress string, ok bool) {
	accountID, err := DecodeAccountID(address.Address)
	if err != nil {
		return "", false
	}
	xAddress, err = EncodeXAddressFromAccountID(accountID, address.Tag, address.IsTest)
	if err != nil {
		return "", false
	}
	return xAddress, true
}

// ClassicAddressToXAddress is EncodeXAddress with the decode error returned.
func ClassicAddressToXAddress(classicAddress string, tag *uint32, isTest bool) (string, error) {
	accountID, err := DecodeAccountID(classicAddress)
	if err != nil {
		return "", err
	}
	return EncodeXAddressFromAccountID(accountID, tag, isTest)
}

// EncodeXAddressFromAccountID encodes a 20-byte account ID as an X-address.
func EncodeXAddressFromAccountID(accountID []byte, tag *uint32, isTest bool) (string, error) {
	if len(accountID) != AccountIDVersion.ExpectedLength() {
		return "", fmt.Errorf("%w: account id must be %d bytes, got %d", codec.ErrInvalidPayloadLength, AccountIDVersion.ExpectedLength(), len(accountID))
	}

	version, networkByte := MainnetXAddressVersion, byte(mainnetNetworkByte)
	if isTest {
		version, networkByte = TestnetXAddressVersion, testnetNetworkByte
	}

	payload := make([]byte, xAddressPayloadLength)
	payload[networkByteOffset] = networkByte
	copy(payload[accountIDOffset:tagFlagOffset], accountID)
	if tag != nil {
		payload[tagFlagOffset] = tagFlagPresent
		binary.LittleEndian.PutUint32(payload[tagOffset:reservedOffset], *tag)
	}

	return codec.EncodeVersioned(payload, version)
}

// DecodeXAddress decodes an X-address back into its classic address, tag and network.
func DecodeXAddress(xAddress string) (ClassicAddress, error) {
	accountID, tag, isTest, err := DecodeXAddressToAccountID(xAddress)
	if err != nil {
		return ClassicAddress{}, err
	}

	classicAddress, err := EncodeAccountID(accountID)
	if err != nil {
		return ClassicAddress{}, err
	}

	return ClassicAddress{
		Address: classicAddress,
		Tag:     tag,
		IsTest:  isTest,
	}, nil
}

// DecodeXAddressToAccountID decodes an X-address into the raw account ID, tag and test flag.
func DecodeXAddressToAccountID(xAddress string) (accountID []byte, tag *uint32, isTest bool, err error) {
	if len(xAddress) != XAddressLength {
		return nil, nil, false, fmt.Errorf("%w: expected %d characters, got %d", ErrInvalidXAddress, XAddressLength, len(xAddress))
	}

	var (
		version     codec.Version
		networkByte byte
	)
	switch xAddress[0] {
	case 'X':
		version, networkByte = MainnetXAddressVersion, mainnetNetworkByte
	case 'T':
		version, networkByte, isTest = TestnetXAddressVersion, testnetNetworkByte, true
	default:
		return nil, nil, false, fmt.Errorf("%w: unknown network discriminator %q", ErrInvalidXAddress, xAddress[0])
	}

	decoded, err := codec.DecodeVersioned(xAddress, version)
	if err != nil {
		return nil, nil, false, fmt.Errorf("invalid x-address: %w", err)
	}

	payload := decoded.Payload()
	if payload[networkByteOffset] != networkByte {
		return nil, nil, false, fmt.Errorf("%w: network byte %#x", ErrUnsupportedXAddress, payload[networkByteOffset])
	}
	if !isZero(payload[reservedOffset:]) {
		return nil, nil, false, fmt.Errorf("%w: reserved bytes must be zero", ErrUnsupportedXAddress)
	}

	tagBytes := payload[tagOffset:reservedOffset]
	switch payload[tagFlagOffset] {
	case tagFlagPresent:
		tag = NewTag(binary.LittleEndian.Uint32(tagBytes))
	case tagFlagAbsent:
		if !isZero(tagBytes) {
			return nil, nil, false, fmt.Errorf("%w: tag bytes set without tag flag", ErrUnsupportedXAddress)
		}
	default:
		return nil, nil, false, fmt.Errorf("%w: tag flag %#x", ErrUnsupportedXAddress, payload[tagFlagOffset])
	}

	return payload[accountIDOffset:tagFlagOffset], tag, isTest, nil
}

// IsValidXAddress reports whether xAddress decodes. It never returns an error.
func IsValidXAddress(xAddress string) bool {
	_, _, _, err := DecodeXAddressToAccountID(xAddress)
	return err == nil
}

func isZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

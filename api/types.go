// Package api holds the JSON bodies exchanged by the HTTP server and client.
package api

import (
	"github.com/vultisig/addresscodec/common"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type EncodeXAddressRequest struct {
	Address string `json:"address"`
	Tag     *int64 `json:"tag,omitempty"` // range checked by the server
	IsTest  bool   `json:"is_test"`
}

type EncodeXAddressResponse struct {
	XAddress string `json:"x_address"`
}

type DecodeXAddressResponse struct {
	Address string         `json:"address"`
	Tag     *uint32        `json:"tag,omitempty"`
	IsTest  bool           `json:"is_test"`
	Network common.Network `json:"network"`
}

type ValidateResponse struct {
	Valid bool `json:"valid"`
}

type EncodeSeedRequest struct {
	EntropyHex string         `json:"entropy_hex"`
	KeyType    common.KeyType `json:"key_type"`
}

type EncodeSeedResponse struct {
	Seed string `json:"seed"`
}

type DecodeSeedResponse struct {
	EntropyHex string         `json:"entropy_hex"`
	KeyType    common.KeyType `json:"key_type"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

package server

import (
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vultisig/addresscodec/address"
	"github.com/vultisig/addresscodec/api"
)

const (
	opEncodeXAddress  = "encode_xaddress"
	opDecodeXAddress  = "decode_xaddress"
	opValidateClassic = "validate_classic"
	opEncodeSeed      = "encode_seed"
	opDecodeSeed      = "decode_seed"
	opInspect         = "inspect"

	statusHealthy    = "ok"
	errMalformedBody = "malformed request body"
)

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
}

func (s *Server) healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, api.HealthResponse{Status: statusHealthy})
}

func (s *Server) encodeXAddress(c echo.Context) error {
	var req api.EncodeXAddressRequest
	if err := c.Bind(&req); err != nil {
		s.metrics.observe(opEncodeXAddress, err)
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: errMalformedBody})
	}

	xAddress, err := func() (string, error) {
		var tag *uint32
		if req.Tag != nil {
			t, err := address.TagFromInt64(*req.Tag)
			if err != nil {
				return "", err
			}
			tag = t
		}
		return address.ClassicAddressToXAddress(req.Address, tag, req.IsTest)
	}()
	s.metrics.observe(opEncodeXAddress, err)
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusOK, api.EncodeXAddressResponse{XAddress: xAddress})
}

func (s *Server) decodeXAddress(c echo.Context) error {
	classic, err := address.DecodeXAddress(c.Param("xaddress"))
	s.metrics.observe(opDecodeXAddress, err)
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusOK, api.DecodeXAddressResponse{
		Address: classic.Address,
		Tag:     classic.Tag,
		IsTest:  classic.IsTest,
		Network: classic.Network(),
	})
}

func (s *Server) validateClassicAddress(c echo.Context) error {
	valid := address.IsValidClassicAddress(c.Param("address"))
	s.metrics.observe(opValidateClassic, nil)
	return c.JSON(http.StatusOK, api.ValidateResponse{Valid: valid})
}

func (s *Server) encodeSeed(c echo.Context) error {
	var req api.EncodeSeedRequest
	if err := c.Bind(&req); err != nil {
		s.metrics.observe(opEncodeSeed, err)
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: errMalformedBody})
	}

	seed, err := func() (string, error) {
		entropy, err := hex.DecodeString(req.EntropyHex)
		if err != nil {
			return "", fmt.Errorf("invalid entropy hex: %w", err)
		}
		return address.EncodeSeed(entropy, req.KeyType)
	}()
	s.metrics.observe(opEncodeSeed, err)
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusOK, api.EncodeSeedResponse{Seed: seed})
}

func (s *Server) decodeSeed(c echo.Context) error {
	entropy, keyType, err := address.DecodeSeed(c.Param("seed"))
	s.metrics.observe(opDecodeSeed, err)
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusOK, api.DecodeSeedResponse{
		EntropyHex: hex.EncodeToString(entropy),
		KeyType:    keyType,
	})
}

func (s *Server) inspect(c echo.Context) error {
	info, err := address.Inspect(c.Param("value"))
	s.metrics.observe(opInspect, err)
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusOK, info)
}

package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/vultisig/addresscodec/address"
	"github.com/vultisig/addresscodec/api"
	"github.com/vultisig/addresscodec/common"
	"github.com/vultisig/addresscodec/internal/libhttp"
)

// Client talks to an addresscodec HTTP server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) getHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
}

func (c *Client) EncodeXAddress(ctx context.Context, classicAddress string, tag *uint32, isTest bool) (string, error) {
	req := api.EncodeXAddressRequest{
		Address: classicAddress,
		IsTest:  isTest,
	}
	if tag != nil {
		t := int64(*tag)
		req.Tag = &t
	}

	result, err := libhttp.Call[api.EncodeXAddressResponse](
		ctx,
		c.httpClient,
		http.MethodPost,
		c.baseURL+"/v1/xaddress/encode",
		c.getHeaders(),
		req,
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("failed to encode x-address: %w", err)
	}
	return result.XAddress, nil
}

func (c *Client) DecodeXAddress(ctx context.Context, xAddress string) (address.ClassicAddress, error) {
	result, err := libhttp.Call[api.DecodeXAddressResponse](
		ctx,
		c.httpClient,
		http.MethodGet,
		c.baseURL+"/v1/xaddress/"+url.PathEscape(xAddress),
		c.getHeaders(),
		nil,
		nil,
	)
	if err != nil {
		return address.ClassicAddress{}, fmt.Errorf("failed to decode x-address: %w", err)
	}
	return address.ClassicAddress{
		Address: result.Address,
		Tag:     result.Tag,
		IsTest:  result.IsTest,
	}, nil
}

func (c *Client) ValidateClassicAddress(ctx context.Context, classicAddress string) (bool, error) {
	result, err := libhttp.Call[api.ValidateResponse](
		ctx,
		c.httpClient,
		http.MethodGet,
		c.baseURL+"/v1/classic/"+url.PathEscape(classicAddress)+"/validate",
		c.getHeaders(),
		nil,
		nil,
	)
	if err != nil {
		return false, fmt.Errorf("failed to validate classic address: %w", err)
	}
	return result.Valid, nil
}

func (c *Client) EncodeSeed(ctx context.Context, entropyHex string, keyType common.KeyType) (string, error) {
	result, err := libhttp.Call[api.EncodeSeedResponse](
		ctx,
		c.httpClient,
		http.MethodPost,
		c.baseURL+"/v1/seed/encode",
		c.getHeaders(),
		api.EncodeSeedRequest{EntropyHex: entropyHex, KeyType: keyType},
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("failed to encode seed: %w", err)
	}
	return result.Seed, nil
}

func (c *Client) DecodeSeed(ctx context.Context, seed string) (api.DecodeSeedResponse, error) {
	result, err := libhttp.Call[api.DecodeSeedResponse](
		ctx,
		c.httpClient,
		http.MethodGet,
		c.baseURL+"/v1/seed/"+url.PathEscape(seed),
		c.getHeaders(),
		nil,
		nil,
	)
	if err != nil {
		return api.DecodeSeedResponse{}, fmt.Errorf("failed to decode seed: %w", err)
	}
	return result, nil
}

func (c *Client) Inspect(ctx context.Context, value string) (address.Info, error) {
	result, err := libhttp.Call[address.Info](
		ctx,
		c.httpClient,
		http.MethodGet,
		c.baseURL+"/v1/inspect/"+url.PathEscape(value),
		c.getHeaders(),
		nil,
		nil,
	)
	if err != nil {
		return address.Info{}, fmt.Errorf("failed to inspect value: %w", err)
	}
	return result, nil
}

func (c *Client) Health(ctx context.Context) error {
	result, err := libhttp.Call[api.HealthResponse](
		ctx,
		c.httpClient,
		http.MethodGet,
		c.baseURL+"/healthz",
		c.getHeaders(),
		nil,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to check health: %w", err)
	}
	if result.Status != "ok" {
		return fmt.Errorf("server unhealthy: %s", result.Status)
	}
	return nil
}

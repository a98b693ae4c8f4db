package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vultisig/addresscodec/address"
	"github.com/vultisig/addresscodec/common"
	"github.com/vultisig/addresscodec/internal/libhttp"
	"github.com/vultisig/addresscodec/internal/server"
)

const testClassicAddress = "rGWrZyQqhTp9Xu7G5Pkayo7bXjH4k4QYpf"

func newTestClient(t *testing.T) *Client {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	srv := httptest.NewServer(server.NewServer(":0", time.Second, logrus.NewEntry(logger)).Handler())
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", srv.Client())
}

func TestXAddress(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	xAddress, err := c.EncodeXAddress(ctx, testClassicAddress, address.NewTag(1), false)
	require.NoError(t, err)
	assert.Equal(t, "XVLhHMPHU98es4dbozjVtdWzVrDjtV8xvjGQTYPiAx6gwDC", xAddress)

	got, err := c.DecodeXAddress(ctx, xAddress)
	require.NoError(t, err)
	assert.Equal(t, address.ClassicAddress{Address: testClassicAddress, Tag: address.NewTag(1)}, got)

	_, err = c.EncodeXAddress(ctx, "rGWrZyQqhTp9Xu7G5Pkayo7bXjH4k4QYpg", nil, true)
	var apiErr *libhttp.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "checksum")

	_, err = c.DecodeXAddress(ctx, testClassicAddress)
	require.True(t, errors.As(err, &apiErr))
	assert.Contains(t, apiErr.Message, "invalid x-address")
}

func TestValidateClassicAddress(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	valid, err := c.ValidateClassicAddress(ctx, testClassicAddress)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = c.ValidateClassicAddress(ctx, "sp6JS7f14BuwFY8Mw6bTtLKWauoUs")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestSeed(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	seed, err := c.EncodeSeed(ctx, "00000000000000000000000000000000", common.ED25519)
	require.NoError(t, err)
	assert.Equal(t, "sEdSJHS4oiAdz7w2X2ni1gFiqtbJHqE", seed)

	decoded, err := c.DecodeSeed(ctx, seed)
	require.NoError(t, err)
	assert.Equal(t, "00000000000000000000000000000000", decoded.EntropyHex)
	assert.Equal(t, common.ED25519, decoded.KeyType)

	_, err = c.EncodeSeed(ctx, "00", common.SECP256K1)
	assert.Error(t, err)
}

func TestInspectAndHealth(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Health(ctx))

	info, err := c.Inspect(ctx, "TVE26TYGhfLC7tQDno7G8dGtxSkYQnSy8RHqGHoGJ59spi2")
	require.NoError(t, err)
	assert.Equal(t, address.KindXAddress, info.Kind)
	assert.Equal(t, testClassicAddress, info.ClassicAddress)
	require.NotNil(t, info.Tag)
	assert.Equal(t, uint32(0), *info.Tag)
	require.NotNil(t, info.Network)
	assert.Equal(t, common.Testnet, *info.Network)
}

package libhttp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoBody struct {
	Method string            `json:"method"`
	Query  map[string]string `json:"query"`
	Header string            `json:"header"`
	Body   map[string]string `json:"body"`
}

func TestCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/echo":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			_ = json.NewEncoder(w).Encode(echoBody{
				Method: r.Method,
				Query:  map[string]string{"tag": r.URL.Query().Get("tag")},
				Header: r.Header.Get("X-Test"),
				Body:   body,
			})
		case "/empty":
			w.WriteHeader(http.StatusNoContent)
		case "/fail":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid x-address"}`))
		case "/plain":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("boom\n"))
		}
	}))
	defer srv.Close()

	ctx := context.Background()

	got, err := Call[echoBody](ctx, srv.Client(), http.MethodPost, srv.URL+"/echo",
		map[string]string{"X-Test": "yes"},
		map[string]string{"address": "r1"},
		map[string]string{"tag": "7"},
	)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "7", got.Query["tag"])
	assert.Equal(t, "yes", got.Header)
	assert.Equal(t, "r1", got.Body["address"])

	empty, err := Call[*echoBody](ctx, nil, http.MethodGet, srv.URL+"/empty", nil, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, empty)

	_, err = Call[echoBody](ctx, srv.Client(), http.MethodGet, srv.URL+"/fail", nil, nil, nil)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "invalid x-address", apiErr.Message)

	_, err = Call[echoBody](ctx, srv.Client(), http.MethodGet, srv.URL+"/plain", nil, nil, nil)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "boom", apiErr.Message)
}

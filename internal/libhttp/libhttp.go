package libhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	stdurl "net/url"
)

// APIError is returned by Call for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("failed to get successful response: status_code: %d, error: %s", e.StatusCode, e.Message)
}

func Call[T any](
	ctx context.Context,
	client *http.Client,
	method, url string,
	headers map[string]string,
	body any,
	query map[string]string,
) (T, error) {
	var reqBodyBytes []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return *new(T), fmt.Errorf("failed to marshal request json: %w", err)
		}
		reqBodyBytes = b
	}

	var q string
	if query != nil {
		qurl := stdurl.Values{}
		for k, v := range query {
			qurl.Set(k, v)
		}
		q = "?" + qurl.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, url+q, bytes.NewReader(reqBodyBytes))
	if err != nil {
		return *new(T), fmt.Errorf("failed to build http request: %w", err)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return *new(T), fmt.Errorf("failed to make http call: %w", err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	bodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return *new(T), fmt.Errorf("failed to read response body: %w", err)
	}
	// Treat any 2xx as success
	if res.StatusCode < http.StatusOK || res.StatusCode >= 300 {
		return *new(T), &APIError{
			StatusCode: res.StatusCode,
			Message:    errorMessage(bodyBytes),
		}
	}
	// Handle responses with no content gracefully
	if len(bodyBytes) == 0 {
		var zero T
		return zero, nil
	}

	var r T
	err = json.Unmarshal(bodyBytes, &r)
	if err != nil {
		return *new(T), fmt.Errorf("failed to unmarshal response json: %w", err)
	}

	return r, nil
}

// errorMessage extracts {"error": "..."} or {"message": "..."} and falls back to the raw body.
func errorMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return string(bytes.TrimSpace(body))
}

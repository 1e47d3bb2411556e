// Package places is a client for the Places Details web service.
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const detailsPath = "/maps/api/place/details/json"

var (
	// ErrNotFound means the API had no place for the identifier.
	ErrNotFound = errors.New("place not found")
)

// APIError is a non-OK status reported in the response body.
type APIError struct {
	Status  string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("places API status %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("places API status %s", e.Status)
}

// Client looks up a single place by identifier.
type Client interface {
	Details(ctx context.Context, apiKey, placeID string, fields []string) (*PlaceResult, error)
}

type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string, client *http.Client) *HTTPClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (c *HTTPClient) Details(ctx context.Context, apiKey, placeID string, fields []string) (*PlaceResult, error) {
	endpoint, err := url.Parse(c.baseURL + detailsPath)
	if err != nil {
		return nil, fmt.Errorf("invalid places base url: %w", err)
	}
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", strings.Join(fields, ","))
	params.Set("key", apiKey)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request: %w", redactKey(err, apiKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("places API returned %d", resp.StatusCode)
	}

	var envelope struct {
		Status       string          `json:"status"`
		ErrorMessage string          `json:"error_message"`
		Result       json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode places response: %w", err)
	}

	switch envelope.Status {
	case "OK":
	case "NOT_FOUND", "ZERO_RESULTS":
		return nil, ErrNotFound
	default:
		return nil, &APIError{Status: envelope.Status, Message: envelope.ErrorMessage}
	}

	if isEmptyObject(envelope.Result) {
		return nil, ErrNotFound
	}

	var result PlaceResult
	if err := json.Unmarshal(envelope.Result, &result); err != nil {
		return nil, fmt.Errorf("decode place result: %w", err)
	}
	return &result, nil
}

func isEmptyObject(raw json.RawMessage) bool {
	if len(raw) == 0 || string(raw) == "null" {
		return true
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return false
	}
	return len(fields) == 0
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }

func (e *redactedError) Unwrap() error { return e.err }

// redactKey strips the key from transport errors, which quote the request URL.
func redactKey(err error, apiKey string) error {
	if apiKey == "" || !strings.Contains(err.Error(), apiKey) {
		return err
	}
	return &redactedError{msg: strings.ReplaceAll(err.Error(), apiKey, "REDACTED"), err: err}
}

// Package client talks to the resource converter backend over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"resource-converter/internal/domain"
)

const requestIDHeader = "X-Request-ID"

// Client is a thin JSON client for the backend API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// NewClient creates a client. timeout bounds every call, including reading the body.
func NewClient(baseURL string, timeout time.Duration) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{Timeout: timeout}).DialContext
	transport.TLSHandshakeTimeout = timeout

	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Transport: transport,
		},
		Timeout: timeout,
	}
}

// ErrorResponse is the JSON error body returned by the backend.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// APIError is returned for any non-2xx answer.
type APIError struct {
	Status    int
	Message   string
	Fields    map[string]string
	RequestID string
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.RequestID != "" {
		return fmt.Sprintf("API error %d: %s (request_id: %s)", e.Status, msg, e.RequestID)
	}
	return fmt.Sprintf("API error %d: %s", e.Status, msg)
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// TestConnection sends the profile to the backend and returns its text answer.
func (c *Client) TestConnection(ctx context.Context, p domain.ConnectionProfile) (string, error) {
	return c.postText(ctx, "/api/db/test", p)
}

// Labels returns the label endpoints.
func (c *Client) Labels() *ResourceAPI[domain.LabelRow] {
	return &ResourceAPI[domain.LabelRow]{
		client:       c,
		base:         "/api/labels",
		downloadPath: "/api/labels/properties/download",
		downloadBody: func(rows []domain.LabelRow, slot domain.Slot) interface{} {
			return domain.LabelDownloadRequest{Labels: rows, Lang: slot}
		},
	}
}

// ErrorMessages returns the error message endpoints.
func (c *Client) ErrorMessages() *ResourceAPI[domain.ErrorMessageRow] {
	return &ResourceAPI[domain.ErrorMessageRow]{
		client:       c,
		base:         "/api/error-messages",
		downloadPath: "/api/error-messages/xml/download",
		downloadBody: func(rows []domain.ErrorMessageRow, slot domain.Slot) interface{} {
			return domain.ErrorDownloadRequest{Messages: rows, Lang: slot}
		},
	}
}

// ResourceAPI groups the fetch and download endpoints of one resource kind.
type ResourceAPI[T any] struct {
	client       *Client
	base         string
	downloadPath string
	downloadBody func(rows []T, slot domain.Slot) interface{}
}

// Fetch returns one page of rows.
func (a *ResourceAPI[T]) Fetch(ctx context.Context, req domain.FetchRequest) (domain.PagedResult[T], error) {
	var result domain.PagedResult[T]
	err := a.client.postJSON(ctx, a.base+"/fetch", req, &result)
	return result, err
}

// FetchIDs returns every ID matching the filter.
func (a *ResourceAPI[T]) FetchIDs(ctx context.Context, req domain.IDsRequest) ([]string, error) {
	var ids []string
	if err := a.client.postJSON(ctx, a.base+"/fetch/ids", req, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// FetchByIDs returns exactly the requested rows.
func (a *ResourceAPI[T]) FetchByIDs(ctx context.Context, req domain.ByIDsRequest) ([]T, error) {
	var rows []T
	if err := a.client.postJSON(ctx, a.base+"/fetch/by-ids", req, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Download asks the backend to render rows in one language slot.
func (a *ResourceAPI[T]) Download(ctx context.Context, rows []T, slot domain.Slot) (string, error) {
	if rows == nil {
		rows = []T{}
	}
	return a.client.postText(ctx, a.downloadPath, a.downloadBody(rows, slot))
}

func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	respBody, err := c.post(ctx, path, body)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) postText(ctx context.Context, path string, body interface{}) (string, error) {
	respBody, err := c.post(ctx, path, body)
	if err != nil {
		return "", err
	}
	return string(respBody), nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}) ([]byte, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, uuid.New().String())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", path, err)
	}

	if resp.StatusCode >= 400 {
		var errResp ErrorResponse
		_ = json.Unmarshal(data, &errResp)
		msg := errResp.Error
		if msg == "" {
			msg = strings.TrimSpace(string(data))
		}
		return nil, &APIError{
			Status:    resp.StatusCode,
			Message:   msg,
			Fields:    errResp.Fields,
			RequestID: resp.Header.Get(requestIDHeader),
		}
	}

	return data, nil
}

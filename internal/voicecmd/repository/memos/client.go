package memos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client is the HTTP wrapper for the Memos REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new Memos HTTP client.
func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{},
	}
}

// APIError is a non-200 answer from Memos.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("memos API %s error %d: %s", e.Op, e.StatusCode, e.Body)
}

// CreateMemo creates a new memo via POST /api/v1/memos.
func (c *Client) CreateMemo(ctx context.Context, req CreateMemoRequest) (*Memo, error) {
	endpoint := fmt.Sprintf("%s/api/v1/memos", c.baseURL)
	return c.send(ctx, "create", http.MethodPost, endpoint, req)
}

// GetMemo fetches a single memo by its ID ("123" or "memos/123").
func (c *Client) GetMemo(ctx context.Context, id string) (*Memo, error) {
	endpoint := fmt.Sprintf("%s/api/v1/memos/%s", c.baseURL, url.PathEscape(memoID(id)))
	return c.send(ctx, "get", http.MethodGet, endpoint, nil)
}

// UpdateMemo patches the fields named by req.UpdateMask via PATCH /api/v1/memos/{id}.
func (c *Client) UpdateMemo(ctx context.Context, id string, req UpdateMemoRequest) (*Memo, error) {
	mask := req.UpdateMask
	if mask == "" {
		mask = "content"
	}
	endpoint := fmt.Sprintf("%s/api/v1/memos/%s?updateMask=%s",
		c.baseURL, url.PathEscape(memoID(id)), url.QueryEscape(mask))
	return c.send(ctx, "update", http.MethodPatch, endpoint, req)
}

func (c *Client) send(ctx context.Context, op, method, endpoint string, payload any) (*Memo, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s memo request: %w", op, err)
		}
		body = bytes.NewBuffer(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s memo request: %w", op, err)
	}
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call memos %s API: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &APIError{Op: op, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var memo Memo
	if err := json.NewDecoder(resp.Body).Decode(&memo); err != nil {
		return nil, fmt.Errorf("failed to decode memos %s response: %w", op, err)
	}
	return &memo, nil
}

// memoID strips the "memos/" resource prefix.
func memoID(id string) string {
	return strings.TrimPrefix(strings.TrimSpace(id), "memos/")
}

// ---- Request/Response types scoped to this package ----

// CreateMemoRequest is the body for POST /api/v1/memos.
type CreateMemoRequest struct {
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
}

// UpdateMemoRequest is the body for PATCH /api/v1/memos/{id}.
type UpdateMemoRequest struct {
	Content    string `json:"content"`
	UpdateMask string `json:"-"`
}

// Memo is the Memos API memo object.
type Memo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	UID        string `json:"uid"`
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
	CreateTime string `json:"createTime"`
	UpdateTime string `json:"updateTime"`
}

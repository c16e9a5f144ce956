// Package webstore talks to the remote keyed JSON collection that persists
// the shopping list. The collection lives at {base}/{collection}.json and maps
// server-assigned string keys to item records.
package webstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Record is the wire form of an item. The category travels by display name.
type Record struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Category string `json:"category"`
}

// TransportError reports a failed round trip: a non-2xx status, a request
// that never completed, or a body that did not decode.
type TransportError struct {
	Op     string // "load" | "create" | "delete"
	URL    string
	Status int // 0 when no response was received
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s %s: status %d", e.Op, e.URL, e.Status)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client issues one round trip per operation. No retries; the caller decides
// what a failure means for local state.
type Client struct {
	base       string
	collection string
	hc         *http.Client
	log        *zap.Logger
}

func New(baseURL, collection string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		base:       strings.TrimRight(baseURL, "/"),
		collection: strings.Trim(collection, "/"),
		hc:         &http.Client{Timeout: timeout},
		log:        log,
	}
}

func (c *Client) collectionURL() string {
	return fmt.Sprintf("%s/%s.json", c.base, c.collection)
}

func (c *Client) itemURL(key string) string {
	return fmt.Sprintf("%s/%s/%s.json", c.base, c.collection, key)
}

// LoadAll fetches the whole collection. A literal "null" body is the store's
// way of saying the collection does not exist yet; that is an empty result,
// not an error.
func (c *Client) LoadAll(ctx context.Context) (map[string]Record, error) {
	url := c.collectionURL()
	body, terr := c.do(ctx, http.MethodGet, "load", url, nil)
	if terr != nil {
		return nil, terr
	}
	if string(bytes.TrimSpace(body)) == "null" {
		c.log.Debug("collection empty", zap.String("url", url))
		return map[string]Record{}, nil
	}
	var records map[string]Record
	if err := json.Unmarshal(body, &records); err != nil {
		c.log.Warn("malformed collection body", zap.String("url", url), zap.Error(err))
		return nil, &TransportError{Op: "load", URL: url, Err: fmt.Errorf("decode collection: %w", err)}
	}
	c.log.Debug("collection loaded", zap.String("url", url), zap.Int("records", len(records)))
	return records, nil
}

// Create persists a record and returns the key the store assigned to it.
func (c *Client) Create(ctx context.Context, rec Record) (string, error) {
	url := c.collectionURL()
	payload, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	body, terr := c.do(ctx, http.MethodPost, "create", url, payload)
	if terr != nil {
		return "", terr
	}
	// Success body is {"name": "<assigned-key>"}.
	var resp struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &TransportError{Op: "create", URL: url, Err: fmt.Errorf("decode create response: %w", err)}
	}
	if resp.Name == "" {
		return "", &TransportError{Op: "create", URL: url, Err: fmt.Errorf("create response missing key")}
	}
	c.log.Debug("record created", zap.String("key", resp.Name))
	return resp.Name, nil
}

// Delete removes the record stored under key. Any 2xx means the record is
// gone; a failure tells the caller to undo whatever it changed optimistically.
func (c *Client) Delete(ctx context.Context, key string) error {
	url := c.itemURL(key)
	if _, terr := c.do(ctx, http.MethodDelete, "delete", url, nil); terr != nil {
		return terr
	}
	c.log.Debug("record deleted", zap.String("key", key))
	return nil
}

func (c *Client) do(ctx context.Context, method, op, url string, payload []byte) ([]byte, *TransportError) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, &TransportError{Op: op, URL: url, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn("request failed", zap.String("op", op), zap.String("url", url), zap.Error(err))
		return nil, &TransportError{Op: op, URL: url, Err: err}
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, URL: url, Err: fmt.Errorf("read body: %w", err)}
	}
	// The store promises nothing about failure bodies, so status is all we
	// report.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("request rejected", zap.String("op", op), zap.String("url", url), zap.Int("status", resp.StatusCode))
		return nil, &TransportError{Op: op, URL: url, Status: resp.StatusCode}
	}
	return body, nil
}

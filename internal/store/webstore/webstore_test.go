package webstore

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, "shopping-list", 2*time.Second, nil)
}

func TestLoadAllNullSentinel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/shopping-list.json", r.URL.Path)
		io.WriteString(w, "null")
	})

	records, err := c.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestLoadAllRecords(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"k1":{"name":"Milk","quantity":1,"category":"Dairy"}}`)
	})

	records, err := c.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, Record{Name: "Milk", Quantity: 1, Category: "Dairy"}, records["k1"])
}

func TestLoadAllServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.LoadAll(context.Background())
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "load", terr.Op)
	assert.Equal(t, http.StatusInternalServerError, terr.Status)
}

func TestLoadAllMalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"k1": not json`)
	})

	_, err := c.LoadAll(context.Background())
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Zero(t, terr.Status)
}

func TestCreate(t *testing.T) {
	var posted Record
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/shopping-list.json", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
		io.WriteString(w, `{"name":"k2"}`)
	})

	key, err := c.Create(context.Background(), Record{Name: "Bananas", Quantity: 5, Category: "Fruit"})
	require.NoError(t, err)
	assert.Equal(t, "k2", key)
	assert.Equal(t, Record{Name: "Bananas", Quantity: 5, Category: "Fruit"}, posted)
}

func TestCreateServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	})

	_, err := c.Create(context.Background(), Record{Name: "Bananas", Quantity: 5, Category: "Fruit"})
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "create", terr.Op)
	assert.Equal(t, http.StatusForbidden, terr.Status)
}

func TestCreateMissingKey(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{}`)
	})

	_, err := c.Create(context.Background(), Record{Name: "Bananas", Quantity: 5, Category: "Fruit"})
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
}

func TestDelete(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/shopping-list/k1.json", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.Delete(context.Background(), "k1"))
}

func TestDeleteServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone wrong", http.StatusBadGateway)
	})

	err := c.Delete(context.Background(), "k1")
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "delete", terr.Op)
}

func TestRequestNeverCompletes(t *testing.T) {
	// Point at a server that is already gone.
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url, "shopping-list", time.Second, nil)
	_, err := c.LoadAll(context.Background())
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Zero(t, terr.Status)
	assert.Error(t, terr.Unwrap())
}

func TestURLTrimming(t *testing.T) {
	c := New("http://example.test/", "/shopping-list/", time.Second, nil)
	assert.Equal(t, "http://example.test/shopping-list.json", c.collectionURL())
	assert.Equal(t, "http://example.test/shopping-list/k1.json", c.itemURL("k1"))
}

package reader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zfetch/internal/detect"
	"zfetch/internal/fetch"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	// The proxy prefix is concatenated with the target URL; the test server
	// just ignores the path.
	return NewWithPrefix(srv.URL+"/", detect.New())
}

func TestFetchSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "zfetch/1.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "text/plain", r.Header.Get("Accept"))
		w.Write([]byte("# A Fine Article\n\nBody text here."))
	})

	out := c.Fetch(context.Background(), "https://example.com/post")

	require.True(t, out.Success())
	assert.Equal(t, "A Fine Article", out.Title)
	assert.Contains(t, out.Content, "Body text here.")
}

func TestFetchTitleFallsBackToHost(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("no heading in this body, just prose long enough to matter"))
	})

	out := c.Fetch(context.Background(), "https://example.com/post")

	require.True(t, out.Success())
	assert.Equal(t, "example.com", out.Title)
}

func TestFetchLoginWall(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Welcome!\n\nContinue with Google\n\nLog in"))
	})

	out := c.Fetch(context.Background(), "https://example.com/post")

	require.False(t, out.Success())
	assert.Equal(t, fetch.KindLoginWall, out.Err.Kind)
	assert.Contains(t, out.Err.Message, "login page")
}

func TestFetchHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	})

	out := c.Fetch(context.Background(), "https://example.com/post")

	require.False(t, out.Success())
	assert.Equal(t, fetch.KindTransport, out.Err.Kind)
	assert.Contains(t, out.Err.Message, "404")
}

func TestFetchConnectionError(t *testing.T) {
	c := NewWithPrefix("http://127.0.0.1:1/", detect.New())

	out := c.Fetch(context.Background(), "https://example.com/post")

	require.False(t, out.Success())
	assert.Equal(t, fetch.KindTransport, out.Err.Kind)
}

package connector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_PostForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "user", user)
		assert.Equal(t, "secret", pass)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "hello", r.PostForm.Get("Body"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewHTTPClient(HTTPClientConfig{Timeout: time.Second})
	resp, err := client.PostForm(context.Background(), server.URL, url.Values{"Body": {"hello"}},
		&BasicAuth{Username: "user", Password: "secret"})

	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body))
}

func TestHTTPClient_Do_NoRetryOnServerError(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewHTTPClient(HTTPClientConfig{})
	resp, err := client.Do(context.Background(), &HTTPRequest{Method: http.MethodGet, URL: server.URL})

	require.NoError(t, err)
	assert.False(t, resp.IsSuccess())
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestHTTPClient_Do_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	client := NewHTTPClient(HTTPClientConfig{Timeout: time.Second})
	_, err := client.Do(context.Background(), &HTTPRequest{Method: http.MethodGet, URL: addr})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "execute request")
}

func TestNewHTTPClient_Defaults(t *testing.T) {
	client := NewHTTPClient(HTTPClientConfig{})

	assert.Equal(t, 30*time.Second, client.config.Timeout)
	assert.Equal(t, 5*time.Second, client.config.DialTimeout)
	assert.Equal(t, 10, client.config.MaxIdleConnsPerHost)
}

package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_DoJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/echo":
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "anon", r.Header.Get("apikey"))
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			var in map[string]string
			_ = json.NewDecoder(r.Body).Decode(&in)
			_ = json.NewEncoder(w).Encode(map[string]string{"got": in["name"]})
		case "/empty":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"msg":"bad"}`))
		}
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL+"/", time.Second)
	require.NoError(t, err)
	c.Headers = map[string]string{"apikey": "anon"}
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		var out map[string]string
		err := c.DoJSON(ctx, http.MethodPost, "echo", map[string]string{"Authorization": "Bearer tok"}, map[string]string{"name": "Rex"}, &out)
		require.NoError(t, err)
		assert.Equal(t, "Rex", out["got"])
	})

	t.Run("empty body", func(t *testing.T) {
		var out map[string]string
		assert.NoError(t, c.DoJSON(ctx, http.MethodGet, "/empty", nil, nil, &out))
		assert.Nil(t, out)
	})

	t.Run("non-2xx", func(t *testing.T) {
		err := c.DoJSON(ctx, http.MethodGet, "/fail", nil, nil, nil)
		var httpErr *HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
		assert.Equal(t, `{"msg":"bad"}`, httpErr.Body)
	})

	t.Run("absolute url", func(t *testing.T) {
		assert.NoError(t, New(0).DoJSON(ctx, http.MethodGet, srv.URL+"/empty", nil, nil, nil))
	})
}

func TestClient_ResolveURL(t *testing.T) {
	c := New(0)
	_, err := c.resolveURL("")
	assert.Error(t, err)
	_, err = c.resolveURL("/x")
	assert.EqualError(t, err, "httpclient: relative path requires BaseURL")

	_, err = NewWithBaseURL("not a url", 0)
	assert.Error(t, err)
}

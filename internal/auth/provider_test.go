package auth

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

	"petparrk/internal/config"
)

func newTestProvider(t *testing.T, h http.HandlerFunc) *GoTrueClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewGoTrueClient(config.AuthConfig{ProviderURL: srv.URL, AnonKey: "anon-key"}, time.Second)
	require.NoError(t, err)
	return c
}

func TestGoTrueClient_SignIn(t *testing.T) {
	c := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in["password"] != "correct-horse" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"bearer","expires_in":3600,"refresh_token":"ref","user":{"id":"u1","email":"jane@example.com"}}`))
	})
	ctx := context.Background()

	s, err := c.SignIn(ctx, "jane@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "tok", s.AccessToken)
	assert.Equal(t, "u1", s.User.ID)

	_, err = c.SignIn(ctx, "jane@example.com", "wrong")
	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "Invalid login credentials", perr.Message)
	assert.Equal(t, http.StatusBadRequest, perr.StatusCode)
}

func TestGoTrueClient_AccountCalls(t *testing.T) {
	var calls []string
	c := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.URL.Path {
		case "/auth/v1/signup":
			var in struct {
				Data map[string]string `json:"data"`
			}
			_ = json.NewDecoder(r.Body).Decode(&in)
			assert.Equal(t, "Jane", in.Data["full_name"])
		case "/auth/v1/recover":
			assert.Equal(t, "https://app/reset-password", r.URL.Query().Get("redirect_to"))
		case "/auth/v1/user", "/auth/v1/logout":
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		}
		w.WriteHeader(http.StatusOK)
	})
	ctx := context.Background()

	require.NoError(t, c.SignUp(ctx, "jane@example.com", "password1", "Jane"))
	require.NoError(t, c.Recover(ctx, "jane@example.com", "https://app/reset-password"))
	require.NoError(t, c.UpdatePassword(ctx, "tok", "password2"))
	require.NoError(t, c.UpdateEmail(ctx, "tok", "new@example.com"))
	require.NoError(t, c.SignOut(ctx, "tok"))

	assert.Equal(t, []string{
		"POST /auth/v1/signup",
		"POST /auth/v1/recover",
		"PUT /auth/v1/user",
		"PUT /auth/v1/user",
		"POST /auth/v1/logout",
	}, calls)
}

func TestGoTrueClient_ErrorMessages(t *testing.T) {
	c := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/signup":
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"code":422,"msg":"User already registered"}`))
		default:
			w.WriteHeader(http.StatusTooManyRequests)
		}
	})
	ctx := context.Background()

	err := c.SignUp(ctx, "jane@example.com", "password1", "")
	assert.EqualError(t, err, "User already registered")

	err = c.Recover(ctx, "jane@example.com", "")
	assert.EqualError(t, err, "Too Many Requests")
}

func TestGoTrueClient_AuthorizeURL(t *testing.T) {
	c, err := NewGoTrueClient(config.AuthConfig{ProviderURL: "https://auth.example.com/", AnonKey: "k"}, 0)
	require.NoError(t, err)

	assert.Equal(t,
		"https://auth.example.com/auth/v1/authorize?provider=google&redirect_to=https%3A%2F%2Fapp%2Fauth%2Fcallback",
		c.AuthorizeURL("google", "https://app/auth/callback"))
	assert.Equal(t, "https://auth.example.com/auth/v1/authorize?provider=google", c.AuthorizeURL("google", ""))
}

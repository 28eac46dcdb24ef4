package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-at-least-16"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func validClaims() Claims {
	return Claims{
		Email:        "jane@example.com",
		UserMetadata: map[string]any{"full_name": "Jane Doe", "avatar_url": "https://img/jane.png"},
		AppMetadata:  map[string]any{"provider": "google"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestJWTVerifier_Verify(t *testing.T) {
	v := NewJWTVerifier(testSecret)

	t.Run("valid token", func(t *testing.T) {
		u, err := v.Verify(sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims()))
		require.NoError(t, err)
		assert.Equal(t, &User{
			ID:        "user-1",
			Email:     "jane@example.com",
			FullName:  "Jane Doe",
			AvatarURL: "https://img/jane.png",
			Provider:  "google",
		}, u)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := v.Verify("")
		assert.ErrorIs(t, err, ErrMissingToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := v.Verify(sign(t, jwt.SigningMethodHS256, []byte("another-secret-value"), validClaims()))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		c := validClaims()
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		_, err := v.Verify(sign(t, jwt.SigningMethodHS256, []byte(testSecret), c))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("no expiry", func(t *testing.T) {
		c := validClaims()
		c.ExpiresAt = nil
		_, err := v.Verify(sign(t, jwt.SigningMethodHS256, []byte(testSecret), c))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("no subject", func(t *testing.T) {
		c := validClaims()
		c.Subject = ""
		_, err := v.Verify(sign(t, jwt.SigningMethodHS256, []byte(testSecret), c))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Verify("not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestClaims_UserWithoutMetadata(t *testing.T) {
	c := Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u"}}
	assert.Equal(t, &User{ID: "u"}, c.User())
}

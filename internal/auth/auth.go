// Package auth verifies access tokens issued by the external auth provider and
// wraps the provider's account endpoints.
package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

// User is the authenticated caller as described by the access token.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
	Provider  string `json:"provider"`
}

// Claims are the provider's access-token claims. The subject is the user id.
type Claims struct {
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
	AppMetadata  map[string]any `json:"app_metadata"`
	jwt.RegisteredClaims
}

// Verifier turns a bearer token into a User.
type Verifier interface {
	Verify(token string) (*User, error)
}

// JWTVerifier validates HS256 tokens signed with the provider's shared secret.
type JWTVerifier struct {
	secretKey []byte
}

// NewJWTVerifier creates a verifier for the given secret.
func NewJWTVerifier(secretKey string) *JWTVerifier {
	return &JWTVerifier{secretKey: []byte(secretKey)}
}

var _ Verifier = (*JWTVerifier)(nil)

// Verify parses and validates a token, returning the user it was issued to.
func (v *JWTVerifier) Verify(tokenString string) (*User, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return v.secretKey, nil
		},
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims.User(), nil
}

// User extracts the caller from the claims.
func (c *Claims) User() *User {
	return &User{
		ID:        c.Subject,
		Email:     c.Email,
		FullName:  stringValue(c.UserMetadata, "full_name"),
		AvatarURL: stringValue(c.UserMetadata, "avatar_url"),
		Provider:  stringValue(c.AppMetadata, "provider"),
	}
}

func stringValue(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

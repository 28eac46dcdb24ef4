package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"petparrk/internal/auth"
)

const (
	// UserLocalKey holds the *auth.User of an authenticated request.
	UserLocalKey = "user"
	// AccessTokenLocalKey holds the raw bearer token, forwarded to the auth provider for account changes.
	AccessTokenLocalKey = "access_token"
)

func bearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if token, ok := strings.CutPrefix(h, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// RequireAuth rejects requests without a valid bearer token with 401.
func RequireAuth(v auth.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, auth.ErrMissingToken.Error())
		}
		user, err := v.Verify(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, auth.ErrInvalidToken.Error())
		}
		c.Locals(UserLocalKey, user)
		c.Locals(AccessTokenLocalKey, token)
		return c.Next()
	}
}

// OptionalAuth attaches the user when a valid bearer token is present.
// Missing or invalid tokens leave the request anonymous.
func OptionalAuth(v auth.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := bearerToken(c); token != "" {
			if user, err := v.Verify(token); err == nil {
				c.Locals(UserLocalKey, user)
				c.Locals(AccessTokenLocalKey, token)
			}
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil for anonymous requests.
func CurrentUser(c *fiber.Ctx) *auth.User {
	u, _ := c.Locals(UserLocalKey).(*auth.User)
	return u
}

// UserID returns the authenticated user's id, or "".
func UserID(c *fiber.Ctx) string {
	if u := CurrentUser(c); u != nil {
		return u.ID
	}
	return ""
}

// AccessToken returns the bearer token of an authenticated request, or "".
func AccessToken(c *fiber.Ctx) string {
	s, _ := c.Locals(AccessTokenLocalKey).(string)
	return s
}

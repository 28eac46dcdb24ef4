package middleware

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"petparrk/internal/auth"
)

func readBody(t *testing.T, r io.Reader) string {
	t.Helper()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(b)
}

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString(RequestIDFromCtx(c))
	})

	t.Run("should generate new request id if not present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ridHeader := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, ridHeader)
		assert.Equal(t, ridHeader, readBody(t, resp.Body))
	})

	t.Run("should preserve existing request id", func(t *testing.T) {
		existingID := "test-id-123"
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, existingID)

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, existingID, resp.Header.Get(RequestIDHeader))
		assert.Equal(t, existingID, readBody(t, resp.Body))
	})

	t.Run("replaces malformed request id", func(t *testing.T) {
		for _, bad := range []string{"has space", "<script>", strings.Repeat("a", 65)} {
			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set(RequestIDHeader, bad)

			resp, err := app.Test(req)
			require.NoError(t, err)

			got := resp.Header.Get(RequestIDHeader)
			assert.NotEqual(t, bad, got)
			_, err = uuid.Parse(got)
			assert.NoError(t, err, bad)
		}
	})
}

func TestNoop(t *testing.T) {
	app := fiber.New()
	app.Use(Noop())
	app.Use(Tracing(false))

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", readBody(t, resp.Body))
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := fiber.New()
	app.Use(RequestID())
	app.Use(Logger(zap.New(core)))

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/test?x=1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	entries := logs.FilterMessage("http_request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, resp.Header.Get(RequestIDHeader), fields["request_id"])
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/test", fields["path"])
	assert.Equal(t, int64(fiber.StatusAccepted), fields["status"])
	assert.Contains(t, fields, "latency")
	assert.NotContains(t, fields, "trace_id")

	_, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)

	errEntries := logs.FilterMessage("http_request").FilterField(zap.Int("status", 500)).All()
	require.Len(t, errEntries, 1)
	assert.Equal(t, zapcore.ErrorLevel, errEntries[0].Level)
}

func TestLogger_TraceID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := fiber.New()
	app.Use(Logger(zap.New(core)))

	traceID := trace.TraceID{0x4b, 0xf9, 0x2f, 0x35, 0x77, 0xb3, 0x4d, 0xa6, 0xa3, 0xce, 0x92, 0x9d, 0x0e, 0x0e, 0x47, 0x36}
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     trace.SpanID{0x00, 0xf0, 0x67, 0xaa, 0x0b, 0xa9, 0x02, 0xb7},
		TraceFlags: trace.FlagsSampled,
	})
	app.Get("/traced", func(c *fiber.Ctx) error {
		c.SetUserContext(trace.ContextWithSpanContext(c.UserContext(), sc))
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/traced", nil))
	require.NoError(t, err)

	entries := logs.FilterMessage("http_request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", entries[0].ContextMap()["trace_id"])
}

type stubVerifier struct{}

func (stubVerifier) Verify(token string) (*auth.User, error) {
	if token == "good" {
		return &auth.User{ID: "user-1", Email: "sam@example.com"}, nil
	}
	return nil, auth.ErrInvalidToken
}

func TestRequireAuth(t *testing.T) {
	app := fiber.New()
	app.Get("/me", RequireAuth(stubVerifier{}), func(c *fiber.Ctx) error {
		return c.SendString(UserID(c) + "|" + AccessToken(c))
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", header: "Bearer good", wantStatus: fiber.StatusOK, wantBody: "user-1|good"},
		{name: "missing token", wantStatus: fiber.StatusUnauthorized, wantBody: auth.ErrMissingToken.Error()},
		{name: "wrong scheme", header: "Basic good", wantStatus: fiber.StatusUnauthorized, wantBody: auth.ErrMissingToken.Error()},
		{name: "invalid token", header: "Bearer bad", wantStatus: fiber.StatusUnauthorized, wantBody: auth.ErrInvalidToken.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantBody, readBody(t, resp.Body))
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	app := fiber.New()
	app.Get("/vet", OptionalAuth(stubVerifier{}), func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return c.SendString("anonymous")
		}
		return c.SendString(UserID(c))
	})

	for header, want := range map[string]string{
		"":            "anonymous",
		"Bearer bad":  "anonymous",
		"Bearer good": "user-1",
	} {
		req := httptest.NewRequest("GET", "/vet", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode, header)
		assert.Equal(t, want, readBody(t, resp.Body), header)
	}
}

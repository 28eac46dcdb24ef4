package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"petparrk/internal/config"
	"petparrk/internal/httpclient"
)

// Session is what the provider returns after a successful sign-in.
type Session struct {
	AccessToken  string       `json:"access_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"`
	RefreshToken string       `json:"refresh_token"`
	User         ProviderUser `json:"user"`
}

// ProviderUser is the provider's view of an account.
type ProviderUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ProviderError carries the provider's own error message, which is shown to the user as is.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// Provider is the subset of the auth provider's account API the app uses.
type Provider interface {
	SignUp(ctx context.Context, email, password, fullName string) error
	SignIn(ctx context.Context, email, password string) (*Session, error)
	Recover(ctx context.Context, email, redirectTo string) error
	UpdatePassword(ctx context.Context, accessToken, password string) error
	UpdateEmail(ctx context.Context, accessToken, email string) error
	SignOut(ctx context.Context, accessToken string) error
	AuthorizeURL(provider, redirectTo string) string
}

// GoTrueClient talks to a GoTrue-compatible provider under <ProviderURL>/auth/v1.
type GoTrueClient struct {
	http    *httpclient.Client
	baseURL string
}

// NewGoTrueClient creates a provider client. Every request carries the anon key.
func NewGoTrueClient(cfg config.AuthConfig, timeout time.Duration) (*GoTrueClient, error) {
	base, err := url.JoinPath(cfg.ProviderURL, "auth", "v1")
	if err != nil {
		return nil, err
	}
	c, err := httpclient.NewWithBaseURL(base, timeout)
	if err != nil {
		return nil, err
	}
	c.Headers = map[string]string{"apikey": cfg.AnonKey}
	return &GoTrueClient{http: c, baseURL: c.BaseURL}, nil
}

var _ Provider = (*GoTrueClient)(nil)

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func (c *GoTrueClient) SignUp(ctx context.Context, email, password, fullName string) error {
	body := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]string{"full_name": fullName},
	}
	return providerErr(c.http.DoJSON(ctx, http.MethodPost, "/signup", nil, body, nil))
}

func (c *GoTrueClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var s Session
	body := map[string]string{"email": email, "password": password}
	if err := c.http.DoJSON(ctx, http.MethodPost, "/token?grant_type=password", nil, body, &s); err != nil {
		return nil, providerErr(err)
	}
	return &s, nil
}

func (c *GoTrueClient) Recover(ctx context.Context, email, redirectTo string) error {
	path := "/recover"
	if redirectTo != "" {
		path += "?" + url.Values{"redirect_to": {redirectTo}}.Encode()
	}
	return providerErr(c.http.DoJSON(ctx, http.MethodPost, path, nil, map[string]string{"email": email}, nil))
}

func (c *GoTrueClient) UpdatePassword(ctx context.Context, accessToken, password string) error {
	body := map[string]string{"password": password}
	return providerErr(c.http.DoJSON(ctx, http.MethodPut, "/user", bearer(accessToken), body, nil))
}

func (c *GoTrueClient) UpdateEmail(ctx context.Context, accessToken, email string) error {
	body := map[string]string{"email": email}
	return providerErr(c.http.DoJSON(ctx, http.MethodPut, "/user", bearer(accessToken), body, nil))
}

func (c *GoTrueClient) SignOut(ctx context.Context, accessToken string) error {
	return providerErr(c.http.DoJSON(ctx, http.MethodPost, "/logout", bearer(accessToken), nil, nil))
}

// AuthorizeURL is where the browser goes to start an OAuth sign-in.
func (c *GoTrueClient) AuthorizeURL(provider, redirectTo string) string {
	q := url.Values{"provider": {provider}}
	if redirectTo != "" {
		q.Set("redirect_to", redirectTo)
	}
	return c.baseURL + "/authorize?" + q.Encode()
}

// providerErr turns a provider error response into a *ProviderError.
func providerErr(err error) error {
	var httpErr *httpclient.HTTPError
	if !errors.As(err, &httpErr) {
		return err
	}
	var body struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
		Error            string `json:"error"`
	}
	_ = json.Unmarshal([]byte(httpErr.Body), &body)

	msg := http.StatusText(httpErr.StatusCode)
	for _, m := range []string{body.Msg, body.Message, body.ErrorDescription, body.Error} {
		if m != "" {
			msg = m
			break
		}
	}
	return &ProviderError{StatusCode: httpErr.StatusCode, Message: msg}
}

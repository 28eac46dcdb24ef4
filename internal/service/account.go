package service

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"petparrk/internal/auth"
)

const minPasswordLength = 8

var oauthProviderPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// SignUpInput is a new account request.
type SignUpInput struct {
	Email    string
	Password string
	Confirm  string
	FullName string
}

// AccountService delegates account management to the auth provider after local checks.
// Provider failures come back as *auth.ProviderError.
type AccountService interface {
	SignUp(ctx context.Context, in SignUpInput) error
	SignIn(ctx context.Context, email, password string) (*auth.Session, error)

	// RecoverPassword sends a reset link; an empty redirect uses <site>/reset-password.
	RecoverPassword(ctx context.Context, email, redirectTo string) error

	// ResetPassword sets a new password from a recovery session, then signs that session out.
	ResetPassword(ctx context.Context, accessToken, password, confirm string) error
	ChangePassword(ctx context.Context, accessToken, password, confirm string) error
	ChangeEmail(ctx context.Context, accessToken, email string) error

	// OAuthURL returns the provider's authorize URL; an empty redirect uses the configured callback.
	OAuthURL(provider, redirectTo string) (string, error)
	SignOut(ctx context.Context, accessToken string) error
}

type accountService struct {
	provider      auth.Provider
	siteURL       string
	oauthRedirect string
}

// NewAccountService constructs a new AccountService.
func NewAccountService(provider auth.Provider, siteURL, oauthRedirect string) AccountService {
	siteURL = strings.TrimRight(siteURL, "/")
	if oauthRedirect == "" {
		oauthRedirect = siteURL + "/auth/callback"
	}
	return &accountService{provider: provider, siteURL: siteURL, oauthRedirect: oauthRedirect}
}

func checkNewPassword(password, confirm, mismatch string) error {
	if password != confirm {
		return invalid(mismatch)
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return invalid("Password must be at least 8 characters.")
	}
	return nil
}

func (s *accountService) SignUp(ctx context.Context, in SignUpInput) error {
	if err := checkNewPassword(in.Password, in.Confirm, "Passwords do not match."); err != nil {
		return err
	}
	return s.provider.SignUp(ctx, strings.TrimSpace(in.Email), in.Password, strings.TrimSpace(in.FullName))
}

func (s *accountService) SignIn(ctx context.Context, email, password string) (*auth.Session, error) {
	return s.provider.SignIn(ctx, strings.TrimSpace(email), password)
}

func (s *accountService) RecoverPassword(ctx context.Context, email, redirectTo string) error {
	if redirectTo == "" {
		redirectTo = s.siteURL + "/reset-password"
	}
	if !s.allowedRedirect(redirectTo) {
		return invalid("Invalid redirect URL.")
	}
	return s.provider.Recover(ctx, strings.TrimSpace(email), redirectTo)
}

func (s *accountService) ResetPassword(ctx context.Context, accessToken, password, confirm string) error {
	if accessToken == "" {
		return ErrUnauthorized
	}
	if err := checkNewPassword(password, confirm, "Passwords do not match."); err != nil {
		return err
	}
	if err := s.provider.UpdatePassword(ctx, accessToken, password); err != nil {
		return err
	}
	return s.provider.SignOut(ctx, accessToken)
}

func (s *accountService) ChangePassword(ctx context.Context, accessToken, password, confirm string) error {
	if accessToken == "" {
		return ErrUnauthorized
	}
	if err := checkNewPassword(password, confirm, "Passwords don't match."); err != nil {
		return err
	}
	return s.provider.UpdatePassword(ctx, accessToken, password)
}

func (s *accountService) ChangeEmail(ctx context.Context, accessToken, email string) error {
	if accessToken == "" {
		return ErrUnauthorized
	}
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return invalid("Please enter a valid email.")
	}
	return s.provider.UpdateEmail(ctx, accessToken, email)
}

func (s *accountService) OAuthURL(provider, redirectTo string) (string, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if !oauthProviderPattern.MatchString(provider) {
		return "", invalid("Unknown sign-in provider.")
	}
	if redirectTo == "" {
		redirectTo = s.oauthRedirect
	}
	if !s.allowedRedirect(redirectTo) {
		return "", invalid("Invalid redirect URL.")
	}
	return s.provider.AuthorizeURL(provider, redirectTo), nil
}

func (s *accountService) SignOut(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return ErrUnauthorized
	}
	return s.provider.SignOut(ctx, accessToken)
}

// allowedRedirect accepts absolute URLs on the site's origin or the configured OAuth callback's origin.
func (s *accountService) allowedRedirect(target string) bool {
	u, err := url.Parse(target)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	for _, base := range []string{s.siteURL, s.oauthRedirect} {
		b, err := url.Parse(base)
		if err == nil && strings.EqualFold(u.Scheme, b.Scheme) && strings.EqualFold(u.Host, b.Host) {
			return true
		}
	}
	return false
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"petparrk/internal/auth"
	"petparrk/internal/service"
)

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) SignUp(ctx context.Context, in service.SignUpInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *MockAccountService) SignIn(ctx context.Context, email, password string) (*auth.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *MockAccountService) RecoverPassword(ctx context.Context, email, redirectTo string) error {
	args := m.Called(ctx, email, redirectTo)
	return args.Error(0)
}

func (m *MockAccountService) ResetPassword(ctx context.Context, accessToken, password, confirm string) error {
	args := m.Called(ctx, accessToken, password, confirm)
	return args.Error(0)
}

func (m *MockAccountService) ChangePassword(ctx context.Context, accessToken, password, confirm string) error {
	args := m.Called(ctx, accessToken, password, confirm)
	return args.Error(0)
}

func (m *MockAccountService) ChangeEmail(ctx context.Context, accessToken, email string) error {
	args := m.Called(ctx, accessToken, email)
	return args.Error(0)
}

func (m *MockAccountService) OAuthURL(provider, redirectTo string) (string, error) {
	args := m.Called(provider, redirectTo)
	return args.String(0), args.Error(1)
}

func (m *MockAccountService) SignOut(ctx context.Context, accessToken string) error {
	args := m.Called(ctx, accessToken)
	return args.Error(0)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"petparrk/internal/auth"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) SignUp(ctx context.Context, email, password, fullName string) error {
	args := m.Called(ctx, email, password, fullName)
	return args.Error(0)
}

func (m *MockProvider) SignIn(ctx context.Context, email, password string) (*auth.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *MockProvider) Recover(ctx context.Context, email, redirectTo string) error {
	args := m.Called(ctx, email, redirectTo)
	return args.Error(0)
}

func (m *MockProvider) UpdatePassword(ctx context.Context, accessToken, password string) error {
	args := m.Called(ctx, accessToken, password)
	return args.Error(0)
}

func (m *MockProvider) UpdateEmail(ctx context.Context, accessToken, email string) error {
	args := m.Called(ctx, accessToken, email)
	return args.Error(0)
}

func (m *MockProvider) SignOut(ctx context.Context, accessToken string) error {
	args := m.Called(ctx, accessToken)
	return args.Error(0)
}

func (m *MockProvider) AuthorizeURL(provider, redirectTo string) string {
	args := m.Called(provider, redirectTo)
	return args.String(0)
}

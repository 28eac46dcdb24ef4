package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"petparrk/internal/model"
	"petparrk/internal/service"
)

type MockVetService struct {
	mock.Mock
}

func (m *MockVetService) List(ctx context.Context, f service.VetFilter) (*service.VetListResult, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.VetListResult), args.Error(1)
}

func (m *MockVetService) Get(ctx context.Context, slug, userID string) (*service.VetDetail, error) {
	args := m.Called(ctx, slug, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.VetDetail), args.Error(1)
}

type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) Submit(ctx context.Context, in service.SubmissionInput) (*model.PriceSubmission, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PriceSubmission), args.Error(1)
}

type MockSavedVetService struct {
	mock.Mock
}

func (m *MockSavedVetService) IsSaved(ctx context.Context, userID, vetID string) (bool, error) {
	args := m.Called(ctx, userID, vetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSavedVetService) Save(ctx context.Context, userID, vetID string) error {
	args := m.Called(ctx, userID, vetID)
	return args.Error(0)
}

func (m *MockSavedVetService) Unsave(ctx context.Context, userID, vetID string) error {
	args := m.Called(ctx, userID, vetID)
	return args.Error(0)
}

func (m *MockSavedVetService) Toggle(ctx context.Context, userID, vetID string) (bool, error) {
	args := m.Called(ctx, userID, vetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSavedVetService) List(ctx context.Context, userID string) ([]service.VetListing, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.VetListing), args.Error(1)
}

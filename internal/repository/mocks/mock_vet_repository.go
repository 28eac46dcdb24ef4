package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"petparrk/internal/model"
)

type MockVetRepository struct {
	mock.Mock
}

func (m *MockVetRepository) ListActive(ctx context.Context) ([]model.Vet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vet), args.Error(1)
}

func (m *MockVetRepository) FindBySlug(ctx context.Context, slug string) (*model.Vet, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vet), args.Error(1)
}

func (m *MockVetRepository) FindByID(ctx context.Context, id string) (*model.Vet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vet), args.Error(1)
}

func (m *MockVetRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Vet, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vet), args.Error(1)
}

func (m *MockVetRepository) UpdateCoordinates(ctx context.Context, id string, lat, lon float64) error {
	args := m.Called(ctx, id, lat, lon)
	return args.Error(0)
}

type MockPriceRepository struct {
	mock.Mock
}

func (m *MockPriceRepository) ListAll(ctx context.Context) ([]model.VetPrice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VetPrice), args.Error(1)
}

func (m *MockPriceRepository) ListByVet(ctx context.Context, vetID string) ([]model.VetPrice, error) {
	args := m.Called(ctx, vetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VetPrice), args.Error(1)
}

func (m *MockPriceRepository) ListByVets(ctx context.Context, vetIDs []string) ([]model.VetPrice, error) {
	args := m.Called(ctx, vetIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VetPrice), args.Error(1)
}

type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Create(ctx context.Context, s *model.PriceSubmission) (*model.PriceSubmission, error) {
	args := m.Called(ctx, s)
	if f, ok := args.Get(0).(func(context.Context, *model.PriceSubmission) *model.PriceSubmission); ok {
		return f(ctx, s), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PriceSubmission), args.Error(1)
}

type MockSavedVetRepository struct {
	mock.Mock
}

func (m *MockSavedVetRepository) Exists(ctx context.Context, userID, vetID string) (bool, error) {
	args := m.Called(ctx, userID, vetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSavedVetRepository) Create(ctx context.Context, userID, vetID string) error {
	args := m.Called(ctx, userID, vetID)
	return args.Error(0)
}

func (m *MockSavedVetRepository) Delete(ctx context.Context, userID, vetID string) error {
	args := m.Called(ctx, userID, vetID)
	return args.Error(0)
}

func (m *MockSavedVetRepository) ListByUser(ctx context.Context, userID string) ([]model.SavedVet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SavedVet), args.Error(1)
}

package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"petparrk/internal/model"
)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id string) (*model.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) Create(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	args := m.Called(ctx, p)
	if f, ok := args.Get(0).(func(context.Context, *model.Profile) *model.Profile); ok {
		return f(ctx, p), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) Upsert(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	args := m.Called(ctx, p)
	if f, ok := args.Get(0).(func(context.Context, *model.Profile) *model.Profile); ok {
		return f(ctx, p), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpsertAvatar(ctx context.Context, id, avatarURL string, at time.Time) error {
	args := m.Called(ctx, id, avatarURL, at)
	return args.Error(0)
}

type MockPetRepository struct {
	mock.Mock
}

func (m *MockPetRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Pet, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pet), args.Error(1)
}

func (m *MockPetRepository) FindByID(ctx context.Context, id string) (*model.Pet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pet), args.Error(1)
}

func (m *MockPetRepository) Create(ctx context.Context, p *model.Pet) (*model.Pet, error) {
	args := m.Called(ctx, p)
	if f, ok := args.Get(0).(func(context.Context, *model.Pet) *model.Pet); ok {
		return f(ctx, p), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pet), args.Error(1)
}

func (m *MockPetRepository) Update(ctx context.Context, p *model.Pet) (*model.Pet, error) {
	args := m.Called(ctx, p)
	if f, ok := args.Get(0).(func(context.Context, *model.Pet) *model.Pet); ok {
		return f(ctx, p), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pet), args.Error(1)
}

func (m *MockPetRepository) UpdatePhoto(ctx context.Context, id, photoURL string) error {
	args := m.Called(ctx, id, photoURL)
	return args.Error(0)
}

func (m *MockPetRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) ListByPet(ctx context.Context, petID string) ([]model.EmergencyContact, error) {
	args := m.Called(ctx, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.EmergencyContact), args.Error(1)
}

func (m *MockContactRepository) Create(ctx context.Context, c *model.EmergencyContact) (*model.EmergencyContact, error) {
	args := m.Called(ctx, c)
	if f, ok := args.Get(0).(func(context.Context, *model.EmergencyContact) *model.EmergencyContact); ok {
		return f(ctx, c), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EmergencyContact), args.Error(1)
}

func (m *MockContactRepository) Delete(ctx context.Context, petID, id string) error {
	args := m.Called(ctx, petID, id)
	return args.Error(0)
}

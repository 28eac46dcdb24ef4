package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"petparrk/internal/auth"
	"petparrk/internal/imaging"
	"petparrk/internal/model"
	"petparrk/internal/service"
)

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetOrCreate(ctx context.Context, user *auth.User) (*model.Profile, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) Update(ctx context.Context, userID string, in service.ProfileInput) (*model.Profile, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) UploadAvatar(ctx context.Context, userID string, img imaging.Image) (string, error) {
	args := m.Called(ctx, userID, img)
	return args.String(0), args.Error(1)
}

type MockPetService struct {
	mock.Mock
}

func (m *MockPetService) List(ctx context.Context, ownerID string) ([]model.Pet, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pet), args.Error(1)
}

func (m *MockPetService) Create(ctx context.Context, ownerID string, in service.PetInput, photo *imaging.Image) (*model.Pet, error) {
	args := m.Called(ctx, ownerID, in, photo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pet), args.Error(1)
}

func (m *MockPetService) Update(ctx context.Context, ownerID, petID string, in service.PetInput) (*model.Pet, error) {
	args := m.Called(ctx, ownerID, petID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pet), args.Error(1)
}

func (m *MockPetService) Delete(ctx context.Context, ownerID, petID string) error {
	args := m.Called(ctx, ownerID, petID)
	return args.Error(0)
}

func (m *MockPetService) UploadPhoto(ctx context.Context, ownerID, petID string, img imaging.Image) (string, error) {
	args := m.Called(ctx, ownerID, petID, img)
	return args.String(0), args.Error(1)
}

func (m *MockPetService) ListContacts(ctx context.Context, ownerID, petID string) ([]model.EmergencyContact, error) {
	args := m.Called(ctx, ownerID, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.EmergencyContact), args.Error(1)
}

func (m *MockPetService) AddContact(ctx context.Context, ownerID, petID string, in service.ContactInput) (*model.EmergencyContact, error) {
	args := m.Called(ctx, ownerID, petID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EmergencyContact), args.Error(1)
}

func (m *MockPetService) DeleteContact(ctx context.Context, ownerID, petID, contactID string) error {
	args := m.Called(ctx, ownerID, petID, contactID)
	return args.Error(0)
}

type MockCardService struct {
	mock.Mock
}

func (m *MockCardService) Get(ctx context.Context, petID string) (*service.Card, error) {
	args := m.Called(ctx, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Card), args.Error(1)
}

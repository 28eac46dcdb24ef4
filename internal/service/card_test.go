package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petparrk/internal/model"
	repoMocks "petparrk/internal/repository/mocks"
)

func TestCardService_Get(t *testing.T) {
	ctx := context.Background()
	birthday := &model.Date{Time: time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC)}

	tests := []struct {
		name       string
		petID      string
		setupMocks func(mPets *repoMocks.MockPetRepository, mContacts *repoMocks.MockContactRepository)
		wantErr    error
		check      func(t *testing.T, c *Card)
	}{
		{
			name:  "full card",
			petID: testPetID,
			setupMocks: func(mPets *repoMocks.MockPetRepository, mContacts *repoMocks.MockContactRepository) {
				mPets.On("FindByID", ctx, testPetID).Return(&model.Pet{
					ID: testPetID, Name: "Luna", Species: "Cat", Breed: "Siamese",
					Birthday: birthday, OwnerPhone: "4155550100",
				}, nil)
				mContacts.On("ListByPet", ctx, testPetID).Return([]model.EmergencyContact{
					{ID: testContactID, Name: "Jo", Phone: "1-415-555-0199"},
				}, nil)
			},
			check: func(t *testing.T, c *Card) {
				assert.Equal(t, "(415) 555-0100", c.OwnerPhoneDisplay)
				assert.Equal(t, "3 years old", c.Age)
				assert.Equal(t, "🐱", c.SpeciesEmoji)
				assert.Equal(t, "https://petparrk.com/pet/"+testPetID, c.URL)
				assert.Equal(t, "https://api.qrserver.com/v1/create-qr-code/?size=140x140&data=https%3A%2F%2Fpetparrk.com%2Fpet%2F"+testPetID, c.QRCodeURL)
				assert.Equal(t, "Luna's Medical Card 🐱", c.Meta.Title)
				assert.Equal(t, "Luna is a Siamese. View their medical info, allergies, medications, and owner contact.", c.Meta.Description)
				require.Len(t, c.Contacts, 1)
				assert.Equal(t, "+1 (415) 555-0199", c.Contacts[0].PhoneDisplay)
			},
		},
		{
			name:  "minimal pet",
			petID: testPetID,
			setupMocks: func(mPets *repoMocks.MockPetRepository, mContacts *repoMocks.MockContactRepository) {
				mPets.On("FindByID", ctx, testPetID).Return(&model.Pet{ID: testPetID, Name: "Pip", Species: "Ferret"}, nil)
				mContacts.On("ListByPet", ctx, testPetID).Return([]model.EmergencyContact{}, nil)
			},
			check: func(t *testing.T, c *Card) {
				assert.Empty(t, c.Age)
				assert.Empty(t, c.OwnerPhoneDisplay)
				assert.Equal(t, "🐾", c.SpeciesEmoji)
				assert.Equal(t, "Pip is a Ferret. View their medical info, allergies, medications, and owner contact.", c.Meta.Description)
				assert.NotNil(t, c.Contacts)
			},
		},
		{
			name:  "unknown pet",
			petID: testPetID,
			setupMocks: func(mPets *repoMocks.MockPetRepository, _ *repoMocks.MockContactRepository) {
				mPets.On("FindByID", ctx, testPetID).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrCardNotFound,
		},
		{
			name:    "malformed id",
			petID:   "pet-123",
			wantErr: ErrCardNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mPets := new(repoMocks.MockPetRepository)
			mContacts := new(repoMocks.MockContactRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(mPets, mContacts)
			}
			svc := NewCardService(mPets, mContacts, "https://petparrk.com/").(*cardService)
			svc.now = func() time.Time { return fixedNow }

			got, err := svc.Get(ctx, tt.petID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrNotFound)
			} else {
				require.NoError(t, err)
				tt.check(t, got)
			}
			mPets.AssertExpectations(t)
			mContacts.AssertExpectations(t)
		})
	}
}

func TestCardService_Get_RepositoryError(t *testing.T) {
	ctx := context.Background()
	mPets := new(repoMocks.MockPetRepository)
	mPets.On("FindByID", ctx, testPetID).Return(nil, errors.New("db down"))

	_, err := NewCardService(mPets, nil, "https://petparrk.com").Get(ctx, testPetID)

	assert.EqualError(t, err, "find pet: db down")
	assert.NotErrorIs(t, err, ErrNotFound)
}

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

const (
	testUserID = "11111111-1111-1111-1111-111111111111"
	testVetA   = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	testVetB   = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
)

type savedMocks struct {
	saved  *repoMocks.MockSavedVetRepository
	vets   *repoMocks.MockVetRepository
	prices *repoMocks.MockPriceRepository
}

func newSavedService() (SavedVetService, savedMocks) {
	m := savedMocks{
		saved:  new(repoMocks.MockSavedVetRepository),
		vets:   new(repoMocks.MockVetRepository),
		prices: new(repoMocks.MockPriceRepository),
	}
	return NewSavedVetService(m.saved, m.vets, m.prices), m
}

func TestSavedVetService_Toggle(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		userID     string
		vetID      string
		setupMocks func(m savedMocks)
		want       bool
		wantErr    error
	}{
		{
			name:   "saves when not saved",
			userID: testUserID,
			vetID:  testVetA,
			setupMocks: func(m savedMocks) {
				m.saved.On("Exists", ctx, testUserID, testVetA).Return(false, nil)
				m.vets.On("FindByID", ctx, testVetA).Return(&model.Vet{ID: testVetA}, nil)
				m.saved.On("Create", ctx, testUserID, testVetA).Return(nil)
			},
			want: true,
		},
		{
			name:   "unsaves when saved",
			userID: testUserID,
			vetID:  testVetA,
			setupMocks: func(m savedMocks) {
				m.saved.On("Exists", ctx, testUserID, testVetA).Return(true, nil)
				m.saved.On("Delete", ctx, testUserID, testVetA).Return(nil)
			},
			want: false,
		},
		{
			name:   "unknown vet",
			userID: testUserID,
			vetID:  testVetA,
			setupMocks: func(m savedMocks) {
				m.saved.On("Exists", ctx, testUserID, testVetA).Return(false, nil)
				m.vets.On("FindByID", ctx, testVetA).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name:    "anonymous",
			vetID:   testVetA,
			wantErr: ErrUnauthorized,
		},
		{
			name:    "malformed vet id",
			userID:  testUserID,
			vetID:   "not-a-uuid",
			wantErr: ErrNotFound,
		},
		{
			name:    "empty vet id",
			userID:  testUserID,
			wantErr: ErrIDRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newSavedService()
			if tt.setupMocks != nil {
				tt.setupMocks(m)
			}

			got, err := svc.Toggle(ctx, tt.userID, tt.vetID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			m.saved.AssertExpectations(t)
			m.vets.AssertExpectations(t)
		})
	}
}

func TestSavedVetService_SaveTwice(t *testing.T) {
	ctx := context.Background()
	svc, m := newSavedService()
	m.vets.On("FindByID", ctx, testVetA).Return(&model.Vet{ID: testVetA}, nil)
	m.saved.On("Create", ctx, testUserID, testVetA).Return(nil).Twice()

	require.NoError(t, svc.Save(ctx, testUserID, testVetA))
	require.NoError(t, svc.Save(ctx, testUserID, testVetA))
	m.saved.AssertExpectations(t)
}

func TestSavedVetService_Unsave_Error(t *testing.T) {
	ctx := context.Background()
	svc, m := newSavedService()
	m.saved.On("Delete", ctx, testUserID, testVetA).Return(errors.New("db down"))

	err := svc.Unsave(ctx, testUserID, testVetA)
	assert.EqualError(t, err, "unsave vet: db down")
}

func TestSavedVetService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps saved order", func(t *testing.T) {
		svc, m := newSavedService()
		ids := []string{testVetB, testVetA}
		m.saved.On("ListByUser", ctx, testUserID).Return([]model.SavedVet{
			{UserID: testUserID, VetID: testVetB, SavedAt: time.Now()},
			{UserID: testUserID, VetID: testVetA, SavedAt: time.Now().Add(-time.Hour)},
		}, nil)
		m.vets.On("FindByIDs", ctx, ids).Return([]model.Vet{
			{ID: testVetA, Name: "Alpha"},
			{ID: testVetB, Name: "Bay"},
		}, nil)
		m.prices.On("ListByVets", ctx, ids).Return([]model.VetPrice{
			price(testVetA, ServiceDoctorExam, f64(80), f64(90), time.Now()),
		}, nil)

		got, err := svc.List(ctx, testUserID)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Bay", got[0].Name)
		assert.Equal(t, "Alpha", got[1].Name)
		assert.Empty(t, got[0].HighlightedPrices)
		assert.Len(t, got[1].HighlightedPrices, 1)
	})

	t.Run("nothing saved", func(t *testing.T) {
		svc, m := newSavedService()
		m.saved.On("ListByUser", ctx, testUserID).Return([]model.SavedVet{}, nil)

		got, err := svc.List(ctx, testUserID)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
		m.vets.AssertNotCalled(t, "FindByIDs")
	})

	t.Run("anonymous", func(t *testing.T) {
		svc, _ := newSavedService()
		_, err := svc.List(ctx, "")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

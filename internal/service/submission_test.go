package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"petparrk/internal/model"
	repoMocks "petparrk/internal/repository/mocks"
)

func TestSubmissionService_Submit(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		in         SubmissionInput
		setupMocks func(mRepo *repoMocks.MockSubmissionRepository)
		wantErr    string
		check      func(t *testing.T, got *model.PriceSubmission)
	}{
		{
			name: "success",
			in: SubmissionInput{
				VetName:       "  Alpha Animal Hospital ",
				ServiceName:   ServiceDoctorExam,
				PricePaid:     "$85.50",
				VisitDate:     "2024-04-20",
				SubmitterNote: " quick visit ",
			},
			setupMocks: func(mRepo *repoMocks.MockSubmissionRepository) {
				mRepo.On("Create", ctx, mock.MatchedBy(func(s *model.PriceSubmission) bool {
					return s.VetName == "Alpha Animal Hospital" &&
						s.PricePaid == 85.5 &&
						s.VisitDate != nil && s.VisitDate.String() == "2024-04-20" &&
						s.SubmitterNote != nil && *s.SubmitterNote == "quick visit" &&
						s.CreatedAt.Equal(now) &&
						s.ID != ""
				})).Return(func(_ context.Context, s *model.PriceSubmission) *model.PriceSubmission { return s }, nil)
			},
			check: func(t *testing.T, got *model.PriceSubmission) {
				assert.Equal(t, ServiceDoctorExam, got.ServiceName)
			},
		},
		{
			name: "optional fields empty",
			in:   SubmissionInput{VetName: "Alpha", ServiceName: "Spay", PricePaid: "400"},
			setupMocks: func(mRepo *repoMocks.MockSubmissionRepository) {
				mRepo.On("Create", ctx, mock.MatchedBy(func(s *model.PriceSubmission) bool {
					return s.VisitDate == nil && s.SubmitterNote == nil
				})).Return(func(_ context.Context, s *model.PriceSubmission) *model.PriceSubmission { return s }, nil)
			},
			check: func(t *testing.T, got *model.PriceSubmission) {
				assert.Equal(t, 400.0, got.PricePaid)
			},
		},
		{
			name:    "missing required",
			in:      SubmissionInput{VetName: "Alpha", PricePaid: "10"},
			wantErr: "Vet name, service and price paid are required.",
		},
		{
			name:    "non numeric price",
			in:      SubmissionInput{VetName: "Alpha", ServiceName: "Spay", PricePaid: "cheap"},
			wantErr: "Price paid must be a positive number.",
		},
		{
			name:    "zero price",
			in:      SubmissionInput{VetName: "Alpha", ServiceName: "Spay", PricePaid: "0"},
			wantErr: "Price paid must be a positive number.",
		},
		{
			name:    "NaN price",
			in:      SubmissionInput{VetName: "Alpha", ServiceName: "Spay", PricePaid: "NaN"},
			wantErr: "Price paid must be a positive number.",
		},
		{
			name:    "infinite price",
			in:      SubmissionInput{VetName: "Alpha", ServiceName: "Spay", PricePaid: "+Infinity"},
			wantErr: "Price paid must be a positive number.",
		},
		{
			name:    "hex float price",
			in:      SubmissionInput{VetName: "Alpha", ServiceName: "Spay", PricePaid: "0x1p4"},
			wantErr: "Price paid must be a positive number.",
		},
		{
			name:    "exponent price",
			in:      SubmissionInput{VetName: "Alpha", ServiceName: "Spay", PricePaid: "1e3"},
			wantErr: "Price paid must be a positive number.",
		},
		{
			name:    "bad visit date",
			in:      SubmissionInput{VetName: "Alpha", ServiceName: "Spay", PricePaid: "10", VisitDate: "04/20/2024"},
			wantErr: "Visit date must be in YYYY-MM-DD format.",
		},
		{
			name: "repository error",
			in:   SubmissionInput{VetName: "Alpha", ServiceName: "Spay", PricePaid: "10"},
			setupMocks: func(mRepo *repoMocks.MockSubmissionRepository) {
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("insert failed"))
			},
			wantErr: "save submission: insert failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockSubmissionRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(mRepo)
			}
			svc := &submissionService{repo: mRepo, now: func() time.Time { return now }}

			got, err := svc.Submit(ctx, tt.in)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				tt.check(t, got)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

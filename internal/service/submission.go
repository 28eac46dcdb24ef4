package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"petparrk/internal/format"
	"petparrk/internal/model"
	"petparrk/internal/repository"
)

// SubmissionInput is a price reported by a visitor. Fields arrive as form text.
type SubmissionInput struct {
	VetName       string
	ServiceName   string
	PricePaid     string
	VisitDate     string
	SubmitterNote string
}

// SubmissionService stores user-reported prices for later moderation.
type SubmissionService interface {
	Submit(ctx context.Context, in SubmissionInput) (*model.PriceSubmission, error)
}

type submissionService struct {
	repo repository.SubmissionRepository
	now  func() time.Time
}

// NewSubmissionService constructs a new SubmissionService.
func NewSubmissionService(repo repository.SubmissionRepository) SubmissionService {
	return &submissionService{repo: repo, now: time.Now}
}

func (s *submissionService) Submit(ctx context.Context, in SubmissionInput) (*model.PriceSubmission, error) {
	vetName := strings.TrimSpace(in.VetName)
	serviceName := strings.TrimSpace(in.ServiceName)
	priceText := strings.TrimSpace(in.PricePaid)
	if vetName == "" || serviceName == "" || priceText == "" {
		return nil, invalid("Vet name, service and price paid are required.")
	}

	price, ok := format.Decimal(priceText)
	if !ok || price <= 0 {
		return nil, invalid("Price paid must be a positive number.")
	}

	visitDate, err := model.ParseDate(in.VisitDate)
	if err != nil {
		return nil, invalid("Visit date must be in YYYY-MM-DD format.")
	}

	sub := &model.PriceSubmission{
		ID:          uuid.New().String(),
		VetName:     vetName,
		ServiceName: serviceName,
		PricePaid:   price,
		VisitDate:   visitDate,
		CreatedAt:   s.now().UTC(),
	}
	if note := strings.TrimSpace(in.SubmitterNote); note != "" {
		sub.SubmitterNote = &note
	}

	stored, err := s.repo.Create(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("save submission: %w", err)
	}
	return stored, nil
}

package service

import (
	"context"
	"fmt"

	"petparrk/internal/repository"
)

// SavedVetService manages a user's favorite vets. Concurrent writes are last-write-wins.
type SavedVetService interface {
	IsSaved(ctx context.Context, userID, vetID string) (bool, error)
	Save(ctx context.Context, userID, vetID string) error
	Unsave(ctx context.Context, userID, vetID string) error

	// Toggle flips the saved state and returns the new one.
	Toggle(ctx context.Context, userID, vetID string) (bool, error)

	// List returns the saved vets, most recently saved first.
	List(ctx context.Context, userID string) ([]VetListing, error)
}

type savedVetService struct {
	saved  repository.SavedVetRepository
	vets   repository.VetRepository
	prices repository.PriceRepository
}

// NewSavedVetService constructs a new SavedVetService.
func NewSavedVetService(saved repository.SavedVetRepository, vets repository.VetRepository, prices repository.PriceRepository) SavedVetService {
	return &savedVetService{saved: saved, vets: vets, prices: prices}
}

func (s *savedVetService) check(userID, vetID string) error {
	if userID == "" {
		return ErrUnauthorized
	}
	return checkID(vetID)
}

func (s *savedVetService) IsSaved(ctx context.Context, userID, vetID string) (bool, error) {
	if err := s.check(userID, vetID); err != nil {
		return false, err
	}
	return s.saved.Exists(ctx, userID, vetID)
}

func (s *savedVetService) Save(ctx context.Context, userID, vetID string) error {
	if err := s.check(userID, vetID); err != nil {
		return err
	}
	if _, err := s.vets.FindByID(ctx, vetID); err != nil {
		return notFound(err)
	}
	if err := s.saved.Create(ctx, userID, vetID); err != nil {
		return fmt.Errorf("save vet: %w", err)
	}
	return nil
}

func (s *savedVetService) Unsave(ctx context.Context, userID, vetID string) error {
	if err := s.check(userID, vetID); err != nil {
		return err
	}
	if err := s.saved.Delete(ctx, userID, vetID); err != nil {
		return fmt.Errorf("unsave vet: %w", err)
	}
	return nil
}

func (s *savedVetService) Toggle(ctx context.Context, userID, vetID string) (bool, error) {
	saved, err := s.IsSaved(ctx, userID, vetID)
	if err != nil {
		return false, err
	}
	if saved {
		return false, s.Unsave(ctx, userID, vetID)
	}
	if err := s.Save(ctx, userID, vetID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *savedVetService) List(ctx context.Context, userID string) ([]VetListing, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	rows, err := s.saved.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list saved: %w", err)
	}
	if len(rows) == 0 {
		return []VetListing{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.VetID)
	}
	vets, err := s.vets.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load saved vets: %w", err)
	}
	prices, err := s.prices.ListByVets(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load saved prices: %w", err)
	}
	byVet := groupPrices(prices)

	byID := make(map[string]int, len(vets))
	for i, v := range vets {
		byID[v.ID] = i
	}
	items := make([]VetListing, 0, len(vets))
	for _, id := range ids {
		i, ok := byID[id]
		if !ok {
			continue
		}
		items = append(items, newListing(vets[i], byVet[id]))
	}
	return items, nil
}

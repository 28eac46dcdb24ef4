// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres) and contain SQL only, no business rules.
// Lookups of a single missing row return sql.ErrNoRows unchanged; the service layer translates it.
package repository

import (
	"context"
	"time"

	"petparrk/internal/model"
)

// VetRepository reads clinic listings.
type VetRepository interface {
	// ListActive returns every vet with status "active", ordered by name.
	ListActive(ctx context.Context) ([]model.Vet, error)

	// FindBySlug returns the vet with the given slug.
	FindBySlug(ctx context.Context, slug string) (*model.Vet, error)

	// FindByID returns the vet with the given ID.
	FindByID(ctx context.Context, id string) (*model.Vet, error)

	// FindByIDs returns the vets with the given IDs, ordered by name. Unknown IDs are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]model.Vet, error)

	// UpdateCoordinates stores the geocoded position of a vet.
	UpdateCoordinates(ctx context.Context, id string, lat, lon float64) error
}

// PriceRepository reads vet prices joined with their service name.
type PriceRepository interface {
	ListAll(ctx context.Context) ([]model.VetPrice, error)
	ListByVet(ctx context.Context, vetID string) ([]model.VetPrice, error)
	ListByVets(ctx context.Context, vetIDs []string) ([]model.VetPrice, error)
}

// SubmissionRepository stores user-reported prices.
type SubmissionRepository interface {
	Create(ctx context.Context, s *model.PriceSubmission) (*model.PriceSubmission, error)
}

// SavedVetRepository manages user favorites.
type SavedVetRepository interface {
	Exists(ctx context.Context, userID, vetID string) (bool, error)

	// Create inserts the favorite; an existing row is left untouched.
	Create(ctx context.Context, userID, vetID string) error

	// Delete removes the favorite. Missing rows are not an error.
	Delete(ctx context.Context, userID, vetID string) error

	ListByUser(ctx context.Context, userID string) ([]model.SavedVet, error)
}

// ProfileRepository manages account profiles.
type ProfileRepository interface {
	FindByID(ctx context.Context, id string) (*model.Profile, error)
	Create(ctx context.Context, p *model.Profile) (*model.Profile, error)

	// Upsert writes the editable fields (full name, bio, visibility).
	Upsert(ctx context.Context, p *model.Profile) (*model.Profile, error)

	// UpsertAvatar sets avatar_url, creating the profile if needed.
	UpsertAvatar(ctx context.Context, id, avatarURL string, at time.Time) error
}

// PetRepository manages pet profiles.
type PetRepository interface {
	// ListByOwner returns the owner's pets in creation order.
	ListByOwner(ctx context.Context, ownerID string) ([]model.Pet, error)
	FindByID(ctx context.Context, id string) (*model.Pet, error)
	Create(ctx context.Context, p *model.Pet) (*model.Pet, error)

	// Update overwrites the editable fields; it returns sql.ErrNoRows when the pet is gone.
	Update(ctx context.Context, p *model.Pet) (*model.Pet, error)
	UpdatePhoto(ctx context.Context, id, photoURL string) error
	Delete(ctx context.Context, id string) error
}

// ContactRepository manages pet emergency contacts.
type ContactRepository interface {
	ListByPet(ctx context.Context, petID string) ([]model.EmergencyContact, error)
	Create(ctx context.Context, c *model.EmergencyContact) (*model.EmergencyContact, error)

	// Delete removes a contact of the given pet; it returns sql.ErrNoRows when nothing matched.
	Delete(ctx context.Context, petID, id string) error
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"petparrk/internal/format"
	"petparrk/internal/imaging"
	"petparrk/internal/model"
	"petparrk/internal/repository"
	"petparrk/internal/storage"
	"petparrk/internal/validators"
)

// PetInput holds the editable pet fields. Birthday is YYYY-MM-DD or empty.
type PetInput struct {
	Name            string `validate:"required"`
	Species         string
	Breed           string
	Birthday        string   `validate:"iso_date"`
	WeightLbs       *float64 `validate:"omitempty,positive"`
	Allergies       string
	Medications     string
	MicrochipNumber string `validate:"microchip"`
	Notes           string
	OwnerName       string
	OwnerPhone      string
	OwnerEmail      string
}

// ContactInput holds a new emergency contact.
type ContactInput struct {
	Name         string `validate:"required"`
	Phone        string
	Relationship string
}

var petFieldMessages = map[string]string{
	"Name":            "Pet name is required.",
	"Birthday":        "Birthday must be in YYYY-MM-DD format.",
	"WeightLbs":       "Weight must be a positive number.",
	"MicrochipNumber": "Must be 9, 10, or 15 digits",
}

// PetService manages the caller's pets and their emergency contacts.
// A pet owned by someone else is reported as ErrNotFound.
type PetService interface {
	List(ctx context.Context, ownerID string) ([]model.Pet, error)

	// Create stores the pet, then the optional photo. A failed photo upload does not fail the creation.
	Create(ctx context.Context, ownerID string, in PetInput, photo *imaging.Image) (*model.Pet, error)
	Update(ctx context.Context, ownerID, petID string, in PetInput) (*model.Pet, error)
	Delete(ctx context.Context, ownerID, petID string) error
	UploadPhoto(ctx context.Context, ownerID, petID string, img imaging.Image) (string, error)

	ListContacts(ctx context.Context, ownerID, petID string) ([]model.EmergencyContact, error)
	AddContact(ctx context.Context, ownerID, petID string, in ContactInput) (*model.EmergencyContact, error)
	DeleteContact(ctx context.Context, ownerID, petID, contactID string) error
}

type petService struct {
	pets     repository.PetRepository
	contacts repository.ContactRepository
	store    storage.Storage
	images   *imaging.Preparer
	log      *zap.Logger
	validate *validator.Validate
	now      func() time.Time
}

// NewPetService constructs a new PetService. store is the pets bucket.
func NewPetService(pets repository.PetRepository, contacts repository.ContactRepository, store storage.Storage, images *imaging.Preparer, log *zap.Logger) PetService {
	return &petService{
		pets:     pets,
		contacts: contacts,
		store:    store,
		images:   images,
		log:      log,
		validate: validators.New(),
		now:      time.Now,
	}
}

// normalize trims the input, masks the owner phone and reduces the microchip to its digits.
func normalize(in PetInput) PetInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Species = strings.TrimSpace(in.Species)
	if in.Species == "" {
		in.Species = model.DefaultSpecies
	}
	in.Breed = strings.TrimSpace(in.Breed)
	in.Birthday = strings.TrimSpace(in.Birthday)
	in.MicrochipNumber = format.Microchip(in.MicrochipNumber)
	in.OwnerName = strings.TrimSpace(in.OwnerName)
	in.OwnerPhone = format.PhoneMask(in.OwnerPhone)
	in.OwnerEmail = strings.TrimSpace(in.OwnerEmail)
	return in
}

func (s *petService) validatePet(in PetInput) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := petFieldMessages[verrs[0].Field()]; ok {
			return invalid(msg)
		}
	}
	return invalid("Invalid pet details.")
}

func applyInput(p *model.Pet, in PetInput) {
	birthday, _ := model.ParseDate(in.Birthday)
	p.Name = in.Name
	p.Species = in.Species
	p.Breed = in.Breed
	p.Birthday = birthday
	p.WeightLbs = in.WeightLbs
	p.Allergies = in.Allergies
	p.Medications = in.Medications
	p.MicrochipNumber = in.MicrochipNumber
	p.Notes = in.Notes
	p.OwnerName = in.OwnerName
	p.OwnerPhone = in.OwnerPhone
	p.OwnerEmail = in.OwnerEmail
}

// owned loads a pet and hides pets of other owners.
func (s *petService) owned(ctx context.Context, ownerID, petID string) (*model.Pet, error) {
	if ownerID == "" {
		return nil, ErrUnauthorized
	}
	if err := checkID(petID); err != nil {
		return nil, err
	}
	p, err := s.pets.FindByID(ctx, petID)
	if err != nil {
		return nil, notFound(err)
	}
	if p.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *petService) List(ctx context.Context, ownerID string) ([]model.Pet, error) {
	if ownerID == "" {
		return nil, ErrUnauthorized
	}
	return s.pets.ListByOwner(ctx, ownerID)
}

func (s *petService) Create(ctx context.Context, ownerID string, in PetInput, photo *imaging.Image) (*model.Pet, error) {
	if ownerID == "" {
		return nil, ErrUnauthorized
	}
	in = normalize(in)
	if err := s.validatePet(in); err != nil {
		return nil, err
	}

	var prepared *imaging.Image
	if photo != nil {
		img, err := s.images.Prepare(ctx, *photo)
		if err != nil {
			return nil, invalid(imaging.Message(err))
		}
		prepared = &img
	}

	pet := &model.Pet{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		CreatedAt: s.now().UTC(),
	}
	applyInput(pet, in)

	stored, err := s.pets.Create(ctx, pet)
	if err != nil {
		return nil, fmt.Errorf("create pet: %w", err)
	}
	if prepared == nil {
		return stored, nil
	}

	key := ownerID + "/" + stored.ID + "." + prepared.Ext()
	photoURL, err := upload(ctx, s.store, key, *prepared, s.now())
	if err != nil {
		s.log.Warn("pet_photo_upload_failed", zap.String("pet_id", stored.ID), zap.Error(err))
		return stored, nil
	}
	if err := s.pets.UpdatePhoto(ctx, stored.ID, photoURL); err != nil {
		// Rollback: the object was just created and nothing references it.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			s.log.Error("pet_photo_rollback_failed", zap.String("key", key), zap.Error(delErr))
		}
		s.log.Warn("pet_photo_save_failed", zap.String("pet_id", stored.ID), zap.Error(err))
		return stored, nil
	}
	stored.PhotoURL = photoURL
	return stored, nil
}

func (s *petService) Update(ctx context.Context, ownerID, petID string, in PetInput) (*model.Pet, error) {
	pet, err := s.owned(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}
	in = normalize(in)
	if err := s.validatePet(in); err != nil {
		return nil, err
	}
	applyInput(pet, in)

	updated, err := s.pets.Update(ctx, pet)
	if err != nil {
		return nil, notFound(err)
	}
	return updated, nil
}

func (s *petService) Delete(ctx context.Context, ownerID, petID string) error {
	if _, err := s.owned(ctx, ownerID, petID); err != nil {
		return err
	}
	if err := s.pets.Delete(ctx, petID); err != nil {
		return fmt.Errorf("delete pet: %w", err)
	}
	return nil
}

func (s *petService) UploadPhoto(ctx context.Context, ownerID, petID string, img imaging.Image) (string, error) {
	if _, err := s.owned(ctx, ownerID, petID); err != nil {
		return "", err
	}
	img, err := s.images.Prepare(ctx, img)
	if err != nil {
		return "", invalid(imaging.Message(err))
	}

	key := ownerID + "/" + petID + "." + img.Ext()
	photoURL, err := upload(ctx, s.store, key, img, s.now())
	if err != nil {
		return "", err
	}
	if err := s.pets.UpdatePhoto(ctx, petID, photoURL); err != nil {
		return "", notFound(err)
	}
	return photoURL, nil
}

func (s *petService) ListContacts(ctx context.Context, ownerID, petID string) ([]model.EmergencyContact, error) {
	if _, err := s.owned(ctx, ownerID, petID); err != nil {
		return nil, err
	}
	return s.contacts.ListByPet(ctx, petID)
}

func (s *petService) AddContact(ctx context.Context, ownerID, petID string, in ContactInput) (*model.EmergencyContact, error) {
	if _, err := s.owned(ctx, ownerID, petID); err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := s.validate.Struct(in); err != nil {
		return nil, invalid("Contact name is required.")
	}

	c, err := s.contacts.Create(ctx, &model.EmergencyContact{
		ID:           uuid.New().String(),
		PetID:        petID,
		Name:         in.Name,
		Phone:        format.PhoneMask(in.Phone),
		Relationship: strings.TrimSpace(in.Relationship),
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return c, nil
}

func (s *petService) DeleteContact(ctx context.Context, ownerID, petID, contactID string) error {
	if _, err := s.owned(ctx, ownerID, petID); err != nil {
		return err
	}
	if err := checkID(contactID); err != nil {
		return err
	}
	return notFound(s.contacts.Delete(ctx, petID, contactID))
}

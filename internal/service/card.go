package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"petparrk/internal/format"
	"petparrk/internal/model"
	"petparrk/internal/repository"
)

const qrCodeEndpoint = "https://api.qrserver.com/v1/create-qr-code/?size=140x140&data="

// ErrCardNotFound is returned for unknown or removed medical cards.
var ErrCardNotFound = &NotFoundError{Message: "This medical card link may be invalid or has been removed."}

// CardContact is an emergency contact with its display phone.
type CardContact struct {
	model.EmergencyContact
	PhoneDisplay string `json:"phone_display"`
}

// CardMeta is the share metadata of a medical card page.
type CardMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Card is the public digital medical card of a pet.
type Card struct {
	Pet               model.Pet     `json:"pet"`
	Contacts          []CardContact `json:"contacts"`
	OwnerPhoneDisplay string        `json:"owner_phone_display"`
	Age               string        `json:"age,omitempty"`
	SpeciesEmoji      string        `json:"species_emoji"`
	URL               string        `json:"url"`
	QRCodeURL         string        `json:"qr_code_url"`
	Meta              CardMeta      `json:"meta"`
}

// CardService serves medical cards. Cards are public and need no authentication.
type CardService interface {
	Get(ctx context.Context, petID string) (*Card, error)
}

type cardService struct {
	pets     repository.PetRepository
	contacts repository.ContactRepository
	baseURL  string
	now      func() time.Time
}

// NewCardService constructs a new CardService. baseURL is the public site used in card links.
func NewCardService(pets repository.PetRepository, contacts repository.ContactRepository, baseURL string) CardService {
	return &cardService{
		pets:     pets,
		contacts: contacts,
		baseURL:  strings.TrimRight(baseURL, "/"),
		now:      time.Now,
	}
}

func (s *cardService) Get(ctx context.Context, petID string) (*Card, error) {
	if checkID(petID) != nil {
		return nil, ErrCardNotFound
	}
	pet, err := s.pets.FindByID(ctx, petID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("find pet: %w", err)
	}
	contacts, err := s.contacts.ListByPet(ctx, petID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	card := &Card{
		Pet:               *pet,
		Contacts:          make([]CardContact, 0, len(contacts)),
		OwnerPhoneDisplay: format.Phone(pet.OwnerPhone),
		SpeciesEmoji:      format.SpeciesEmoji(pet.Species),
		URL:               s.baseURL + "/pet/" + pet.ID,
		Meta:              CardMetadata(pet),
	}
	card.QRCodeURL = QRCodeURL(card.URL)
	if pet.Birthday != nil {
		card.Age = format.Age(pet.Birthday.Time, s.now())
	}
	for _, c := range contacts {
		card.Contacts = append(card.Contacts, CardContact{EmergencyContact: c, PhoneDisplay: format.Phone(c.Phone)})
	}
	return card, nil
}

// QRCodeURL returns the QR image URL encoding target.
func QRCodeURL(target string) string {
	return qrCodeEndpoint + url.QueryEscape(target)
}

// CardMetadata builds the share title and description for a pet.
func CardMetadata(p *model.Pet) CardMeta {
	kind := p.Breed
	if kind == "" {
		kind = p.Species
	}
	return CardMeta{
		Title:       p.Name + "'s Medical Card " + format.SpeciesEmoji(p.Species),
		Description: p.Name + " is a " + kind + ". View their medical info, allergies, medications, and owner contact.",
	}
}

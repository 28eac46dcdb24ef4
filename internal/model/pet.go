package model

import "time"

// DefaultSpecies is used when a pet is created without a species.
const DefaultSpecies = "Dog"

// Profile is the public-facing profile of an account holder.
// ID is the auth provider's user id.
type Profile struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatar_url"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Pet is a pet profile owned by a user; it backs the digital medical card.
type Pet struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Name            string    `json:"name"`
	Species         string    `json:"species"`
	Breed           string    `json:"breed"`
	Birthday        *Date     `json:"birthday"`
	WeightLbs       *float64  `json:"weight_lbs"`
	Allergies       string    `json:"allergies"`
	Medications     string    `json:"medications"`
	MicrochipNumber string    `json:"microchip_number"`
	Notes           string    `json:"notes"`
	OwnerName       string    `json:"owner_name"`
	OwnerPhone      string    `json:"owner_phone"`
	OwnerEmail      string    `json:"owner_email"`
	PhotoURL        string    `json:"photo_url"`
	CreatedAt       time.Time `json:"created_at"`
}

// EmergencyContact is an additional person to call about a pet.
type EmergencyContact struct {
	ID           string    `json:"id"`
	PetID        string    `json:"pet_id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Relationship string    `json:"relationship"`
	CreatedAt    time.Time `json:"created_at"`
}

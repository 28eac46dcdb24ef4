package model

import "time"

// Ownership values used by the directory filter.
const (
	OwnershipIndependent = "Independent"
	OwnershipCorporate   = "Corporate"
)

// VetStatusActive marks listings that are shown in the directory.
const VetStatusActive = "active"

// Vet is a clinic listing.
type Vet struct {
	ID                   string    `json:"id"`
	Slug                 string    `json:"slug"`
	Name                 string    `json:"name"`
	Neighborhood         string    `json:"neighborhood"`
	Address              string    `json:"address"`
	City                 string    `json:"city"`
	State                string    `json:"state"`
	ZipCode              string    `json:"zip_code"`
	Phone                string    `json:"phone"`
	Website              string    `json:"website"`
	Ownership            string    `json:"ownership"`
	VetType              string    `json:"vet_type"`
	Status               string    `json:"status"`
	Hours                string    `json:"hours"`
	Notes                string    `json:"notes"`
	AcceptingNewPatients *bool     `json:"accepting_new_patients"`
	CareCredit           bool      `json:"carecredit"`
	Latitude             *float64  `json:"latitude"`
	Longitude            *float64  `json:"longitude"`
	CreatedAt            time.Time `json:"created_at"`
}

// FullAddress joins the street address with city, state and zip code.
func (v Vet) FullAddress() string {
	return v.Address + ", " + v.City + ", " + v.State + " " + v.ZipCode
}

// Service is a named procedure such as "Doctor Exam".
type Service struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

// VetPrice is the low/high price range a vet charges for a service.
type VetPrice struct {
	ID          string    `json:"id"`
	VetID       string    `json:"vet_id"`
	ServiceID   string    `json:"service_id"`
	ServiceName string    `json:"service_name"`
	PriceLow    *float64  `json:"price_low"`
	PriceHigh   *float64  `json:"price_high"`
	PricePaid   *float64  `json:"price_paid"`
	PriceNotes  string    `json:"price_notes"`
	CreatedAt   time.Time `json:"created_at"`
}

// PriceSubmission is a user-reported price, stored for moderation.
type PriceSubmission struct {
	ID            string    `json:"id"`
	VetName       string    `json:"vet_name"`
	ServiceName   string    `json:"service_name"`
	PricePaid     float64   `json:"price_paid"`
	VisitDate     *Date     `json:"visit_date"`
	SubmitterNote *string   `json:"submitter_note"`
	CreatedAt     time.Time `json:"created_at"`
}

// SavedVet is a user-to-vet favorite.
type SavedVet struct {
	ID      string    `json:"id"`
	UserID  string    `json:"user_id"`
	VetID   string    `json:"vet_id"`
	SavedAt time.Time `json:"saved_at"`
}

package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"petparrk/internal/format"
	"petparrk/internal/model"
	"petparrk/internal/repository"
	"petparrk/internal/validators"
)

// Highlighted services shown on every listing card, in display order.
const (
	ServiceDoctorExam     = "Doctor Exam"
	ServiceDentalCleaning = "Dental Cleaning"
	ServiceSpay           = "Spay (~40lb dog)"
	ServiceNeuter         = "Neuter (~40lb dog)"
)

var highlightedServices = []string{ServiceDoctorExam, ServiceDentalCleaning, ServiceSpay, ServiceNeuter}

const (
	SortByPrice = "price"
	SortByName  = "az"

	filterAll = "All"
)

// VetFilter narrows the directory listing. Empty fields (or "All") disable a filter.
type VetFilter struct {
	Neighborhood string
	Ownership    string `validate:"omitempty,oneof=All Independent Corporate"`
	Search       string
	Sort         string `validate:"omitempty,oneof=price az"`
}

// PriceView is a service price prepared for display.
type PriceView struct {
	Service string   `json:"service"`
	Low     *float64 `json:"price_low"`
	High    *float64 `json:"price_high"`
	Display string   `json:"display"`
}

// VetListing is one row of the directory.
type VetListing struct {
	model.Vet
	HighlightedPrices []PriceView `json:"highlighted_prices"`
	LastUpdated       *time.Time  `json:"last_updated"`
}

// VetListResult is the filtered directory.
type VetListResult struct {
	Items         []VetListing `json:"data"`
	Count         int          `json:"count"`
	Neighborhoods []string     `json:"neighborhoods"`
}

// PriceComparison compares a vet's price for a service with the average across all vets.
// Widths are bar percentages relative to 1.2 times the larger of the two prices.
type PriceComparison struct {
	Service      string  `json:"service"`
	VetPrice     float64 `json:"vet_price"`
	Average      float64 `json:"average"`
	BelowAverage bool    `json:"below_average"`
	VetWidth     int     `json:"vet_width"`
	AverageWidth int     `json:"average_width"`
}

// VetDetail is the vet page.
type VetDetail struct {
	Vet        model.Vet         `json:"vet"`
	Prices     []model.VetPrice  `json:"prices"`
	Hours      []string          `json:"hours"`
	Notes      []string          `json:"notes"`
	MapURL     string            `json:"map_url,omitempty"`
	Comparison []PriceComparison `json:"comparison"`
	Saved      *bool             `json:"saved,omitempty"`
}

// VetService serves the public directory.
type VetService interface {
	// List returns active vets matching the filter, with their highlighted prices.
	List(ctx context.Context, f VetFilter) (*VetListResult, error)

	// Get returns the vet page for slug. When userID is set the result says whether the user saved it.
	Get(ctx context.Context, slug, userID string) (*VetDetail, error)
}

type vetService struct {
	vets     repository.VetRepository
	prices   repository.PriceRepository
	saved    repository.SavedVetRepository
	validate *validator.Validate
}

// NewVetService constructs a new VetService.
func NewVetService(vets repository.VetRepository, prices repository.PriceRepository, saved repository.SavedVetRepository) VetService {
	return &vetService{vets: vets, prices: prices, saved: saved, validate: validators.New()}
}

func (s *vetService) List(ctx context.Context, f VetFilter) (*VetListResult, error) {
	if err := s.validate.Struct(f); err != nil {
		return nil, invalid("ownership must be All, Independent or Corporate; sort must be price or az")
	}

	var (
		vets   []model.Vet
		prices []model.VetPrice
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if vets, err = s.vets.ListActive(gctx); err != nil {
			return fmt.Errorf("list vets: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if prices, err = s.prices.ListAll(gctx); err != nil {
			return fmt.Errorf("list prices: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	byVet := groupPrices(prices)

	filtered := make([]model.Vet, 0, len(vets))
	search := strings.ToLower(f.Search)
	for _, v := range vets {
		if f.Neighborhood != "" && f.Neighborhood != filterAll && v.Neighborhood != f.Neighborhood {
			continue
		}
		if f.Ownership != "" && f.Ownership != filterAll && v.Ownership != f.Ownership {
			continue
		}
		if !strings.Contains(strings.ToLower(v.Name), search) {
			continue
		}
		filtered = append(filtered, v)
	}

	if f.Sort == SortByName {
		sort.SliceStable(filtered, func(i, j int) bool {
			a, b := strings.ToLower(filtered[i].Name), strings.ToLower(filtered[j].Name)
			if a != b {
				return a < b
			}
			return filtered[i].Name < filtered[j].Name
		})
	} else {
		sort.SliceStable(filtered, func(i, j int) bool {
			a := examPrice(byVet[filtered[i].ID])
			b := examPrice(byVet[filtered[j].ID])
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			default:
				return *a < *b
			}
		})
	}

	items := make([]VetListing, 0, len(filtered))
	for _, v := range filtered {
		items = append(items, newListing(v, byVet[v.ID]))
	}
	return &VetListResult{
		Items:         items,
		Count:         len(items),
		Neighborhoods: neighborhoods(vets),
	}, nil
}

func (s *vetService) Get(ctx context.Context, slug, userID string) (*VetDetail, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, ErrIDRequired
	}
	vet, err := s.vets.FindBySlug(ctx, slug)
	if err != nil {
		return nil, notFound(err)
	}
	prices, err := s.prices.ListByVet(ctx, vet.ID)
	if err != nil {
		return nil, fmt.Errorf("list vet prices: %w", err)
	}
	all, err := s.prices.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list prices: %w", err)
	}

	d := &VetDetail{
		Vet:        *vet,
		Prices:     prices,
		Hours:      format.HoursLines(vet.Hours),
		Notes:      format.NoteLines(vet.Notes),
		MapURL:     MapURL(vet.Latitude, vet.Longitude),
		Comparison: ComparePrices(prices, all),
	}

	if userID != "" {
		saved, err := s.saved.Exists(ctx, userID, vet.ID)
		if err != nil {
			return nil, fmt.Errorf("check saved: %w", err)
		}
		d.Saved = &saved
	}
	return d, nil
}

// MapURL returns the embeddable map for a position, or "" when either coordinate is missing.
func MapURL(lat, lon *float64) string {
	if lat == nil || lon == nil {
		return ""
	}
	return fmt.Sprintf("https://maps.google.com/maps?q=%v,%v&z=15&output=embed", *lat, *lon)
}

// ComparePrices builds one comparison per vet price that has both a vet price and an average.
func ComparePrices(vetPrices, all []model.VetPrice) []PriceComparison {
	out := make([]PriceComparison, 0, len(vetPrices))
	for _, p := range vetPrices {
		vetPrice := 0.0
		if p.PriceLow != nil && *p.PriceLow != 0 {
			vetPrice = *p.PriceLow
		} else if p.PricePaid != nil {
			vetPrice = *p.PricePaid
		}

		sum, n := 0.0, 0
		for _, a := range all {
			if a.ServiceName == p.ServiceName && a.PriceLow != nil && *a.PriceLow != 0 {
				sum += *a.PriceLow
				n++
			}
		}
		if vetPrice == 0 || n == 0 {
			continue
		}
		avg := roundHalfUp(sum / float64(n))
		if avg == 0 {
			continue
		}

		max := math.Max(vetPrice, avg) * 1.2
		out = append(out, PriceComparison{
			Service:      p.ServiceName,
			VetPrice:     vetPrice,
			Average:      avg,
			BelowAverage: vetPrice <= avg,
			VetWidth:     int(roundHalfUp(vetPrice / max * 100)),
			AverageWidth: int(roundHalfUp(avg / max * 100)),
		})
	}
	return out
}

// roundHalfUp rounds .5 towards positive infinity.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func groupPrices(prices []model.VetPrice) map[string][]model.VetPrice {
	m := make(map[string][]model.VetPrice)
	for _, p := range prices {
		m[p.VetID] = append(m[p.VetID], p)
	}
	return m
}

func findPrice(prices []model.VetPrice, service string) *model.VetPrice {
	for i := range prices {
		if prices[i].ServiceName == service {
			return &prices[i]
		}
	}
	return nil
}

// examPrice is the listing sort key; nil sorts last.
func examPrice(prices []model.VetPrice) *float64 {
	if p := findPrice(prices, ServiceDoctorExam); p != nil {
		return p.PriceLow
	}
	return nil
}

func newListing(v model.Vet, prices []model.VetPrice) VetListing {
	l := VetListing{Vet: v, HighlightedPrices: make([]PriceView, 0, len(highlightedServices))}
	for _, name := range highlightedServices {
		p := findPrice(prices, name)
		if p == nil {
			continue
		}
		l.HighlightedPrices = append(l.HighlightedPrices, PriceView{
			Service: name,
			Low:     p.PriceLow,
			High:    p.PriceHigh,
			Display: format.PriceRange(p.PriceLow, p.PriceHigh),
		})
	}
	for _, p := range prices {
		if l.LastUpdated == nil || p.CreatedAt.After(*l.LastUpdated) {
			t := p.CreatedAt
			l.LastUpdated = &t
		}
	}
	return l
}

// neighborhoods returns "All" followed by the distinct non-empty neighborhoods, sorted.
func neighborhoods(vets []model.Vet) []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, v := range vets {
		if v.Neighborhood == "" || seen[v.Neighborhood] {
			continue
		}
		seen[v.Neighborhood] = true
		names = append(names, v.Neighborhood)
	}
	sort.Strings(names)
	return append([]string{filterAll}, names...)
}

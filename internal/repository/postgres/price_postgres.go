package postgres

import (
	"context"
	"database/sql"

	"petparrk/internal/database"
	"petparrk/internal/model"
	"petparrk/internal/repository"
)

// PricePostgres is a PostgreSQL implementation of repository.PriceRepository.
type PricePostgres struct {
	db *sql.DB
}

// NewPricePostgres creates a new PricePostgres repository.
func NewPricePostgres(db *sql.DB) *PricePostgres {
	return &PricePostgres{db: db}
}

var _ repository.PriceRepository = (*PricePostgres)(nil)

const priceSelect = `
		SELECT p.id, p.vet_id, p.service_id, s.name, p.price_low, p.price_high, p.price_paid,
			p.price_notes, p.created_at
		FROM vet_prices p
		JOIN services s ON s.id = p.service_id`

func (r *PricePostgres) queryPrices(ctx context.Context, q string, args ...any) ([]model.VetPrice, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.VetPrice, 0)
	for rows.Next() {
		var p model.VetPrice
		if err := rows.Scan(
			&p.ID,
			&p.VetID,
			&p.ServiceID,
			&p.ServiceName,
			&p.PriceLow,
			&p.PriceHigh,
			&p.PricePaid,
			&p.PriceNotes,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListAll returns every price row.
func (r *PricePostgres) ListAll(ctx context.Context) ([]model.VetPrice, error) {
	return r.queryPrices(ctx, priceSelect+`
		ORDER BY s.sort_order, p.created_at`)
}

// ListByVet returns the prices of one vet.
func (r *PricePostgres) ListByVet(ctx context.Context, vetID string) ([]model.VetPrice, error) {
	return r.queryPrices(ctx, priceSelect+`
		WHERE p.vet_id = $1
		ORDER BY s.sort_order, p.created_at`, vetID)
}

// ListByVets returns the prices of several vets.
func (r *PricePostgres) ListByVets(ctx context.Context, vetIDs []string) ([]model.VetPrice, error) {
	if len(vetIDs) == 0 {
		return []model.VetPrice{}, nil
	}
	return r.queryPrices(ctx, priceSelect+`
		WHERE p.vet_id IN (`+database.Placeholders(1, len(vetIDs))+`)
		ORDER BY s.sort_order, p.created_at`, stringArgs(vetIDs)...)
}

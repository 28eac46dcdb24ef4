package postgres

import (
	"context"
	"database/sql"

	"petparrk/internal/database"
	"petparrk/internal/model"
	"petparrk/internal/repository"
)

// VetPostgres is a PostgreSQL implementation of repository.VetRepository.
type VetPostgres struct {
	db *sql.DB
}

// NewVetPostgres creates a new VetPostgres repository.
func NewVetPostgres(db *sql.DB) *VetPostgres {
	return &VetPostgres{db: db}
}

var _ repository.VetRepository = (*VetPostgres)(nil)

const vetColumns = `id, slug, name, neighborhood, address, city, state, zip_code, phone, website,
		ownership, vet_type, status, hours, notes, accepting_new_patients, carecredit,
		latitude, longitude, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVet(row rowScanner) (*model.Vet, error) {
	var v model.Vet
	if err := row.Scan(
		&v.ID,
		&v.Slug,
		&v.Name,
		&v.Neighborhood,
		&v.Address,
		&v.City,
		&v.State,
		&v.ZipCode,
		&v.Phone,
		&v.Website,
		&v.Ownership,
		&v.VetType,
		&v.Status,
		&v.Hours,
		&v.Notes,
		&v.AcceptingNewPatients,
		&v.CareCredit,
		&v.Latitude,
		&v.Longitude,
		&v.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VetPostgres) queryVets(ctx context.Context, q string, args ...any) ([]model.Vet, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Vet, 0)
	for rows.Next() {
		v, err := scanVet(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ListActive returns active vets ordered by name.
func (r *VetPostgres) ListActive(ctx context.Context) ([]model.Vet, error) {
	q := `SELECT ` + vetColumns + `
		FROM vets
		WHERE status = $1
		ORDER BY name`
	return r.queryVets(ctx, q, model.VetStatusActive)
}

// FindBySlug fetches a single vet by its slug.
func (r *VetPostgres) FindBySlug(ctx context.Context, slug string) (*model.Vet, error) {
	q := `SELECT ` + vetColumns + `
		FROM vets
		WHERE slug = $1`
	return scanVet(r.db.QueryRowContext(ctx, q, slug))
}

// FindByID fetches a single vet by its ID.
func (r *VetPostgres) FindByID(ctx context.Context, id string) (*model.Vet, error) {
	q := `SELECT ` + vetColumns + `
		FROM vets
		WHERE id = $1`
	return scanVet(r.db.QueryRowContext(ctx, q, id))
}

// FindByIDs fetches the vets with the given IDs.
func (r *VetPostgres) FindByIDs(ctx context.Context, ids []string) ([]model.Vet, error) {
	if len(ids) == 0 {
		return []model.Vet{}, nil
	}
	q := `SELECT ` + vetColumns + `
		FROM vets
		WHERE id IN (` + database.Placeholders(1, len(ids)) + `)
		ORDER BY name`
	return r.queryVets(ctx, q, stringArgs(ids)...)
}

// UpdateCoordinates sets latitude and longitude of a vet.
func (r *VetPostgres) UpdateCoordinates(ctx context.Context, id string, lat, lon float64) error {
	const q = `UPDATE vets SET latitude = $2, longitude = $3 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, lat, lon)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func stringArgs(ids []string) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

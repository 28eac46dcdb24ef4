package postgres

import (
	"context"
	"database/sql"

	"petparrk/internal/model"
	"petparrk/internal/repository"
)

// PetPostgres is a PostgreSQL implementation of repository.PetRepository.
type PetPostgres struct {
	db *sql.DB
}

// NewPetPostgres creates a new PetPostgres repository.
func NewPetPostgres(db *sql.DB) *PetPostgres {
	return &PetPostgres{db: db}
}

var _ repository.PetRepository = (*PetPostgres)(nil)

const petColumns = `id, owner_id, name, species, breed, birthday, weight_lbs, allergies, medications,
		microchip_number, notes, owner_name, owner_phone, owner_email, photo_url, created_at`

func scanPet(row rowScanner) (*model.Pet, error) {
	var p model.Pet
	if err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Species,
		&p.Breed,
		&p.Birthday,
		&p.WeightLbs,
		&p.Allergies,
		&p.Medications,
		&p.MicrochipNumber,
		&p.Notes,
		&p.OwnerName,
		&p.OwnerPhone,
		&p.OwnerEmail,
		&p.PhotoURL,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

func dateArg(d *model.Date) any {
	if d == nil {
		return nil
	}
	return *d
}

// ListByOwner returns the owner's pets ordered by creation time.
func (r *PetPostgres) ListByOwner(ctx context.Context, ownerID string) ([]model.Pet, error) {
	q := `SELECT ` + petColumns + `
		FROM pets
		WHERE owner_id = $1
		ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a single pet.
func (r *PetPostgres) FindByID(ctx context.Context, id string) (*model.Pet, error) {
	q := `SELECT ` + petColumns + `
		FROM pets
		WHERE id = $1`
	return scanPet(r.db.QueryRowContext(ctx, q, id))
}

// Create inserts a pet and returns the stored row.
func (r *PetPostgres) Create(ctx context.Context, p *model.Pet) (*model.Pet, error) {
	q := `
		INSERT INTO pets (` + petColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + petColumns
	return scanPet(r.db.QueryRowContext(ctx, q,
		p.ID,
		p.OwnerID,
		p.Name,
		p.Species,
		p.Breed,
		dateArg(p.Birthday),
		p.WeightLbs,
		p.Allergies,
		p.Medications,
		p.MicrochipNumber,
		p.Notes,
		p.OwnerName,
		p.OwnerPhone,
		p.OwnerEmail,
		p.PhotoURL,
		p.CreatedAt,
	))
}

// Update overwrites the editable fields of a pet. Owner and photo are not touched.
func (r *PetPostgres) Update(ctx context.Context, p *model.Pet) (*model.Pet, error) {
	q := `
		UPDATE pets
		SET name = $2,
			species = $3,
			breed = $4,
			birthday = $5,
			weight_lbs = $6,
			allergies = $7,
			medications = $8,
			microchip_number = $9,
			notes = $10,
			owner_name = $11,
			owner_phone = $12,
			owner_email = $13
		WHERE id = $1
		RETURNING ` + petColumns
	return scanPet(r.db.QueryRowContext(ctx, q,
		p.ID,
		p.Name,
		p.Species,
		p.Breed,
		dateArg(p.Birthday),
		p.WeightLbs,
		p.Allergies,
		p.Medications,
		p.MicrochipNumber,
		p.Notes,
		p.OwnerName,
		p.OwnerPhone,
		p.OwnerEmail,
	))
}

// UpdatePhoto sets photo_url of a pet.
func (r *PetPostgres) UpdatePhoto(ctx context.Context, id, photoURL string) error {
	const q = `UPDATE pets SET photo_url = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, photoURL)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a pet; its emergency contacts go with it (ON DELETE CASCADE).
func (r *PetPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM pets WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

package postgres

import (
	"context"
	"database/sql"

	"petparrk/internal/model"
	"petparrk/internal/repository"
)

// ContactPostgres is a PostgreSQL implementation of repository.ContactRepository.
type ContactPostgres struct {
	db *sql.DB
}

// NewContactPostgres creates a new ContactPostgres repository.
func NewContactPostgres(db *sql.DB) *ContactPostgres {
	return &ContactPostgres{db: db}
}

var _ repository.ContactRepository = (*ContactPostgres)(nil)

// ListByPet returns the pet's emergency contacts in creation order.
func (r *ContactPostgres) ListByPet(ctx context.Context, petID string) ([]model.EmergencyContact, error) {
	const q = `
		SELECT id, pet_id, name, phone, relationship, created_at
		FROM pet_emergency_contacts
		WHERE pet_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, q, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.EmergencyContact, 0)
	for rows.Next() {
		var c model.EmergencyContact
		if err := rows.Scan(&c.ID, &c.PetID, &c.Name, &c.Phone, &c.Relationship, &c.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a contact and returns the stored row.
func (r *ContactPostgres) Create(ctx context.Context, c *model.EmergencyContact) (*model.EmergencyContact, error) {
	const q = `
		INSERT INTO pet_emergency_contacts (id, pet_id, name, phone, relationship, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, pet_id, name, phone, relationship, created_at
	`
	var out model.EmergencyContact
	if err := r.db.QueryRowContext(ctx, q,
		c.ID,
		c.PetID,
		c.Name,
		c.Phone,
		c.Relationship,
		c.CreatedAt,
	).Scan(&out.ID, &out.PetID, &out.Name, &out.Phone, &out.Relationship, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes one contact of the pet.
func (r *ContactPostgres) Delete(ctx context.Context, petID, id string) error {
	const q = `DELETE FROM pet_emergency_contacts WHERE id = $1 AND pet_id = $2`
	res, err := r.db.ExecContext(ctx, q, id, petID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

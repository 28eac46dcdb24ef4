package postgres

import (
	"context"
	"database/sql"

	"petparrk/internal/model"
	"petparrk/internal/repository"
)

// SavedVetPostgres is a PostgreSQL implementation of repository.SavedVetRepository.
type SavedVetPostgres struct {
	db *sql.DB
}

// NewSavedVetPostgres creates a new SavedVetPostgres repository.
func NewSavedVetPostgres(db *sql.DB) *SavedVetPostgres {
	return &SavedVetPostgres{db: db}
}

var _ repository.SavedVetRepository = (*SavedVetPostgres)(nil)

// Exists reports whether the user saved the vet.
func (r *SavedVetPostgres) Exists(ctx context.Context, userID, vetID string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM saved_vets WHERE user_id = $1 AND vet_id = $2)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, userID, vetID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Create inserts the favorite. The unique (user_id, vet_id) constraint makes repeated saves a no-op.
func (r *SavedVetPostgres) Create(ctx context.Context, userID, vetID string) error {
	const q = `
		INSERT INTO saved_vets (user_id, vet_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, vet_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, q, userID, vetID)
	return err
}

// Delete removes the favorite if present.
func (r *SavedVetPostgres) Delete(ctx context.Context, userID, vetID string) error {
	const q = `DELETE FROM saved_vets WHERE user_id = $1 AND vet_id = $2`
	_, err := r.db.ExecContext(ctx, q, userID, vetID)
	return err
}

// ListByUser returns the user's favorites, most recent first.
func (r *SavedVetPostgres) ListByUser(ctx context.Context, userID string) ([]model.SavedVet, error) {
	const q = `
		SELECT id, user_id, vet_id, saved_at
		FROM saved_vets
		WHERE user_id = $1
		ORDER BY saved_at DESC
	`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.SavedVet, 0)
	for rows.Next() {
		var s model.SavedVet
		if err := rows.Scan(&s.ID, &s.UserID, &s.VetID, &s.SavedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

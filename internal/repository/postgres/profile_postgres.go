package postgres

import (
	"context"
	"database/sql"
	"time"

	"petparrk/internal/model"
	"petparrk/internal/repository"
)

// ProfilePostgres is a PostgreSQL implementation of repository.ProfileRepository.
type ProfilePostgres struct {
	db *sql.DB
}

// NewProfilePostgres creates a new ProfilePostgres repository.
func NewProfilePostgres(db *sql.DB) *ProfilePostgres {
	return &ProfilePostgres{db: db}
}

var _ repository.ProfileRepository = (*ProfilePostgres)(nil)

const profileReturning = `RETURNING id, full_name, bio, avatar_url, is_public, created_at, updated_at`

func scanProfile(row rowScanner) (*model.Profile, error) {
	var p model.Profile
	if err := row.Scan(
		&p.ID,
		&p.FullName,
		&p.Bio,
		&p.AvatarURL,
		&p.IsPublic,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByID fetches a profile by the owner's user ID.
func (r *ProfilePostgres) FindByID(ctx context.Context, id string) (*model.Profile, error) {
	const q = `
		SELECT id, full_name, bio, avatar_url, is_public, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`
	return scanProfile(r.db.QueryRowContext(ctx, q, id))
}

// Create inserts a new profile.
func (r *ProfilePostgres) Create(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	q := `
		INSERT INTO profiles (id, full_name, bio, avatar_url, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		` + profileReturning
	return scanProfile(r.db.QueryRowContext(ctx, q,
		p.ID,
		p.FullName,
		p.Bio,
		p.AvatarURL,
		p.IsPublic,
		p.CreatedAt,
		p.UpdatedAt,
	))
}

// Upsert writes full name, bio and visibility, keeping the avatar.
func (r *ProfilePostgres) Upsert(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	q := `
		INSERT INTO profiles (id, full_name, bio, is_public, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET full_name = EXCLUDED.full_name,
			bio = EXCLUDED.bio,
			is_public = EXCLUDED.is_public,
			updated_at = EXCLUDED.updated_at
		` + profileReturning
	return scanProfile(r.db.QueryRowContext(ctx, q,
		p.ID,
		p.FullName,
		p.Bio,
		p.IsPublic,
		p.UpdatedAt,
	))
}

// UpsertAvatar sets the avatar URL.
func (r *ProfilePostgres) UpsertAvatar(ctx context.Context, id, avatarURL string, at time.Time) error {
	const q = `
		INSERT INTO profiles (id, avatar_url, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET avatar_url = EXCLUDED.avatar_url,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, q, id, avatarURL, at)
	return err
}

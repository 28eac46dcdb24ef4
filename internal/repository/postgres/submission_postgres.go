package postgres

import (
	"context"
	"database/sql"

	"petparrk/internal/model"
	"petparrk/internal/repository"
)

// SubmissionPostgres is a PostgreSQL implementation of repository.SubmissionRepository.
type SubmissionPostgres struct {
	db *sql.DB
}

// NewSubmissionPostgres creates a new SubmissionPostgres repository.
func NewSubmissionPostgres(db *sql.DB) *SubmissionPostgres {
	return &SubmissionPostgres{db: db}
}

var _ repository.SubmissionRepository = (*SubmissionPostgres)(nil)

// Create inserts a price submission and returns the stored record.
func (r *SubmissionPostgres) Create(ctx context.Context, s *model.PriceSubmission) (*model.PriceSubmission, error) {
	const q = `
		INSERT INTO price_submissions (id, vet_name, service_name, price_paid, visit_date, submitter_note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, vet_name, service_name, price_paid, visit_date, submitter_note, created_at
	`
	var visitDate any
	if s.VisitDate != nil {
		visitDate = *s.VisitDate
	}
	row := r.db.QueryRowContext(ctx, q,
		s.ID,
		s.VetName,
		s.ServiceName,
		s.PricePaid,
		visitDate,
		s.SubmitterNote,
		s.CreatedAt,
	)
	var out model.PriceSubmission
	if err := row.Scan(
		&out.ID,
		&out.VetName,
		&out.ServiceName,
		&out.PricePaid,
		&out.VisitDate,
		&out.SubmitterNote,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

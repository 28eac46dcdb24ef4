package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is created by the last table step; its presence means the schema is in place.
const sentinelTable = "public.saved_vets"

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_vets",
		SQL: `CREATE TABLE IF NOT EXISTS vets (
  id                     UUID             PRIMARY KEY DEFAULT uuid_generate_v4(),
  slug                   TEXT             NOT NULL UNIQUE,
  name                   TEXT             NOT NULL,
  neighborhood           TEXT             NOT NULL DEFAULT '',
  address                TEXT             NOT NULL DEFAULT '',
  city                   TEXT             NOT NULL DEFAULT '',
  state                  TEXT             NOT NULL DEFAULT '',
  zip_code               TEXT             NOT NULL DEFAULT '',
  phone                  TEXT             NOT NULL DEFAULT '',
  website                TEXT             NOT NULL DEFAULT '',
  ownership              TEXT             NOT NULL DEFAULT '',
  vet_type               TEXT             NOT NULL DEFAULT '',
  status                 TEXT             NOT NULL DEFAULT 'active',
  hours                  TEXT             NOT NULL DEFAULT '',
  notes                  TEXT             NOT NULL DEFAULT '',
  accepting_new_patients BOOLEAN,
  carecredit             BOOLEAN          NOT NULL DEFAULT false,
  latitude               DOUBLE PRECISION,
  longitude              DOUBLE PRECISION,
  created_at             TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_vets_status_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_vets_status_name ON vets (status, name);`,
	},
	{
		Name: "create_table_services",
		SQL: `CREATE TABLE IF NOT EXISTS services (
  id         UUID    PRIMARY KEY DEFAULT uuid_generate_v4(),
  name       TEXT    NOT NULL UNIQUE,
  sort_order INTEGER NOT NULL DEFAULT 0
);`,
	},
	{
		Name: "seed_services",
		SQL: `INSERT INTO services (name, sort_order) VALUES
  ('Doctor Exam', 1),
  ('Dental Cleaning', 2),
  ('Spay (~40lb dog)', 3),
  ('Neuter (~40lb dog)', 4)
ON CONFLICT (name) DO NOTHING;`,
	},
	{
		Name: "create_table_vet_prices",
		SQL: `CREATE TABLE IF NOT EXISTS vet_prices (
  id          UUID             PRIMARY KEY DEFAULT uuid_generate_v4(),
  vet_id      UUID             NOT NULL REFERENCES vets (id) ON DELETE CASCADE,
  service_id  UUID             NOT NULL REFERENCES services (id) ON DELETE CASCADE,
  price_low   DOUBLE PRECISION CHECK (price_low >= 0),
  price_high  DOUBLE PRECISION CHECK (price_high >= 0),
  price_paid  DOUBLE PRECISION CHECK (price_paid >= 0),
  price_notes TEXT             NOT NULL DEFAULT '',
  created_at  TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_vet_prices_vet_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_vet_prices_vet_id ON vet_prices (vet_id);`,
	},
	{
		Name: "create_table_price_submissions",
		SQL: `CREATE TABLE IF NOT EXISTS price_submissions (
  id             UUID             PRIMARY KEY DEFAULT uuid_generate_v4(),
  vet_name       TEXT             NOT NULL,
  service_name   TEXT             NOT NULL,
  price_paid     DOUBLE PRECISION NOT NULL CHECK (price_paid > 0),
  visit_date     DATE,
  submitter_note TEXT,
  created_at     TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_profiles",
		SQL: `CREATE TABLE IF NOT EXISTS profiles (
  id         UUID        PRIMARY KEY,
  full_name  TEXT        NOT NULL DEFAULT '',
  bio        TEXT        NOT NULL DEFAULT '',
  avatar_url TEXT        NOT NULL DEFAULT '',
  is_public  BOOLEAN     NOT NULL DEFAULT false,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_pets",
		SQL: `CREATE TABLE IF NOT EXISTS pets (
  id               UUID             PRIMARY KEY DEFAULT uuid_generate_v4(),
  owner_id         UUID             NOT NULL,
  name             TEXT             NOT NULL,
  species          TEXT             NOT NULL DEFAULT 'Dog',
  breed            TEXT             NOT NULL DEFAULT '',
  birthday         DATE,
  weight_lbs       DOUBLE PRECISION CHECK (weight_lbs > 0),
  allergies        TEXT             NOT NULL DEFAULT '',
  medications      TEXT             NOT NULL DEFAULT '',
  microchip_number TEXT             NOT NULL DEFAULT '',
  notes            TEXT             NOT NULL DEFAULT '',
  owner_name       TEXT             NOT NULL DEFAULT '',
  owner_phone      TEXT             NOT NULL DEFAULT '',
  owner_email      TEXT             NOT NULL DEFAULT '',
  photo_url        TEXT             NOT NULL DEFAULT '',
  created_at       TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_pets_owner_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_pets_owner_id ON pets (owner_id, created_at);`,
	},
	{
		Name: "create_table_pet_emergency_contacts",
		SQL: `CREATE TABLE IF NOT EXISTS pet_emergency_contacts (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  pet_id       UUID        NOT NULL REFERENCES pets (id) ON DELETE CASCADE,
  name         TEXT        NOT NULL,
  phone        TEXT        NOT NULL DEFAULT '',
  relationship TEXT        NOT NULL DEFAULT '',
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_pet_emergency_contacts_pet_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_pet_emergency_contacts_pet_id ON pet_emergency_contacts (pet_id);`,
	},
	{
		Name: "create_table_saved_vets",
		SQL: `CREATE TABLE IF NOT EXISTS saved_vets (
  id       UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id  UUID        NOT NULL,
  vet_id   UUID        NOT NULL REFERENCES vets (id) ON DELETE CASCADE,
  saved_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (user_id, vet_id)
);`,
	},
}

// EnsureMigrated checks if the sentinel table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	query := fmt.Sprintf("SELECT to_regclass('%s') IS NOT NULL", sentinelTable)
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.String("error_message", fmt.Sprintf("failed to check sentinel table: %v", err)),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("reason", "schema already exists, skipping migration"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"), zap.Int("steps", len(steps)))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.String("error_message", err.Error()),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return nil
}

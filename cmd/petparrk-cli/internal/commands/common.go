package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"petparrk/internal/config"
	"petparrk/internal/database"
	"petparrk/internal/geocode"
	"petparrk/internal/logger"
	"petparrk/internal/repository"
	"petparrk/internal/repository/postgres"
)

// Env is what a command needs to run.
type Env struct {
	Config   *config.AppConfig
	Log      *zap.Logger
	Vets     repository.VetRepository
	Geocoder geocode.Geocoder
}

// EnvOpener builds an Env. The returned func releases its resources.
type EnvOpener func(ctx context.Context) (*Env, func(), error)

// OpenEnv loads configuration from the environment, connects to PostgreSQL and
// builds the Nominatim client.
func OpenEnv(ctx context.Context) (*Env, func(), error) {
	cfg := config.Load()

	log, err := logger.New(cfg.Log, cfg.Site.Location())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.NewPostgres(ctx, cfg.Database, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	geo, err := geocode.NewNominatimClient(cfg.Geocoder)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to create geocoder: %w", err)
	}

	env := &Env{
		Config:   cfg,
		Log:      log.With(zap.String("component", "cli")),
		Vets:     postgres.NewVetPostgres(db),
		Geocoder: geo,
	}
	closeFn := func() {
		_ = db.Close()
		_ = log.Sync()
	}
	return env, closeFn, nil
}

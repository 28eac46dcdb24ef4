package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"petparrk/docs"
	"petparrk/internal/auth"
	"petparrk/internal/config"
	"petparrk/internal/database"
	"petparrk/internal/database/migration"
	handlers "petparrk/internal/http/handler"
	"petparrk/internal/http/middleware"
	"petparrk/internal/imaging"
	"petparrk/internal/logger"
	"petparrk/internal/otel"
	"petparrk/internal/repository/postgres"
	"petparrk/internal/service"
	"petparrk/internal/sitemap"
	"petparrk/internal/storage"
)

const (
	// Photos may be up to 10MB; leave room for the multipart envelope and form fields.
	bodyLimit       = imaging.MaxSize + 1<<20
	providerTimeout = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

// @title PetParrk API
// @version 1.0
// @description Vet price directory, pet profiles and digital medical cards.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	loc := cfg.Site.Location()
	logg, err := logger.New(cfg.Log, loc)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logg)
	if err != nil {
		logg.Fatal("tracing_init_failed", zap.Error(err))
	}

	db, err := database.NewPostgres(ctx, cfg.Database, logg)
	if err != nil {
		logg.Fatal("db_connect_failed", zap.Error(err))
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, logg, cfg.Database.Host); err != nil {
		logg.Fatal("db_migration_failed", zap.Error(err))
	}

	avatars, err := storage.NewMinIO(cfg.MinIO, cfg.MinIO.AvatarBucket)
	if err != nil {
		logg.Fatal("storage_init_failed", zap.String("bucket", cfg.MinIO.AvatarBucket), zap.Error(err))
	}
	petPhotos, err := storage.NewMinIO(cfg.MinIO, cfg.MinIO.PetBucket)
	if err != nil {
		logg.Fatal("storage_init_failed", zap.String("bucket", cfg.MinIO.PetBucket), zap.Error(err))
	}

	provider, err := auth.NewGoTrueClient(cfg.Auth, providerTimeout)
	if err != nil {
		logg.Fatal("auth_provider_init_failed", zap.Error(err))
	}
	verifier := auth.NewJWTVerifier(cfg.Auth.JWTSecret)

	// Repositories
	vetRepo := postgres.NewVetPostgres(db)
	priceRepo := postgres.NewPricePostgres(db)
	savedRepo := postgres.NewSavedVetPostgres(db)
	petRepo := postgres.NewPetPostgres(db)
	contactRepo := postgres.NewContactPostgres(db)

	images := imaging.NewPreparer(nil)

	services := handlers.Services{
		Vets:        service.NewVetService(vetRepo, priceRepo, savedRepo),
		Submissions: service.NewSubmissionService(postgres.NewSubmissionPostgres(db)),
		Saved:       service.NewSavedVetService(savedRepo, vetRepo, priceRepo),
		Profiles:    service.NewProfileService(postgres.NewProfilePostgres(db), avatars, images, logg),
		Pets:        service.NewPetService(petRepo, contactRepo, petPhotos, images, logg),
		Cards:       service.NewCardService(petRepo, contactRepo, cfg.Site.BaseURL),
		Accounts:    service.NewAccountService(provider, cfg.Site.BaseURL, cfg.Auth.RedirectURL),
		Sitemap:     sitemap.NewGenerator(vetRepo, cfg.Site.BaseURL),
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, cfg.Database.Name),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		logg.Fatal("metrics_init_failed", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    bodyLimit,
	})

	// RequestID first so every later middleware and the error handler can read it.
	app.Use(middleware.RequestID())
	app.Use(middleware.Tracing(cfg.TracingEnabled))
	app.Use(middleware.Logger(logg))
	app.Use(promMiddleware.Handler())

	handlers.RegisterMetrics(app, reg)
	handlers.RegisterRoutes(app, db, verifier, services)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logg.Error("server_shutdown_failed", zap.Error(err))
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			logg.Error("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	logg.Info("server_starting", zap.String("addr", addr), zap.String("app_host", cfg.AppHost))

	if err := app.Listen(addr); err != nil {
		logg.Fatal("server_failed", zap.Error(err))
	}
}

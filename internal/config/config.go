package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// DatabaseConfig holds PostgreSQL database connection settings.
// URL, when set, is used as-is (hosted Postgres connection strings) and the
// individual fields are ignored.
type DatabaseConfig struct {
	URL                string
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for the S3-compatible backend.
// Avatars and pet photos live in separate buckets, mirroring the hosted setup.
type MinIOConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	UseSSL        bool
	AvatarBucket  string
	PetBucket     string
	PublicBaseURL string
}

// AuthConfig describes the external auth provider.
// Tokens it issues are HS256 JWTs signed with JWTSecret.
type AuthConfig struct {
	ProviderURL string `validate:"required,url"`
	AnonKey     string `validate:"required"`
	JWTSecret   string `validate:"required,min=16"`
	RedirectURL string `validate:"omitempty,url"`
}

// SiteConfig holds settings for public links built by the API (sitemap, medical card QR codes).
type SiteConfig struct {
	BaseURL  string `validate:"required,url"`
	TimeZone string
}

// GeocoderConfig configures the Nominatim client used by the maintenance CLI.
type GeocoderConfig struct {
	BaseURL   string `validate:"required,url"`
	UserAgent string `validate:"required"`
	DelayMs   int    `validate:"gte=0"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level      string `validate:"required,oneof=debug info warn error"`
	FilePath   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost        string
	Port           string
	TracingEnabled bool
	Database       DatabaseConfig
	MinIO          MinIOConfig
	Auth           AuthConfig
	Site           SiteConfig
	Geocoder       GeocoderConfig
	Log            LogConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:        getEnv("APP_HOST", "localhost:8080"),
		Port:           getEnv("PORT", "8080"),
		TracingEnabled: !getEnvBool("OTEL_SDK_DISABLED", false),
		Database: DatabaseConfig{
			URL:                getEnv("DATABASE_URL", ""),
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:      getEnv("MINIO_ENDPOINT", ""),
			AccessKey:     getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:     getEnv("MINIO_SECRET_KEY", ""),
			UseSSL:        getEnvBool("MINIO_USE_SSL", false),
			AvatarBucket:  getEnv("MINIO_AVATAR_BUCKET", "avatars"),
			PetBucket:     getEnv("MINIO_PET_BUCKET", "pets"),
			PublicBaseURL: getEnv("MINIO_PUBLIC_BASE_URL", ""),
		},
		Auth: AuthConfig{
			ProviderURL: getEnv("AUTH_PROVIDER_URL", ""),
			AnonKey:     getEnv("AUTH_ANON_KEY", ""),
			JWTSecret:   getEnv("AUTH_JWT_SECRET", ""),
			RedirectURL: getEnv("AUTH_REDIRECT_URL", ""),
		},
		Site: SiteConfig{
			BaseURL:  getEnv("SITE_BASE_URL", "https://petparrk.vercel.app"),
			TimeZone: getEnv("APP_TIMEZONE", "UTC"),
		},
		Geocoder: GeocoderConfig{
			BaseURL:   getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
			UserAgent: getEnv("GEOCODER_USER_AGENT", "PetParrk/1.0"),
			DelayMs:   getEnvInt("GEOCODER_DELAY_MS", 1000),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			FilePath:   getEnv("LOG_FILE", ""),
			MaxSize:    getEnvInt("LOG_MAX_SIZE_MB", 50),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
			MaxAge:     getEnvInt("LOG_MAX_AGE_DAYS", 28),
		},
	}
}

// Validate checks the sections the HTTP API cannot start without.
func (c *AppConfig) Validate() error {
	v := validator.New()
	for name, section := range map[string]any{
		"auth": c.Auth,
		"site": c.Site,
		"log":  c.Log,
	} {
		if err := v.Struct(section); err != nil {
			return fmt.Errorf("validation failed for %s config: %w", name, err)
		}
	}
	return nil
}

// Validate checks that the geocoder settings are usable.
func (c GeocoderConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validation failed for geocoder config: %w", err)
	}
	return nil
}

// Delay returns the fixed pause between geocoding requests.
func (c GeocoderConfig) Delay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}

// Location resolves TimeZone, falling back to UTC when it is unknown.
func (c SiteConfig) Location() *time.Location {
	if c.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

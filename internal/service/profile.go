package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"petparrk/internal/auth"
	"petparrk/internal/imaging"
	"petparrk/internal/model"
	"petparrk/internal/repository"
	"petparrk/internal/storage"
)

// ProfileInput holds the editable profile fields.
type ProfileInput struct {
	FullName string
	Bio      string
	IsPublic bool
}

// ProfileService manages the caller's own profile.
type ProfileService interface {
	// GetOrCreate returns the profile, creating it from the token's metadata on first use.
	GetOrCreate(ctx context.Context, user *auth.User) (*model.Profile, error)
	Update(ctx context.Context, userID string, in ProfileInput) (*model.Profile, error)

	// UploadAvatar stores the image and returns the cache-busted avatar URL.
	UploadAvatar(ctx context.Context, userID string, img imaging.Image) (string, error)
}

type profileService struct {
	repo   repository.ProfileRepository
	store  storage.Storage
	images *imaging.Preparer
	log    *zap.Logger
	now    func() time.Time
}

// NewProfileService constructs a new ProfileService. store is the avatars bucket.
func NewProfileService(repo repository.ProfileRepository, store storage.Storage, images *imaging.Preparer, log *zap.Logger) ProfileService {
	return &profileService{repo: repo, store: store, images: images, log: log, now: time.Now}
}

func (s *profileService) GetOrCreate(ctx context.Context, user *auth.User) (*model.Profile, error) {
	if user == nil || user.ID == "" {
		return nil, ErrUnauthorized
	}
	p, err := s.repo.FindByID(ctx, user.ID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find profile: %w", err)
	}

	now := s.now().UTC()
	created, err := s.repo.Create(ctx, &model.Profile{
		ID:        user.ID,
		FullName:  user.FullName,
		AvatarURL: user.AvatarURL,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		// A concurrent request may have created it first.
		if p, findErr := s.repo.FindByID(ctx, user.ID); findErr == nil {
			return p, nil
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}
	s.log.Info("profile_created", zap.String("user_id", user.ID))
	return created, nil
}

func (s *profileService) Update(ctx context.Context, userID string, in ProfileInput) (*model.Profile, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	p, err := s.repo.Upsert(ctx, &model.Profile{
		ID:        userID,
		FullName:  strings.TrimSpace(in.FullName),
		Bio:       strings.TrimSpace(in.Bio),
		IsPublic:  in.IsPublic,
		UpdatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return p, nil
}

func (s *profileService) UploadAvatar(ctx context.Context, userID string, img imaging.Image) (string, error) {
	if userID == "" {
		return "", ErrUnauthorized
	}
	img, err := s.images.Prepare(ctx, img)
	if err != nil {
		return "", invalid(imaging.Message(err))
	}

	key := userID + "/avatar." + img.Ext()
	avatarURL, err := upload(ctx, s.store, key, img, s.now())
	if err != nil {
		return "", err
	}
	if err := s.repo.UpsertAvatar(ctx, userID, avatarURL, s.now().UTC()); err != nil {
		return "", fmt.Errorf("save avatar url: %w", err)
	}
	return avatarURL, nil
}

// upload writes img under key (overwriting) and returns its public URL with a ?t=<unix ms> cache buster.
func upload(ctx context.Context, store storage.Storage, key string, img imaging.Image, at time.Time) (string, error) {
	if _, err := store.Put(ctx, key, img.Body, storage.PutObjectOptions{
		Size:        img.Size,
		ContentType: img.ContentType,
	}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	return store.PublicURL(key) + "?t=" + strconv.FormatInt(at.UnixMilli(), 10), nil
}

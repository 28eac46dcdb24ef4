package service

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrIDRequired   = errors.New("id is required")
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("authentication required")
	// ErrUploadFailed wraps object storage failures on avatar and pet photo uploads.
	ErrUploadFailed = errors.New("upload failed")
)

// ValidationError is a rejected input. Message is safe to show to the user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// NotFoundError is ErrNotFound with a user-facing message.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// notFound maps sql.ErrNoRows to ErrNotFound and returns other errors unchanged.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// checkID rejects empty and malformed ids before they reach the database.
func checkID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrIDRequired
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	return nil
}

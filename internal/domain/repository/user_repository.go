// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"columbus/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// UpsertBySubject creates the user on first sign-in, or refreshes its login
	// timestamp, keyed on the identity-provider subject. It returns the stored row.
	UpsertBySubject(ctx context.Context, user *entity.User) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdateProfile applies the non-nil fields of update and returns the stored row.
	UpdateProfile(ctx context.Context, id uuid.UUID, update *entity.ProfileUpdate) (*entity.User, error)
}

// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"columbus/internal/domain/entity"
)

// UserUsecase resolves authenticated callers into known users.
type UserUsecase interface {
	// ResolveIdentity creates the user on first sign-in, refreshes its login
	// timestamp otherwise, and returns the identity handed to every other use case.
	ResolveIdentity(ctx context.Context, claims *entity.Claims) (*entity.Identity, error)
}

package usecase

import (
	"context"

	"columbus/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, identity entity.Identity) (*entity.User, error)
	UpdateProfile(ctx context.Context, identity entity.Identity, input *UpdateProfileInput) (*entity.User, error)
}

// --- Input DTOs ---

// UpdateProfileInput defines the editable profile fields.
type UpdateProfileInput struct {
	FirstName         *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName          *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	PreferredCurrency *string `json:"preferred_currency,omitempty" validate:"omitempty,iso4217"`
	HomeCountry       *string `json:"home_country,omitempty" validate:"omitempty,max=100"`
	PreferredLanguage *string `json:"preferred_language,omitempty" validate:"omitempty,bcp47_language_tag"`
}

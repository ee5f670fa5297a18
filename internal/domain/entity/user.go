// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a traveler known to the system. It is created on the first successful
// sign-in through the identity provider and is never hard-deleted.
type User struct {
	ID                uuid.UUID  `json:"id"`                     // The Global Unique Identifier (GUID) for the user.
	Subject           string     `json:"-"`                      // Identity-provider subject, unique and immutable.
	Email             string     `json:"email"`                  // The user's primary contact email.
	Username          string     `json:"username"`               // Unique handle chosen in the identity provider.
	FirstName         string     `json:"first_name"`             // Given name.
	LastName          string     `json:"last_name"`              // Family name.
	PreferredCurrency string     `json:"preferred_currency"`     // ISO-4217 currency code, defaults to USD.
	HomeCountry       string     `json:"home_country"`           // Free-form home country.
	PreferredLanguage string     `json:"preferred_language"`     // BCP-47 language tag, defaults to en.
	IsActive          bool       `json:"is_active"`              // Soft lifecycle flag.
	LastLoginAt       *time.Time `json:"last_login_at,omitempty"` // Timestamp of the latest sign-in.
	CreatedAt         time.Time  `json:"created_at"`             // Timestamp of when this user account was created.
	UpdatedAt         time.Time  `json:"updated_at"`             // Timestamp of the last modification to this user's data.
}

// ProfileUpdate carries the editable subset of a user's profile.
// Nil fields are left untouched.
type ProfileUpdate struct {
	FirstName         *string
	LastName          *string
	PreferredCurrency *string
	HomeCountry       *string
	PreferredLanguage *string
}

// IsEmpty reports whether the update changes nothing.
func (p *ProfileUpdate) IsEmpty() bool {
	return p == nil || (p.FirstName == nil && p.LastName == nil && p.PreferredCurrency == nil &&
		p.HomeCountry == nil && p.PreferredLanguage == nil)
}
